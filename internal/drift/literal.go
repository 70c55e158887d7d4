package drift

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DecodeLiteral parses a strict Python-literal subset: None, True, False,
// integers, floats, quoted strings, lists, tuples and string-keyed dicts.
// Nothing else — in particular no names, calls or operators, so a hostile
// config line can never execute anything. Decoded values use nil, bool,
// int64, float64, string, []any and map[string]any.
func DecodeLiteral(s string) (any, error) {
	d := &literalDecoder{input: s}
	d.skipSpace()
	v, err := d.value()
	if err != nil {
		return nil, err
	}
	d.skipSpace()
	if d.pos != len(d.input) {
		return nil, fmt.Errorf("trailing characters at offset %d", d.pos)
	}
	return v, nil
}

type literalDecoder struct {
	input string
	pos   int
}

func (d *literalDecoder) skipSpace() {
	for d.pos < len(d.input) && (d.input[d.pos] == ' ' || d.input[d.pos] == '\t') {
		d.pos++
	}
}

func (d *literalDecoder) peek() (byte, bool) {
	if d.pos >= len(d.input) {
		return 0, false
	}
	return d.input[d.pos], true
}

func (d *literalDecoder) consume(lit string) bool {
	if strings.HasPrefix(d.input[d.pos:], lit) {
		d.pos += len(lit)
		return true
	}
	return false
}

func (d *literalDecoder) value() (any, error) {
	c, ok := d.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of literal")
	}

	switch {
	case d.consume("None"):
		return nil, nil
	case d.consume("True"):
		return true, nil
	case d.consume("False"):
		return false, nil
	case c == '\'' || c == '"':
		return d.str()
	case c == '[':
		return d.seq('[', ']')
	case c == '(':
		return d.seq('(', ')')
	case c == '{':
		return d.dict()
	case c == '-' || c == '+' || (c >= '0' && c <= '9') || c == '.':
		return d.number()
	default:
		return nil, fmt.Errorf("unexpected character %q at offset %d", c, d.pos)
	}
}

func (d *literalDecoder) str() (string, error) {
	quote := d.input[d.pos]
	d.pos++
	var sb strings.Builder
	for d.pos < len(d.input) {
		c := d.input[d.pos]
		switch c {
		case quote:
			d.pos++
			return sb.String(), nil
		case '\\':
			d.pos++
			if d.pos >= len(d.input) {
				return "", fmt.Errorf("unterminated escape")
			}
			switch e := d.input[d.pos]; e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '\'', '"':
				sb.WriteByte(e)
			default:
				// Pass unknown escapes through untouched, as Python does.
				sb.WriteByte('\\')
				sb.WriteByte(e)
			}
			d.pos++
		default:
			sb.WriteByte(c)
			d.pos++
		}
	}
	return "", fmt.Errorf("unterminated string")
}

func (d *literalDecoder) number() (any, error) {
	start := d.pos
	if c, ok := d.peek(); ok && (c == '-' || c == '+') {
		d.pos++
	}
	isFloat := false
	for d.pos < len(d.input) {
		c := d.input[d.pos]
		if c >= '0' && c <= '9' {
			d.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
			d.pos++
			continue
		}
		if (c == '-' || c == '+') && (d.input[d.pos-1] == 'e' || d.input[d.pos-1] == 'E') {
			d.pos++
			continue
		}
		break
	}
	text := d.input[start:d.pos]
	if !isFloat {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", text)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid float %q", text)
	}
	return f, nil
}

func (d *literalDecoder) seq(open, close byte) ([]any, error) {
	d.pos++ // consume open
	vals := []any{}
	for {
		d.skipSpace()
		if c, ok := d.peek(); ok && c == close {
			d.pos++
			return vals, nil
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		d.skipSpace()
		c, ok := d.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated sequence")
		}
		switch c {
		case ',':
			d.pos++
		case close:
			// next loop iteration consumes it
		default:
			return nil, fmt.Errorf("unexpected character %q in sequence", c)
		}
	}
}

func (d *literalDecoder) dict() (map[string]any, error) {
	d.pos++ // consume '{'
	out := map[string]any{}
	for {
		d.skipSpace()
		if c, ok := d.peek(); ok && c == '}' {
			d.pos++
			return out, nil
		}
		c, ok := d.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated dict")
		}
		if c != '\'' && c != '"' {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		key, err := d.str()
		if err != nil {
			return nil, err
		}
		d.skipSpace()
		if c, ok := d.peek(); !ok || c != ':' {
			return nil, fmt.Errorf("expected ':' after dict key %q", key)
		}
		d.pos++
		d.skipSpace()
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		out[key] = v
		d.skipSpace()
		c, ok = d.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated dict")
		}
		switch c {
		case ',':
			d.pos++
		case '}':
			// next loop iteration consumes it
		default:
			return nil, fmt.Errorf("unexpected character %q in dict", c)
		}
	}
}

// FormatValue renders a decoded (or schema) value back in Python-literal
// style for display: None, True/False, quoted strings, [..] and {..} with
// sorted keys.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return "'" + strings.ReplaceAll(val, "'", `\'`) + "'"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = FormatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = FormatValue(k) + ": " + FormatValue(val[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", val)
	}
}
