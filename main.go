package main

import (
	"encoding/json"
	"fmt"
	"os"

	"qbdrift/internal/drift"
	"qbdrift/internal/model"
	"qbdrift/internal/schema"
	"qbdrift/internal/tui"
	"qbdrift/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "fraemi",
		Repository: "qbdrift",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/fraemi/qbdrift/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qbdrift [options] [config files or directories...]\n\n")
		fmt.Fprintf(os.Stderr, "qbdrift reconciles qutebrowser's settings schema against your config.py.\n")
		fmt.Fprintf(os.Stderr, "It reports settings you never configured, settings qutebrowser dropped,\n")
		fmt.Fprintf(os.Stderr, "and commented-out defaults that changed since your config was generated.\n")
		fmt.Fprintf(os.Stderr, "Config files are only read, never modified.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  qbdrift                  # Start TUI mode on the default config.py\n")
		fmt.Fprintf(os.Stderr, "  qbdrift --report         # Print drift report to stdout\n")
		fmt.Fprintf(os.Stderr, "  qbdrift -r -m ~/dotfiles # Only missing settings, scanning a directory\n")
		fmt.Fprintf(os.Stderr, "  qbdrift --json           # Output drift groups as JSON\n")
	}

	missingFlag := pflag.BoolP("missing", "m", false, "Only list settings missing in local config")
	droppedFlag := pflag.BoolP("dropped", "d", false, "Only list settings not present in qutebrowser anymore")
	staleFlag := pflag.BoolP("stale", "s", false, "Only list commented-out defaults that changed")
	plainFlag := pflag.Bool("plain", false, "Suppress location and help-URL annotations in the report")
	schemaFlag := pflag.String("schema", "", "Path to qutebrowser's configdata.yml (default: search known install locations)")
	jsonFlag := pflag.BoolP("json", "j", false, "Output drift groups as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Print a drift report to stdout (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("qbdrift version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	// No category flag means report everything, same as the original tool.
	opts := model.Options{Missing: *missingFlag, Dropped: *droppedFlag, Stale: *staleFlag}
	if !opts.Missing && !opts.Dropped && !opts.Stale {
		opts = model.AllCategories()
	}

	configArgs := pflag.Args()

	if *webFlag {
		web.StartServer(configArgs, *schemaFlag, opts)
		return
	}

	if *reportFlag {
		runReportMode(configArgs, *schemaFlag, opts, *outputFlag, *plainFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(configArgs, *schemaFlag, opts)
		return
	}

	// Default: TUI
	runTuiMode(configArgs, *schemaFlag, opts)
}

func runReportMode(configArgs []string, schemaPath string, opts model.Options, outputFile string, plain bool) {
	provider := schema.NewFileProvider(schemaPath)
	groups, err := drift.Run(configArgs, provider, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := drift.GenerateReport(groups, plain)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Print(report)
	}
}

func runJsonMode(configArgs []string, schemaPath string, opts model.Options) {
	provider := schema.NewFileProvider(schemaPath)
	groups, err := drift.Run(configArgs, provider, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(groups)
}

func runTuiMode(configArgs []string, schemaPath string, opts model.Options) {
	m := tui.InitialModel(configArgs, schemaPath, opts)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
