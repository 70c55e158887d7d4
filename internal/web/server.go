package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strconv"

	"qbdrift/internal/drift"
	"qbdrift/internal/model"
	"qbdrift/internal/schema"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// StartServer starts the web server on the default port 8080.
func StartServer(configArgs []string, schemaPath string, opts model.Options) {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/drift", handleDrift(configArgs, schemaPath, opts))
	mux.HandleFunc("/api/line-context", handleLineContext)
	mux.HandleFunc("/api/help", handleHelp)

	port := "8080"
	fmt.Printf("Starting qbdrift web server at http://localhost:%s\n", port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", port)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}

func handleDrift(configArgs []string, schemaPath string, opts model.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Each request re-runs the scan so the browser sees current files.
		provider := schema.NewFileProvider(schemaPath)
		groups, err := drift.Run(configArgs, provider, opts)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		response := struct {
			Groups  []model.ResultGroup
			Report  string `json:"Report"`
			Version string `json:"Version"`
		}{
			Groups:  groups,
			Report:  drift.GenerateReport(groups, true),
			Version: model.Version,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

func handleLineContext(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", 400)
		return
	}
	line, err := strconv.Atoi(r.URL.Query().Get("line"))
	if err != nil || line < 1 {
		http.Error(w, "line must be a positive integer", 400)
		return
	}

	ctx := model.GetLineContext(path, line)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ctx)
}

func handleHelp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, helpMD)
}
