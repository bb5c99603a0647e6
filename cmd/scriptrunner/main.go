package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"fashionai/go_backend/internal/scriptrunner"
)

func main() {
	s := &scriptrunner.Server{
		Python:     env("PYTHON_BIN", "python"),
		ScriptPath: env("SCRIPT_PATH", "./scripts/myntra.py"),
	}

	addr := env("SCRIPT_RUNNER_ADDR", ":9000")
	router := scriptrunner.NewRouter(s,
		env("CORS_ALLOW_ORIGIN", "http://localhost:3000"),
		env("SCRIPT_RUNNER_TOKEN", ""))

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("script runner listening on %s", addr)
	log.Fatal(srv.ListenAndServe())
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
