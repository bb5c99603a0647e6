// Package scriptrunner is the HTTP pass-through in front of the scraping
// script: it spawns the script with the three positional search arguments and
// relays its output. It holds no state of its own.
package scriptrunner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/exec"

	"github.com/go-chi/chi/v5"

	"fashionai/go_backend/internal/app/http/middleware"
)

type Server struct {
	Python     string
	ScriptPath string
}

func (s *Server) RunScript(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Args []string `json:"args"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Args) < 3 {
		http.Error(w, "Error: color, gender, and product arguments are required.", http.StatusBadRequest)
		return
	}

	cmd := exec.CommandContext(r.Context(), s.Python, append([]string{s.ScriptPath}, req.Args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stdout.Len() > 0 {
		log.Printf("script output: %s", stdout.String())
	}
	if err != nil {
		code := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		}
		log.Printf("script failed code=%d: %v", code, err)
		if stderr.Len() > 0 {
			http.Error(w, stderr.String(), http.StatusInternalServerError)
			return
		}
		http.Error(w, fmt.Sprintf("Script finished with error code %d", code), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Script finished successfully with code 0")
}

func NewRouter(s *Server, allowOrigin, internalToken string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(allowOrigin))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if internalToken != "" {
			r.Use(middleware.InternalAuth(internalToken))
		}
		r.Post("/run-script", s.RunScript)
	})

	return r
}
