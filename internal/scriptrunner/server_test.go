package scriptrunner

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postRun(t *testing.T, h http.Handler, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/run-script", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRunScriptRejectsMissingArgs(t *testing.T) {
	h := NewRouter(&Server{Python: "true", ScriptPath: "script.py"}, "", "")

	for _, body := range []string{
		`{"args": []}`,
		`{"args": ["blue", "jacket"]}`,
		`{}`,
		`not json`,
	} {
		w := postRun(t, h, body, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
		if got := strings.TrimSpace(w.Body.String()); got != "Error: color, gender, and product arguments are required." {
			t.Errorf("body %q: response = %q", body, got)
		}
	}
}

func TestRunScriptSuccess(t *testing.T) {
	h := NewRouter(&Server{Python: "true", ScriptPath: "script.py"}, "", "")

	w := postRun(t, h, `{"args": ["blue", "jacket", "women"]}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != "Script finished successfully with code 0" {
		t.Errorf("response = %q", got)
	}
}

func TestRunScriptFailureReportsExitCode(t *testing.T) {
	h := NewRouter(&Server{Python: "false", ScriptPath: "script.py"}, "", "")

	w := postRun(t, h, `{"args": ["blue", "jacket", "women"]}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := strings.TrimSpace(w.Body.String()); got != "Script finished with error code 1" {
		t.Errorf("response = %q", got)
	}
}

func TestRunScriptInternalToken(t *testing.T) {
	h := NewRouter(&Server{Python: "true", ScriptPath: "script.py"}, "", "secret")

	w := postRun(t, h, `{"args": ["a", "b", "c"]}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("without token: status = %d, want 401", w.Code)
	}

	w = postRun(t, h, `{"args": ["a", "b", "c"]}`, map[string]string{"X-Internal-Token": "secret"})
	if w.Code != http.StatusOK {
		t.Errorf("with token: status = %d, want 200", w.Code)
	}
}

func TestHealth(t *testing.T) {
	h := NewRouter(&Server{Python: "true", ScriptPath: "script.py"}, "", "")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
