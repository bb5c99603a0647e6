package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"fashionai/go_backend/internal/app/metrics"
)

// scriptErrorText is the sentinel returned when the script runner cannot be
// reached or answers with a non-success status. The orchestrator still
// assembles a reply around it instead of failing the pipeline.
const scriptErrorText = "Error running script"

// runExternalSearch posts the query to the script runner. The args are
// positional on the wire: color, then product, then gender.
func (s *Service) runExternalSearch(ctx context.Context, reqID string, q ProductQuery) string {
	payload := scriptRequest{Args: []string{q.Color, q.Product, q.Gender}}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("chat req=%s script marshal failed: %v", reqID, err)
		metrics.ScriptDegrades.Inc()
		return scriptErrorText
	}

	urlStr := strings.TrimRight(s.Cfg.ScriptRunnerURL, "/") + "/run-script"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		log.Printf("chat req=%s script request failed: %v", reqID, err)
		metrics.ScriptDegrades.Inc()
		return scriptErrorText
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Cfg.ScriptRunnerToken != "" {
		req.Header.Set("X-Internal-Token", s.Cfg.ScriptRunnerToken)
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		log.Printf("chat req=%s script call failed: %v", reqID, err)
		metrics.ScriptDegrades.Inc()
		return scriptErrorText
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("chat req=%s script status %d: %s", reqID, resp.StatusCode, strings.TrimSpace(string(msg)))
		metrics.ScriptDegrades.Inc()
		return scriptErrorText
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("chat req=%s script read failed: %v", reqID, err)
		metrics.ScriptDegrades.Inc()
		return scriptErrorText
	}
	return string(data)
}
