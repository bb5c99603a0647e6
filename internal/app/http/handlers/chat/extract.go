package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"fashionai/go_backend/internal/app/metrics"
)

const extractPrompt = `Summarise the following query into a structured JSON format.
Return the result as: {"color": "colour", "product": "product", "gender": "gender"}.
All of the categories may be null, return a null string instead. If brand is mentioned concatenate it with product.
Query: %s`

// extractQuery turns a free-text message into a structured product query.
// It never fails: service errors and malformed JSON degrade to an all-empty
// query, observable via log and counter. Absent or null fields are coerced to
// empty text before the query is handed downstream.
func (s *Service) extractQuery(ctx context.Context, reqID, message string) ProductQuery {
	out, err := s.Gen.Generate(ctx, fmt.Sprintf(extractPrompt, message))
	if err != nil {
		log.Printf("chat req=%s extract failed: %v", reqID, err)
		metrics.ExtractDegrades.Inc()
		return ProductQuery{}
	}

	cleaned := stripCodeFences(out)

	var parsed struct {
		Color   *string `json:"color"`
		Product *string `json:"product"`
		Gender  *string `json:"gender"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		log.Printf("chat req=%s extract parse failed: %v raw=%q", reqID, err, cleaned)
		metrics.ExtractDegrades.Inc()
		return ProductQuery{}
	}

	return ProductQuery{
		Color:   derefString(parsed.Color),
		Product: derefString(parsed.Product),
		Gender:  derefString(parsed.Gender),
	}
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(s), "json") {
		s = strings.TrimSpace(s[4:])
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
