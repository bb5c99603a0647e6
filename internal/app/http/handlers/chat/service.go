package chat

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"fashionai/go_backend/internal/app/config"
	"fashionai/go_backend/internal/app/metrics"
	"fashionai/go_backend/internal/textgen"
)

// errorReply resolves the placeholder so the user never sees a message stuck
// in a pending state when a pipeline stage fails.
const errorReply = "Sorry, something went wrong while answering. Please try again."

type Service struct {
	Cfg   config.Config
	Gen   textgen.Generator
	HTTP  *http.Client
	Redis *redis.Client
	Convs *ConversationStore
}

func New(cfg config.Config, gen textgen.Generator, httpClient *http.Client, rdb *redis.Client) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Service{
		Cfg:   cfg,
		Gen:   gen,
		HTTP:  httpClient,
		Redis: rdb,
		Convs: NewConversationStore(),
	}
}

func (s *Service) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("chat req=unknown bad request: %v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	s.handleMessage(w, r, req)
}

// handleMessage runs one pipeline pass:
// append user message and placeholder, classify, dispatch, resolve the
// placeholder in place. One pass, one outcome; no retries.
func (s *Service) handleMessage(w http.ResponseWriter, r *http.Request, req ChatRequest) {
	reqID := fmt.Sprintf("chat-%d", time.Now().UnixNano())
	if strings.TrimSpace(req.Message) == "" {
		log.Printf("chat req=%s empty message", reqID)
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	conv := s.Convs.GetOrCreate(strings.TrimSpace(req.ConversationID))
	log.Printf("chat req=%s start conversation=%s message_len=%d", reqID, conv.ID, len(req.Message))

	conv.Append(SenderUser, req.Message, nil)
	placeholder := conv.Append(SenderAssistant, "", nil)

	category, err := s.classify(r.Context(), req.Message)
	if err != nil {
		log.Printf("chat req=%s classify failed: %v", reqID, err)
		metrics.PipelineFailures.WithLabelValues("classify").Inc()
		conv.Resolve(placeholder.ID, errorReply, nil)
		http.Error(w, "classification failed", http.StatusBadGateway)
		return
	}
	metrics.Classifications.WithLabelValues(category.String()).Inc()
	log.Printf("chat req=%s category=%s", reqID, category)

	content := "Here is some information related to your query:"
	var products []Product

	switch category {
	case IntentProductSearch:
		query := s.extractQuery(r.Context(), reqID, req.Message)
		log.Printf("chat req=%s query color=%q product=%q gender=%q", reqID, query.Color, query.Product, query.Gender)

		scriptStart := time.Now()
		scriptOut := s.runExternalSearch(r.Context(), reqID, query)
		log.Printf("chat req=%s script result_len=%d degraded=%t took=%s",
			reqID, len(scriptOut), scriptOut == scriptErrorText, time.Since(scriptStart))
		// TODO: feed the script result into the projection once product
		// confirms the filtering should follow the search args.
		log.Printf("chat req=%s script result not merged into catalog projection", reqID)

		products, err = s.projectCatalog(r.Context(), reqID)
		if err != nil {
			log.Printf("chat req=%s catalog failed: %v", reqID, err)
			metrics.PipelineFailures.WithLabelValues("catalog").Inc()
			products = nil
		}
	default:
		analysis, err := s.analyzeColors(r.Context(), req.Message)
		if err != nil {
			log.Printf("chat req=%s color analysis failed: %v", reqID, err)
			metrics.PipelineFailures.WithLabelValues("analyze").Inc()
			conv.Resolve(placeholder.ID, errorReply, nil)
			http.Error(w, "color analysis failed", http.StatusBadGateway)
			return
		}
		content = analysis
	}

	resolved, ok := conv.Resolve(placeholder.ID, content, products)
	if !ok {
		log.Printf("chat req=%s placeholder %d missing", reqID, placeholder.ID)
		http.Error(w, "conversation state lost", http.StatusInternalServerError)
		return
	}

	resp := ChatResponse{ConversationID: conv.ID, Message: resolved}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
	log.Printf("chat req=%s done message_id=%d products=%d", reqID, resolved.ID, len(resolved.Products))
}
