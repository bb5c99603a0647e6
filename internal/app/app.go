package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"fashionai/go_backend/internal/app/config"
	apphttp "fashionai/go_backend/internal/app/http"
	"fashionai/go_backend/internal/infra/cache"
	"fashionai/go_backend/internal/infra/db/postgres"
	"fashionai/go_backend/internal/textgen"
)

func Run() {
	cfg := config.MustLoad()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	rdb := cache.New(cfg.RedisAddr, cfg.RedisPassword)

	var gen textgen.Generator
	switch cfg.TextGenProvider {
	case "openai":
		gen = textgen.NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, nil)
	default:
		gen, err = textgen.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("textgen: %v", err)
		}
	}

	router := apphttp.NewRouter(cfg, db, gen, rdb)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
