package handlers

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"fashionai/go_backend/internal/app/config"
	"fashionai/go_backend/internal/app/http/handlers/chat"
	"fashionai/go_backend/internal/infra/db/postgres"
	"fashionai/go_backend/internal/textgen"
)

type Handlers struct {
	DB   *postgres.DB
	Cfg  config.Config
	Chat *chat.Service
}

func New(db *postgres.DB, cfg config.Config, gen textgen.Generator, rdb *redis.Client) *Handlers {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	return &Handlers{
		DB:   db,
		Cfg:  cfg,
		Chat: chat.New(cfg, gen, httpClient, rdb),
	}
}
