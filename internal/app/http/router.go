package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fashionai/go_backend/internal/app/config"
	"fashionai/go_backend/internal/app/http/handlers"
	"fashionai/go_backend/internal/app/http/middleware"
	"fashionai/go_backend/internal/infra/db/postgres"
	"fashionai/go_backend/internal/textgen"
)

func NewRouter(cfg config.Config, db *postgres.DB, gen textgen.Generator, rdb *redis.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(db, cfg, gen, rdb)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.JWTSecret))

		r.Post("/chat", h.ChatMessage)

		r.Route("/closet", func(r chi.Router) {
			r.Get("/{kind}", h.ListCollections)
			r.Post("/{kind}/products", h.SaveProduct)
			r.Delete("/{kind}/{collectionID}/products/{productID}", h.DeleteProduct)
			r.Get("/outfits/{collectionID}/pdf", h.OutfitPDF)
		})
	})

	return r
}
