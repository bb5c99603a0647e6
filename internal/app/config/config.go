package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	JWTSecret       string
	CORSAllowOrigin string

	RedisAddr     string
	RedisPassword string

	TextGenProvider string
	GeminiAPIKey    string
	GeminiModel     string
	OpenAIBaseURL   string
	OpenAIAPIKey    string
	OpenAIModel     string

	ScriptRunnerURL   string
	ScriptRunnerToken string
	CatalogURL        string
}

func MustLoad() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env load failed: %v", err)
	}

	cfg := Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DatabaseURL:     mustEnv("DATABASE_URL"),
		JWTSecret:       mustEnv("JWT_SECRET"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "http://localhost:3000"),

		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPassword: env("REDIS_PASSWORD", ""),

		TextGenProvider: env("TEXTGEN_PROVIDER", "gemini"),
		GeminiAPIKey:    env("GEMINI_API_KEY", ""),
		GeminiModel:     env("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIBaseURL:   env("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:    env("OPENAI_API_KEY", ""),
		OpenAIModel:     env("OPENAI_MODEL", "gpt-4o-mini"),

		ScriptRunnerURL:   env("SCRIPT_RUNNER_URL", "http://localhost:9000"),
		ScriptRunnerToken: env("SCRIPT_RUNNER_TOKEN", ""),
		CatalogURL:        env("CATALOG_URL", "http://localhost:3000/products.json"),
	}

	switch cfg.TextGenProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Fatalf("missing env GEMINI_API_KEY")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Fatalf("missing env OPENAI_API_KEY")
		}
	default:
		log.Fatalf("unknown TEXTGEN_PROVIDER %q", cfg.TextGenProvider)
	}

	return cfg
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
