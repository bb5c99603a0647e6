package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 5 * time.Minute
)

// projectCatalog loads the static catalog and projects entries that carry a
// non-empty Product field into the displayed shape. The projection is
// independent of the script runner's textual result.
func (s *Service) projectCatalog(ctx context.Context, reqID string) ([]Product, error) {
	raw, err := s.fetchCatalog(ctx, reqID)
	if err != nil {
		return nil, err
	}

	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]Product, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Product) == "" {
			continue
		}
		products = append(products, Product{
			Brand: e.Brand,
			Price: e.Price,
			Link:  e.Link,
			Image: e.Image,
		})
	}
	return products, nil
}

func (s *Service) fetchCatalog(ctx context.Context, reqID string) ([]byte, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, catalogCacheKey).Bytes(); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Cfg.CatalogURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("catalog status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
			log.Printf("chat req=%s catalog cache write failed: %v", reqID, err)
		}
	}
	return raw, nil
}
