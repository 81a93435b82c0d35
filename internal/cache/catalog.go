package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cleankart/marketplace-api/internal/config"
	"github.com/cleankart/marketplace-api/internal/models"
)

const catalogTTL = 5 * time.Minute

// Catalog is a read-through cache for the service catalog. A nil *Catalog
// (redis unconfigured) is valid and always misses.
type Catalog struct {
	rdb *redis.Client
}

func NewCatalog(cfg *config.Config) *Catalog {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, catalog cache disabled: %v", err)
		return nil
	}

	return &Catalog{rdb: rdb}
}

func Key(category string) string {
	if category == "" {
		return "services:all"
	}
	return "services:category:" + category
}

func (c *Catalog) Get(ctx context.Context, key string) ([]models.Service, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *Catalog) Set(ctx context.Context, key string, services []models.Service) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, catalogTTL).Err(); err != nil {
		log.Printf("catalog cache write failed: %v", err)
	}
}
