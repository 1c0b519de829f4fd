package redis

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the catalog cache. The cache is optional: when Redis is
// unreachable the client stays nil and the product handlers fall back to the
// database on every request.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(Ctx).Err(); err != nil {
		log.Printf("Redis unavailable, catalog cache disabled: %v", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}
