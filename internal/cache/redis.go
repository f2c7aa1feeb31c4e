package cache

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/leirbagxis/FrameTrain/pkg/config"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	once        sync.Once
)

// RedisOptions accepts either host:port or a redis:// URL. Sessions and preview
// payloads are small and short-lived, so reads fail fast instead of holding a
// request while the server is away.
func RedisOptions(addr string) (*redis.Options, error) {
	opts := &redis.Options{Addr: addr}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_HOST: %w", err)
		}
		opts = parsed
	}

	opts.PoolSize = 20
	opts.MinIdleConns = 2
	opts.MaxRetries = 2
	opts.DialTimeout = 3 * time.Second
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second
	return opts, nil
}

func GetRedisClient() *redis.Client {
	once.Do(func() {
		opts, err := RedisOptions(config.RedisAddr)
		if err != nil {
			log.Fatalf("%v", err)
		}
		redisClient = redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Falha ao conectar no Redis (%s): %v", opts.Addr, err)
		}

		log.Printf("✅ Redis conectado em %s (db %d)", opts.Addr, opts.DB)
	})
	return redisClient
}

func CloseRedis() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}
