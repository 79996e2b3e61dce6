package infra_redis_init

import (
	"fmt"
	"net"
	"time"

	"github.com/Jaymin100/BooHoo/internal/config"
	"github.com/go-redis/redis"
)

const dialTimeout = 3 * time.Second

func options(cfg config.RedisCache) *redis.Options {
	return &redis.Options{
		Addr:        net.JoinHostPort(cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	}
}

// EstablishConn returns a client that has answered a PING. The client is
// closed when it does not.
func EstablishConn(cfg config.RedisCache) (*redis.Client, error) {
	client := redis.NewClient(options(cfg))

	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s db %d: %w", net.JoinHostPort(cfg.Host, cfg.Port), cfg.DB, err)
	}

	return client, nil
}
