package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jaymin100/BooHoo/internal/config"
	http_debug "github.com/Jaymin100/BooHoo/internal/delivery/http/debug"
	http_init "github.com/Jaymin100/BooHoo/internal/delivery/http/init"
	http_room "github.com/Jaymin100/BooHoo/internal/delivery/http/room"
	http_swagger "github.com/Jaymin100/BooHoo/internal/delivery/http/swagger"
	http_voting "github.com/Jaymin100/BooHoo/internal/delivery/http/voting"
	infra_pg_init "github.com/Jaymin100/BooHoo/internal/infra/postgres/init"
	infra_postgres_result "github.com/Jaymin100/BooHoo/internal/infra/postgres/result"
	infra_redis_init "github.com/Jaymin100/BooHoo/internal/infra/redis/init"
	infra_redis_ratelimit "github.com/Jaymin100/BooHoo/internal/infra/redis/ratelimit"
	"github.com/Jaymin100/BooHoo/internal/service/ratelimit"
	storage_room "github.com/Jaymin100/BooHoo/internal/storage/room"
	usecase_room "github.com/Jaymin100/BooHoo/internal/usecase/room"
	usecase_vote "github.com/Jaymin100/BooHoo/internal/usecase/vote"
	"github.com/gin-gonic/gin"
)

// Go runs the server until SIGINT or SIGTERM. Connections opened here are
// closed on every return path.
func Go(cfg *config.Config) error {
	logger := NewLogger(cfg.Log)
	slog.SetDefault(logger)
	gin.SetMode(cfg.HTTP.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var limiter usecase_room.RateLimiter
	if cfg.Redis.Enabled() {
		redisConn, err := infra_redis_init.EstablishConn(cfg.Redis)
		if err != nil {
			return err
		}
		defer redisConn.Close()
		limiter = infra_redis_ratelimit.New(redisConn, "boohoo:create_room", cfg.RateLimit.Requests, cfg.RateLimit.Window)
		logger.Info("rate limiter backed by redis", slog.Int("db", cfg.Redis.DB))
	} else {
		limiter = ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	var results usecase_vote.ResultRepository
	if cfg.Postgres.Enabled() {
		pgConn, err := infra_pg_init.EstablishConn(cfg.Postgres)
		if err != nil {
			return err
		}
		defer pgConn.Close()
		archive := infra_postgres_result.New(pgConn)
		if err := archive.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate results archive: %w", err)
		}
		results = archive
		logger.Info("results archive enabled")
	}

	controllerPool := newControllerPool(cfg, logger, limiter, results)
	if err := controllerPool.RunAll(ctx, cfg.HTTP.Addr(), cfg.HTTP.ShutdownTimeout); err != nil {
		return fmt.Errorf("run http server: %w", err)
	}
	return nil
}

func newControllerPool(
	cfg *config.Config,
	logger *slog.Logger,
	limiter usecase_room.RateLimiter,
	results usecase_vote.ResultRepository,
) *http_init.ControllerPool {
	voteOpts := []usecase_vote.Option{usecase_vote.WithLogger(logger)}
	if results != nil {
		voteOpts = append(voteOpts, usecase_vote.WithResults(results))
	}

	registry := storage_room.New()
	roomUC := usecase_room.New(registry, limiter, usecase_room.WithLogger(logger))
	voteUC := usecase_vote.New(roomUC, voteOpts...)

	controllerPool := http_init.NewControllerPool(
		http_init.WithLogger(logger),
		http_init.WithAllowedOrigins(cfg.HTTP.AllowedOrigins),
		http_init.WithTrustedProxies(cfg.HTTP.TrustedProxies),
	)
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_room.New(roomUC,
		http_room.WithLogger(logger),
		http_room.WithPublicURL(cfg.HTTP.PublicURL),
	))
	controllerPool.Add(http_voting.New(voteUC, http_voting.WithLogger(logger)))
	if cfg.HTTP.DebugRoutes {
		controllerPool.Add(http_debug.New(roomUC))
		logger.Warn("debug routes enabled")
	}

	controllerPool.Register()
	return controllerPool
}
