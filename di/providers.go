package di

import (
	"context"
	"paroisse/config"
	"paroisse/infras/otel"
	"paroisse/infras/postgres"
	"paroisse/infras/redis"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const otelShutdownTimeout = 5 * time.Second

// The providers below pair each store handle with its teardown so the injector
// returns a single cleanup for main to defer.

func provideDatabase(cfg *config.Config) (*postgres.Connection, func()) {
	conn := postgres.New(cfg)

	return conn, conn.Close
}

func provideRedis(cfg *config.Config) (*goRedis.Client, func()) {
	client := redis.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing redis connection")
		}
	}
}

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	tracer := otel.New(cfg)

	return tracer, func() {
		ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()

		if err := tracer.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed flushing traces")
		}
	}
}
