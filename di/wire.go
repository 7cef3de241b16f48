//go:build wireinject
// +build wireinject

package di

import (
	"paroisse/config"
	"paroisse/shared/cache"
	"paroisse/transport/http"
	"paroisse/transport/http/middleware"
	"paroisse/transport/http/router"

	intentionRepository "paroisse/internal/domains/intention/repository"
	intentionService "paroisse/internal/domains/intention/service"
	parishRepository "paroisse/internal/domains/parish/repository"
	parishService "paroisse/internal/domains/parish/service"
	intentionHandler "paroisse/internal/handlers/intention"
	parishHandler "paroisse/internal/handlers/parish"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	provideDatabase,
	provideOtel,
	provideRedis,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var parishDomain = wire.NewSet(
	parishRepository.New,
	parishService.New,
)

var intentionDomain = wire.NewSet(
	intentionRepository.New,
	intentionService.New,
)

var domains = wire.NewSet(
	parishDomain,
	intentionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	parishHandler.New,
	intentionHandler.New,
	router.New,
)

// InitializeService builds the HTTP server. The returned cleanup closes the
// database and redis connections and flushes traces.
func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
