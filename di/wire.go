//go:build wireinject
// +build wireinject

package di

import (
	"todofeed/config"
	"todofeed/infras/otel"
	"todofeed/infras/postgres"
	"todofeed/infras/redis"
	todoHandler "todofeed/internal/handlers/todo"
	"todofeed/shared/cache"
	"todofeed/transport/http"
	"todofeed/transport/http/middleware"
	"todofeed/transport/http/router"

	todoRepository "todofeed/internal/domains/todo/repository"
	todoService "todofeed/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
