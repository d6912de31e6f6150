package router

import (
	"net/http"

	"todofeed/config"
	"todofeed/internal/handlers/todo"
	"todofeed/shared/constant"
	"todofeed/shared/failure"
	"todofeed/transport/http/middleware"
	"todofeed/transport/http/response"

	_ "todofeed/docs" // registers the OpenAPI document served under /swagger

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	middleware     middleware.AppMiddleware
	config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)

	if r.config.App.TrustProxy {
		router.Use(chiMiddleware.RealIP)
	}

	router.Use(
		chiMiddleware.Recoverer,
		r.middleware.CORS(),
		r.middleware.Tracing,
		r.middleware.RequestLogger,
		r.middleware.RateLimit(),
	)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.NotFound(constant.ResponseErrorRouteNotFound))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, &failure.Failure{Code: http.StatusMethodNotAllowed, Message: constant.ResponseErrorMethodNotAllowed})
	})

	if r.swaggerEnabled() {
		router.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Todo.Router(routerGroup)
	})
}

// swaggerEnabled serves the docs outside production, or anywhere when explicitly enabled.
func (r *Router) swaggerEnabled() bool {
	return r.config.App.Swagger.Enable || r.config.Server.Env != constant.ServerEnvProduction
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		middleware:     middleware,
		config:         config,
	}
}
