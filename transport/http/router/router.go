package router

import (
	"paroisse/internal/handlers/intention"
	"paroisse/internal/handlers/parish"
	"paroisse/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Parish    parish.Handler
	Intention intention.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Parish.Router(routerGroup)
		r.DomainHandlers.Intention.Router(routerGroup)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(r.AppMiddleware.APIKey)
			r.DomainHandlers.Parish.AdminRouter(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
	}
}
