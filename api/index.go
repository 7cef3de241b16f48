package handler

import (
	"net/http"
	"paroisse/config"
	"paroisse/di"
	"paroisse/shared/logger"
	"sync"
)

var (
	once   sync.Once
	routes http.Handler
)

// Handler is the serverless entry point. Connections are opened on the first
// request and reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		server, _ := di.InitializeService()
		routes = server.Handler()
	})

	r.RequestURI = r.URL.String()

	routes.ServeHTTP(w, r)
}
