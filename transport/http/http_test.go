package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"paroisse/config"
	"paroisse/infras/otel/mocks"
	transport "paroisse/transport/http"
	"paroisse/transport/http/middleware"
	"paroisse/transport/http/router"
)

func newServer(cfg *config.Config) *transport.HTTP {
	appMiddleware := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil)

	return transport.New(cfg, router.New(router.DomainHandlers{}, appMiddleware), appMiddleware)
}

func TestHTTP_Health(t *testing.T) {
	server := newServer(&config.Config{})
	handler := server.Handler()

	assert.Equal(t, transport.ServerStateReady, server.State())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTP_AdminRouteRequiresAPIKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.APIKey = "s3cret"

	handler := newServer(cfg).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/parishes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTP_UnknownRoute(t *testing.T) {
	handler := newServer(&config.Config{}).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
