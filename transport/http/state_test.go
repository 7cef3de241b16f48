package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"paroisse/config"
	"paroisse/infras/otel/mocks"
	"paroisse/transport/http/middleware"
	"paroisse/transport/http/router"
)

func TestHTTP_ShutdownStates(t *testing.T) {
	cfg := &config.Config{}
	appMiddleware := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil)

	server := New(cfg, router.New(router.DomainHandlers{}, appMiddleware), appMiddleware)
	handler := server.Handler()

	tests := []struct {
		name     string
		state    ServerState
		path     string
		expected int
	}{
		{name: "grace period reports unhealthy", state: ServerStateInGracePeriod, path: "/health", expected: http.StatusServiceUnavailable},
		{name: "grace period still routes", state: ServerStateInGracePeriod, path: "/v1/unknown", expected: http.StatusNotFound},
		{name: "cleanup period turns traffic away", state: ServerStateInCleanupPeriod, path: "/v1/unknown", expected: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
