package parish_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"paroisse/infras/otel/mocks"
	parishMocks "paroisse/internal/domains/parish/mocks"
	"paroisse/internal/domains/parish/model/dto"
	"paroisse/internal/handlers/parish"
	"paroisse/shared/failure"
)

func newRouter(t *testing.T) (http.Handler, *parishMocks.MockParishService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := parishMocks.NewMockParishService(ctrl)

	handler := parish.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	handler.AdminRouter(router)

	return router, mockService
}

func TestHandler_GetParishByID(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(*parishMocks.MockParishService)
		wantCode  int
	}{
		{
			name: "found",
			path: "/parishes/7",
			setupMock: func(m *parishMocks.MockParishService) {
				m.EXPECT().Get(gomock.Any(), int64(7)).Return(dto.ParishResponse{ID: 7, Name: "Saint Michel"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			path: "/parishes/8",
			setupMock: func(m *parishMocks.MockParishService) {
				m.EXPECT().Get(gomock.Any(), int64(8)).Return(dto.ParishResponse{}, failure.NotFound("Paroisse introuvable."))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "invalid id",
			path:      "/parishes/abc",
			setupMock: func(*parishMocks.MockParishService) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_CreateParish(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), dto.CreateParishRequest{Name: "Saint Michel", City: "Cotonou", Code: "michel"}).
			Return(int64(1), nil)

		body := `{"name":"Saint Michel","city":"Cotonou","code":"michel"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parishes", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"data":1}`, rec.Body.String())
	})

	t.Run("missing code", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parishes", strings.NewReader(`{"name":"Saint Michel","city":"Cotonou"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"validation"`)
	})

	t.Run("duplicate code", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), failure.Conflict("Le code doit être unique."))

		body := `{"name":"Saint Michel","city":"Cotonou","code":"michel"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parishes", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_UpdateParish(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		Update(gomock.Any(), gomock.Any(), int64(7)).
		DoAndReturn(func(_ context.Context, req dto.UpdateParishRequest, _ int64) error {
			assert.Equal(t, "michel", req.Code)
			assert.Equal(t, "06:30", req.Schedule["lundi"])

			return nil
		})

	body := `{"code":"michel","schedule":{"lundi":"06:30"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/parishes/7", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Login(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().Login(gomock.Any(), dto.LoginRequest{Code: "nope"}).Return(dto.ParishResponse{}, failure.Unauthorized("Code paroisse invalide."))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parish-space/login", strings.NewReader(`{"code":"nope"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_GetCatalog(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().Catalog(gomock.Any()).Return(dto.ScheduleCatalog{"7": {"0": "07:00"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedules", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"7":{"0":"07:00"}}}`, rec.Body.String())
}
