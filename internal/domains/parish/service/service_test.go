package service_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"paroisse/config"
	"paroisse/infras/otel/mocks"
	parishMocks "paroisse/internal/domains/parish/mocks"
	"paroisse/internal/domains/parish/model"
	"paroisse/internal/domains/parish/model/dto"
	"paroisse/internal/domains/parish/service"
	cacheMocks "paroisse/shared/cache/mocks"
	gDto "paroisse/shared/dto"
	"paroisse/shared/failure"
)

func newParish() model.Parish {
	return model.Parish{
		ID:       7,
		Name:     "Saint Michel",
		City:     "Cotonou",
		Code:     "michel-7",
		Schedule: model.DefaultSchedule(),
	}
}

func setup(t *testing.T) (service.Parish, *parishMocks.MockParish, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := parishMocks.NewMockParish(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestParishService_Create(t *testing.T) {
	tests := []struct {
		name     string
		insert   error
		wantKind failure.Kind
		wantErr  bool
	}{
		{name: "created"},
		{
			name:     "duplicate code",
			insert:   &pq.Error{Code: "23505"},
			wantKind: failure.KindConflict,
			wantErr:  true,
		},
		{
			name:     "storage failure",
			insert:   errors.New("connection reset"),
			wantKind: failure.KindPersistence,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := setup(t)

			req := dto.CreateParishRequest{Name: " Saint Michel ", City: "Cotonou", Code: "michel-7"}

			mockRepo.EXPECT().
				InsertReturning(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p model.Parish) (int64, error) {
					assert.Equal(t, "Saint Michel", p.Name)
					assert.Equal(t, model.HoursToBeAnnounced, p.Hours(model.Sunday))

					if tt.insert != nil {
						return 0, tt.insert
					}

					return 7, nil
				})

			id, err := svc.Create(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
				assert.NotContains(t, err.Error(), "connection reset")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), id)
		})
	}
}

func TestParishService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, _, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), "parish:get:7", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.ParishResponse)
				require.True(t, ok)
				res.ID = 7
				res.Name = "cached"

				return nil
			})

		res, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "cached", res.Name)
	})

	t.Run("from repository", func(t *testing.T) {
		svc, mockRepo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newParish(), nil)

		res, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Saint Michel", res.Name)
		assert.Len(t, res.Schedule, 7)
		assert.Equal(t, string(model.Monday), res.Schedule[0].Day)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Parish{}, nil)

		_, err := svc.Get(context.Background(), 99)
		require.Error(t, err)
		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})
}

func TestParishService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Parish, error) {
			assert.Empty(t, params.SortBy)

			return []model.Parish{newParish()}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "code; DROP TABLE parishes"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	require.Len(t, res.Parishes, 1)
}

func TestParishService_Catalog(t *testing.T) {
	svc, mockRepo, mockCache := setup(t)

	parish := newParish()
	parish.Sunday = "07:00, 09:30"

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Parish{parish}, nil)

	res, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "07:00, 09:30", res["7"]["0"])
	assert.Equal(t, model.HoursToBeAnnounced, res["7"]["1"])
}

func TestParishService_Login(t *testing.T) {
	tests := []struct {
		name    string
		found   model.Parish
		code    string
		wantErr bool
	}{
		{name: "matching code", found: newParish(), code: "michel-7"},
		{name: "unknown code", found: model.Parish{}, code: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := setup(t)

			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.found, nil)

			res, err := svc.Login(context.Background(), dto.LoginRequest{Code: tt.code})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, failure.KindUnauthorized, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), res.ID)
		})
	}
}

func TestParishService_LoginTrimsCode(t *testing.T) {
	svc, mockRepo, _ := setup(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Parish, error) {
			_, args := filter.GetWhereClause()
			assert.Contains(t, slices.Collect(maps.Values(args)), any("michel-7"))

			return newParish(), nil
		})

	res, err := svc.Login(context.Background(), dto.LoginRequest{Code: " michel-7\n"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
}

func TestParishService_Update(t *testing.T) {
	announcement := "Messe chrismale jeudi"

	t.Run("schedule and announcement", func(t *testing.T) {
		svc, mockRepo, _ := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newParish(), nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "06:30", fields["hours_monday"])
				assert.Equal(t, "08:00, 10:00", fields["hours_sunday"])
				assert.Equal(t, announcement, fields[model.FieldAnnouncement])
				assert.NotContains(t, fields, "hours_tuesday")
				assert.Contains(t, fields, "modified_at")

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateParishRequest{
			Code:         "michel-7",
			Announcement: &announcement,
			Schedule:     map[string]string{"lundi": "06:30", "sunday": " 08:00, 10:00 "},
		}, 7)
		require.NoError(t, err)
	})

	t.Run("code with surrounding spaces", func(t *testing.T) {
		svc, mockRepo, _ := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newParish(), nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(context.Background(), dto.UpdateParishRequest{Code: "michel-7 ", Announcement: &announcement}, 7)
		require.NoError(t, err)
	})

	t.Run("wrong code", func(t *testing.T) {
		svc, mockRepo, _ := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newParish(), nil)

		err := svc.Update(context.Background(), dto.UpdateParishRequest{Code: "michel-8", Announcement: &announcement}, 7)
		require.Error(t, err)
		assert.Equal(t, failure.KindUnauthorized, failure.GetKind(err))
	})

	t.Run("unknown weekday", func(t *testing.T) {
		svc, mockRepo, _ := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(newParish(), nil)

		err := svc.Update(context.Background(), dto.UpdateParishRequest{
			Code:     "michel-7",
			Schedule: map[string]string{"funday": "10:00"},
		}, 7)
		require.Error(t, err)
		assert.Equal(t, failure.KindValidation, failure.GetKind(err))
	})

	t.Run("empty request", func(t *testing.T) {
		svc, _, _ := setup(t)

		err := svc.Update(context.Background(), dto.UpdateParishRequest{Code: "michel-7"}, 7)
		require.Error(t, err)
		assert.Equal(t, failure.KindValidation, failure.GetKind(err))
	})
}
