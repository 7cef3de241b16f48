package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Parish=MockParishService

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"paroisse/config"
	"paroisse/infras/otel"
	"paroisse/internal/domains/parish/model"
	"paroisse/internal/domains/parish/model/dto"
	"paroisse/internal/domains/parish/repository"
	"paroisse/shared"
	"paroisse/shared/cache"
	"paroisse/shared/constant"
	gDto "paroisse/shared/dto"
	"paroisse/shared/failure"
	"paroisse/shared/timezone"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetParish     = "parish:get"
	cacheGetAllParish  = "parish:gets"
	cacheCountParish   = "parish:count"
	cacheParishCatalog = "parish:catalog"

	msgParishNotFound = "Paroisse introuvable."
	msgCodeNotUnique  = "Le code doit être unique."
	msgInvalidCode    = "Code paroisse invalide."
	msgEmptyUpdate    = "Aucune modification à enregistrer."
)

type Parish interface {
	Create(ctx context.Context, req dto.CreateParishRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetParishesResponse, error)
	Get(ctx context.Context, id int64) (dto.ParishResponse, error)
	Schedule(ctx context.Context, id int64) (dto.ScheduleResponse, error)
	Catalog(ctx context.Context) (dto.ScheduleCatalog, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.ParishResponse, error)
	Update(ctx context.Context, req dto.UpdateParishRequest, id int64) error
}

type serviceImpl struct {
	repo  repository.Parish
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Parish, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Parish {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateParishRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.repo.InsertReturning(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create parish")

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return 0, failure.Conflict(msgCodeNotUnique) // nolint:wrapcheck
		}

		return 0, failure.Persistence(err) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateLists(c)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetParishesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.AllowSort(model.FieldID, model.FieldName, model.FieldCity)
	cacheKey := shared.BuildCacheKey(cacheGetAllParish, req.Page, req.Limit, req.SortBy, req.SortDir)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for parishes")

		return res, nil
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count parishes")

		return res, fmt.Errorf("failed to count parishes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get parishes")

		return res, fmt.Errorf("failed to get parishes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save parishes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ParishResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetParish, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for parish")

		return res, nil
	}

	parish, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(parish)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save parish to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Schedule(ctx context.Context, id int64) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parish, err := s.Get(ctx, id)
	if err != nil {
		return res, err
	}

	return parish.Schedule, nil
}

func (s *serviceImpl) Catalog(ctx context.Context) (res dto.ScheduleCatalog, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheParishCatalog, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheParishCatalog).Msg("cache hit for schedule catalog")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get parish schedules")

		return nil, fmt.Errorf("failed to get parish schedules: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheParishCatalog, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule catalog to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.ParishResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	code := strings.TrimSpace(req.Code)

	parish, err := s.repo.Get(ctx, shared.FilterByID(code, model.FieldCode, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get parish by code")

		return res, fmt.Errorf("failed to get parish by code: %w", err)
	}

	if !parish.Exists() || !sameCode(parish.Code, code) {
		return res, failure.Unauthorized(msgInvalidCode) // nolint:wrapcheck
	}

	res.FromModel(parish)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateParishRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Empty() {
		return failure.BadRequestFromString(msgEmptyUpdate) // nolint:wrapcheck
	}

	parish, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !sameCode(parish.Code, req.Code) {
		return failure.Unauthorized(msgInvalidCode) // nolint:wrapcheck
	}

	hours, err := req.Hours()
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	columns, err := parish.Schedule.Set(hours)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	current := parish.Schedule.Columns()
	fields := make(map[string]any, len(columns)+3)

	for _, column := range columns {
		fields[column] = current[column]
	}

	if req.Announcement != nil {
		fields[model.FieldAnnouncement] = *req.Announcement
	}

	if req.Phone != nil {
		fields[model.FieldPhone] = *req.Phone
	}

	fields[constant.FieldModifiedAt] = timezone.Now()

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update parish")

		return failure.Persistence(err) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetParish, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete parish from cache")
		}

		s.invalidateLists(c)
	}()

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id int64) (model.Parish, error) {
	parish, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get parish")

		return parish, fmt.Errorf("failed to get parish: %w", err)
	}

	if !parish.Exists() {
		return parish, failure.NotFound(msgParishNotFound) // nolint:wrapcheck
	}

	return parish, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllParish)
	shared.InvalidateCaches(ctx, s.cache, cacheCountParish)
	shared.InvalidateCaches(ctx, s.cache, cacheParishCatalog)
}

// sameCode ignores surrounding whitespace in given, as codes are stored trimmed.
func sameCode(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(strings.TrimSpace(given))) == 1
}
