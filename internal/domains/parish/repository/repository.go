package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"paroisse/infras/otel"
	"paroisse/infras/postgres"
	"paroisse/internal/domains/parish/model"
	gDto "paroisse/shared/dto"
	gRepo "paroisse/shared/repository"
)

type Parish interface {
	InsertReturning(ctx context.Context, model model.Parish) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Parish, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Parish, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Parish]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Parish {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Parish](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
