package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"paroisse/infras/otel"
	"paroisse/infras/postgres"
	"paroisse/internal/domains/intention/model"
	"paroisse/shared/constant"
	gDto "paroisse/shared/dto"
	gRepo "paroisse/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Intention interface {
	SaveBatch(ctx context.Context, records []model.Intention) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Intention, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Intention]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Intention {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Intention](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SaveBatch inserts records in order within one transaction. Either all
// records are committed or none.
func (r *repositoryImpl) SaveBatch(ctx context.Context, records []model.Intention) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".SaveBatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, record := range records {
			if err := r.InsertTx(ctx, tx, record); err != nil {
				return fmt.Errorf("occurrence %d: %w", record.Occurrence, err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save intentions: %w", err)
	}

	return nil
}
