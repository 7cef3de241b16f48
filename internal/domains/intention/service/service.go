package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Intention=MockIntentionService

import (
	"context"
	"fmt"
	"paroisse/config"
	"paroisse/infras/otel"
	"paroisse/internal/domains/intention/model"
	"paroisse/internal/domains/intention/model/dto"
	"paroisse/internal/domains/intention/repository"
	parishModel "paroisse/internal/domains/parish/model"
	parishRepo "paroisse/internal/domains/parish/repository"
	"paroisse/shared"
	"paroisse/shared/constant"
	gDto "paroisse/shared/dto"
	"paroisse/shared/failure"
	"paroisse/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	msgParishNotFound = "Paroisse introuvable."
	msgNoOccurrence   = "Veuillez renseigner la date et l'heure d'au moins une messe."
)

type Intention interface {
	Book(ctx context.Context, req dto.BookingRequest) (dto.ReceiptResponse, error)
	List(ctx context.Context, parishID int64, date string) (dto.ListingResponse, error)
}

type serviceImpl struct {
	repo       repository.Intention
	parishRepo parishRepo.Parish
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Intention, parishRepo parishRepo.Parish, cfg *config.Config, otel otel.Otel) Intention {
	return &serviceImpl{
		repo:       repo,
		parishRepo: parishRepo,
		cfg:        cfg,
		otel:       otel,
	}
}

// Book validates the whole submission first, then commits every staged
// occurrence in one transaction.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookingRequest) (res dto.ReceiptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	massType, err := model.ParseMassType(req.MassType, s.cfg.Booking.StrictMassType)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	parish, err := s.parish(ctx, req.ParishID)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	batch := model.Batch{
		Ref:      uuid.NewString(),
		ParishID: parish.ID,
		Donor:    req.Donor,
		MassType: massType,
	}

	plan, err := batch.Plan(req.Slots, now, s.cfg.Booking.LeadTime())
	if err != nil {
		log.Warn().Err(err).Str("booking_ref", batch.Ref).Msg("booking rejected")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if len(plan.Records) == 0 {
		return res, failure.BadRequestFromString(msgNoOccurrence) // nolint:wrapcheck
	}

	if err = s.repo.SaveBatch(ctx, plan.Records); err != nil {
		log.Error().Err(err).Str("booking_ref", batch.Ref).Msg("failed to save intentions")

		return res, failure.Persistence(err) // nolint:wrapcheck
	}

	log.Info().
		Str("booking_ref", batch.Ref).
		Int64("parish_id", parish.ID).
		Int("occurrences", len(plan.Records)).
		Ints("skipped", plan.Skipped).
		Msg("intentions booked")

	return dto.NewReceipt(parish.Name, batch, plan, model.PriceOf(massType, s.cfg.Booking.Fee()), now), nil
}

// List returns a parish's intentions for date (YYYY-MM-DD). An empty or
// unparsable date means today.
func (s *serviceImpl) List(ctx context.Context, parishID int64, date string) (res dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.parishRepo.Exist(ctx, shared.FilterByID(parishID, parishModel.FieldID, parishModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check parish")

		return res, fmt.Errorf("failed to check parish: %w", err)
	}

	if !exist {
		return res, failure.NotFound(msgParishNotFound) // nolint:wrapcheck
	}

	stored, err := model.NormalizeDate(date)
	if err != nil {
		date = timezone.Today().Format(constant.FormDateLayout)
		stored, _ = model.NormalizeDate(date)
	}

	filter := shared.FilterAllEq(model.TableName,
		[]string{model.FieldParishID, model.FieldCelebrationDate},
		[]any{parishID, stored},
	)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get intentions")

		return res, fmt.Errorf("failed to get intentions: %w", err)
	}

	res.FromModels(date, models)

	return res, nil
}

func (s *serviceImpl) parish(ctx context.Context, id int64) (parishModel.Parish, error) {
	parish, err := s.parishRepo.Get(ctx, shared.FilterByID(id, parishModel.FieldID, parishModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get parish")

		return parish, fmt.Errorf("failed to get parish: %w", err)
	}

	if !parish.Exists() {
		return parish, failure.NotFound(msgParishNotFound) // nolint:wrapcheck
	}

	return parish, nil
}
