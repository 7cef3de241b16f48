package parish

import (
	"net/http"
	"paroisse/infras/otel"
	"paroisse/internal/domains/parish/model/dto"
	"paroisse/internal/domains/parish/service"
	"paroisse/shared"
	"paroisse/shared/constant"
	gDto "paroisse/shared/dto"
	"paroisse/shared/validator"
	"paroisse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Parish
	otel    otel.Otel
}

func New(service service.Parish, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/parishes", handler.GetParishes)
	router.Get("/parishes/{id}", handler.GetParishByID)
	router.Get("/parishes/{id}/schedule", handler.GetSchedule)
	router.Patch("/parishes/{id}", handler.UpdateParish)
	router.Get("/schedules", handler.GetCatalog)
	router.Post("/parish-space/login", handler.Login)
}

// AdminRouter registers the routes reserved to API key holders.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Post("/parishes", handler.CreateParish)
}

// CreateParish handles the creation of a new parish.
// @Summary Create a new parish
// @Description Register a parish. Every weekday starts as "À préciser".
// @Tags Parish
// @Accept json
// @Produce json
// @Param request body dto.CreateParishRequest true "Create Parish Request"
// @Success 201 {object} response.Data[int64] "Identifier of the new parish"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/parishes [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateParish(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateParish")
	defer scope.End()

	req := dto.CreateParishRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create parish")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, id)
}

// GetParishes lists the parishes.
// @Summary List parishes
// @Tags Parish
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetParishesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/parishes [get]
func (handler *Handler) GetParishes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetParishes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get parishes")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetParishByID returns a parish with its weekly hours and announcement.
// @Summary Get a parish by ID
// @Tags Parish
// @Produce json
// @Param id path int true "Parish ID"
// @Success 200 {object} response.Data[dto.ParishResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/parishes/{id} [get]
func (handler *Handler) GetParishByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetParishByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get parish")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetSchedule returns the weekly hours of a parish, Monday first.
// @Summary Get a parish schedule
// @Tags Parish
// @Produce json
// @Param id path int true "Parish ID"
// @Success 200 {object} response.Data[dto.ScheduleResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/parishes/{id}/schedule [get]
func (handler *Handler) GetSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Schedule(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetCatalog returns every parish's hours keyed by parish id then weekday number (0 is Sunday).
// @Summary Get the schedule catalog
// @Tags Parish
// @Produce json
// @Success 200 {object} response.Data[dto.ScheduleCatalog]
// @Failure 500 {object} response.Error
// @Router /v1/schedules [get]
func (handler *Handler) GetCatalog(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCatalog")
	defer scope.End()

	res, err := handler.service.Catalog(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule catalog")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Login opens the parish space for the holder of a parish code.
// @Summary Parish space login
// @Tags Parish
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Parish code"
// @Success 200 {object} response.Data[dto.ParishResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/parish-space/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("parish space login refused")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateParish applies a self-service update authorized by the parish code.
// @Summary Update a parish
// @Description Update announcement, phone and weekday hours. Schedule keys are lundi..dimanche or monday..sunday.
// @Tags Parish
// @Accept json
// @Produce json
// @Param id path int true "Parish ID"
// @Param request body dto.UpdateParishRequest true "Update Parish Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/parishes/{id} [patch]
func (handler *Handler) UpdateParish(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateParish")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateParishRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update parish")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Mise à jour réussie !")
}
