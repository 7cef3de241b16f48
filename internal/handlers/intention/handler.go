package intention

import (
	"errors"
	"net/http"
	"paroisse/infras/otel"
	"paroisse/internal/domains/intention/model/dto"
	"paroisse/internal/domains/intention/service"
	"paroisse/shared"
	"paroisse/shared/constant"
	"paroisse/shared/failure"
	"paroisse/shared/validator"
	"paroisse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Intention
	otel    otel.Otel
}

func New(service service.Intention, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/intentions", handler.BookIntention)
	router.Get("/parishes/{id}/intentions", handler.GetIntentions)
}

// BookIntention books one intention per populated occurrence and returns the receipt.
// @Summary Book a mass intention
// @Description Form fields: paroisse_id, type_messe (simple|triduum|neuvaine|trentain), nom, and date_i (YYYY-MM-DD), heure_i (HH:MM or HHhMM), texte_i for each occurrence i.
// @Tags Intention
// @Accept x-www-form-urlencoded
// @Produce json
// @Param paroisse_id formData int true "Parish ID"
// @Param type_messe formData string false "Mass type"
// @Param nom formData string false "Donor"
// @Param date_1 formData string false "First celebration date"
// @Param heure_1 formData string false "First celebration time"
// @Param texte_1 formData string false "First intention text"
// @Success 201 {object} response.Data[dto.ReceiptResponse]
// @Failure 400 {object} response.Error "Malformed date or time, first celebration too soon, or no occurrence with both date and time (nothing is recorded)"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/intentions [post]
func (handler *Handler) BookIntention(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookIntention")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.BookingRequest{}

	if err := req.FromForm(request.PostForm); err != nil {
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking form")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("parish_id", req.ParishID).Msg("failed to book intention")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Intentions booked " + res.BookingRef)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetIntentions lists a parish's intentions for one day grouped by time.
// @Summary List intentions of a parish
// @Tags Intention
// @Produce json
// @Param id path int true "Parish ID"
// @Param date query string false "Day (YYYY-MM-DD), today by default"
// @Success 200 {object} response.Data[dto.ListingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/parishes/{id}/intentions [get]
func (handler *Handler) GetIntentions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetIntentions")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, id, request.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("parish_id", id).Msg("failed to get intentions")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
