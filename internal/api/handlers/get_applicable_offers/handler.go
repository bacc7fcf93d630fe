package get_applicable_offers

import (
	"errors"
	"net/http"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	getApplicableOffers "github.com/rakshdevstudio/JCB/internal/usecase/get_applicable_offers"
)

const (
	msgInvalidParams = "invalid request parameters"
)

type Handler struct {
	useCase GetApplicableOffersUseCase
	logger  Logger
}

func NewHandler(useCase GetApplicableOffersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers/applicable?cityId=...&salonId=...&serviceId=...&price=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := GetApplicableOffersParams{
		CityID:    query.Get("cityId"),
		SalonID:   query.Get("salonId"),
		ServiceID: query.Get("serviceId"),
		Price:     query.Get("price"),
	}

	ucReq, err := params.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /offers/applicable - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, getApplicableOffers.ErrInvalidInput):
			h.logger.Warn("GET /offers/applicable - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /offers/applicable - Failed to select offers: salon_id=%s, error=%v",
				params.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offers/applicable - Offers selected successfully: salon_id=%s, count=%d",
		params.SalonID, len(resp.Offers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
