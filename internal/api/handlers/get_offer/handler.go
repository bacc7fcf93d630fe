package get_offer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/service/offers"
)

const (
	msgNotFound = "offer not found"
)

type Handler struct {
	service OfferService
	logger  Logger
}

func NewHandler(service OfferService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers/{offerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offerID := vars["offerId"]

	offer, err := h.service.GetByID(r.Context(), offerID)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrOfferNotFound):
			h.logger.Warn("GET /offers/{id} - Offer not found: offer_id=%s", offerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /offers/{id} - Failed to get offer: offer_id=%s, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offers/{id} - Offer retrieved successfully: offer_id=%s", offerID)
	handlers.RespondJSON(w, http.StatusOK, offer)
}
