package update_offer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/api/middleware"
	"github.com/rakshdevstudio/JCB/internal/service/offers"
	"github.com/rakshdevstudio/JCB/internal/service/offers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "user ID is missing"
	msgForbidden          = "access denied"
	msgNotFound           = "offer not found"
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

// Handle PUT /api/v1/offers/{offerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offerID := vars["offerId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /offers/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.OfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /offers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	offer, err := h.service.Update(r.Context(), userID, offerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrOfferNotFound):
			h.logger.Warn("PUT /offers/{id} - Offer not found: offer_id=%s", offerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, offers.ErrAccessDenied):
			h.logger.Warn("PUT /offers/{id} - Access denied: offer_id=%s, user_id=%s", offerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, offers.ErrInvalidInput):
			h.logger.Warn("PUT /offers/{id} - Invalid offer: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /offers/{id} - Failed to update offer: offer_id=%s, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /offers/{id} - Offer updated successfully: offer_id=%s, user_id=%s", offerID, userID)
	handlers.RespondJSON(w, http.StatusOK, offer)
}
