package create_offer

import (
	"errors"
	"net/http"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/api/middleware"
	"github.com/rakshdevstudio/JCB/internal/service/offers"
	"github.com/rakshdevstudio/JCB/internal/service/offers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "user ID is missing"
	msgForbidden          = "access denied"
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

// Handle POST /api/v1/offers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /offers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.OfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	offer, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrAccessDenied):
			h.logger.Warn("POST /offers - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, offers.ErrInvalidInput):
			h.logger.Warn("POST /offers - Invalid offer: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /offers - Failed to create offer: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offers - Offer created successfully: offer_id=%s, user_id=%s", offer.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, offer)
}
