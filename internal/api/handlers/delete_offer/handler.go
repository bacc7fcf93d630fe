package delete_offer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/api/middleware"
	"github.com/rakshdevstudio/JCB/internal/service/offers"
)

const (
	msgMissingUserID = "user ID is missing"
	msgForbidden     = "access denied"
	msgNotFound      = "offer not found"
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

// Handle DELETE /api/v1/offers/{offerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offerID := vars["offerId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /offers/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, offerID); err != nil {
		switch {
		case errors.Is(err, offers.ErrOfferNotFound):
			h.logger.Warn("DELETE /offers/{id} - Offer not found: offer_id=%s", offerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, offers.ErrAccessDenied):
			h.logger.Warn("DELETE /offers/{id} - Access denied: offer_id=%s, user_id=%s", offerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /offers/{id} - Failed to delete offer: offer_id=%s, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /offers/{id} - Offer deleted successfully: offer_id=%s, user_id=%s", offerID, userID)
	handlers.RespondNoContent(w)
}
