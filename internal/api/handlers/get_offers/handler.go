package get_offers

import (
	"net/http"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
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

// Handle GET /api/v1/offers?cityId=...
// Витринный список: без города — все текущие акции, с городом — акции,
// подходящие этому городу хотя бы по одному измерению.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var cityID *string
	if v := r.URL.Query().Get("cityId"); v != "" {
		cityID = &v
	}

	resp, err := h.service.Discover(r.Context(), cityID)
	if err != nil {
		h.logger.Error("GET /offers - Failed to discover offers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /offers - Offers listed successfully: count=%d", len(resp.Offers))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
