package get_cities

import (
	"net/http"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.ListCities(r.Context())
	if err != nil {
		h.logger.Error("GET /cities - Failed to list cities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cities - Cities listed successfully: count=%d", len(cities))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCities(cities))
}
