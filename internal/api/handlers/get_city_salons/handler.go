package get_city_salons

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/service/catalog"
)

const (
	msgMissingCityID = "city ID is required"
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

// Handle GET /api/v1/cities/{cityId}/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cityID := vars["cityId"]

	salons, err := h.service.ListSalonsByCity(r.Context(), cityID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /cities/{id}/salons - Invalid city ID: %v", err)
			handlers.RespondBadRequest(w, msgMissingCityID)

		default:
			h.logger.Error("GET /cities/{id}/salons - Failed to list salons: city_id=%s, error=%v", cityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cities/{id}/salons - Salons listed successfully: city_id=%s, count=%d", cityID, len(salons))
	handlers.RespondJSON(w, http.StatusOK, FromDomainSalons(salons))
}
