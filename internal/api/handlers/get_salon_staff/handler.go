package get_salon_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/service/catalog"
)

const (
	msgMissingSalonID = "salon ID is required"
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

// Handle GET /api/v1/salons/{salonId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := vars["salonId"]

	staff, err := h.service.ListStaffBySalon(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/staff - Invalid salon ID: %v", err)
			handlers.RespondBadRequest(w, msgMissingSalonID)

		default:
			h.logger.Error("GET /salons/{id}/staff - Failed to list staff: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/staff - Staff listed successfully: salon_id=%s, count=%d", salonID, len(staff))
	handlers.RespondJSON(w, http.StatusOK, FromDomainStaff(staff))
}
