package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	getAvailableSlots "github.com/rakshdevstudio/JCB/internal/usecase/get_available_slots"
)

const (
	msgInvalidParams   = "invalid request parameters"
	msgSalonNotFound   = "salon not found"
	msgServiceNotFound = "service not found"
	msgStaffNotFound   = "staff member not found"
	msgStaffNotInSalon = "staff member does not work at this salon"
	msgDateInPast      = "date must not be in the past"
	msgInvalidSchedule = "salon schedule is misconfigured"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/available-slots?serviceId=...&staffId=...&date=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	params := GetAvailableSlotsParams{
		SalonID:   vars["salonId"],
		ServiceID: query.Get("serviceId"),
		Date:      query.Get("date"),
	}
	if staffID := query.Get("staffId"); staffID != "" {
		params.StaffID = &staffID
	}

	ucReq, err := params.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /salons/{id}/available-slots - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/available-slots - Salon not found: salon_id=%s", params.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{id}/available-slots - Service not found: service_id=%s", params.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("GET /salons/{id}/available-slots - Staff not found")
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotInSalon):
			h.logger.Warn("GET /salons/{id}/available-slots - Staff not in salon: salon_id=%s", params.SalonID)
			handlers.RespondBadRequest(w, msgStaffNotInSalon)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /salons/{id}/available-slots - Date in past: date=%s", params.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidSchedule), errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Error("GET /salons/{id}/available-slots - Misconfigured catalog: salon_id=%s, error=%v",
				params.SalonID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSchedule)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /salons/{id}/available-slots - Failed to build slots: salon_id=%s, error=%v",
				params.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/available-slots - Slots built successfully: salon_id=%s, date=%s, slots=%d",
		params.SalonID, params.Date, len(resp.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
