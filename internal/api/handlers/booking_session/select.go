package booking_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/rakshdevstudio/JCB/internal/api/handlers"
	"github.com/rakshdevstudio/JCB/internal/domain"
	catalogstore "github.com/rakshdevstudio/JCB/internal/infra/storage/catalog"
	"github.com/rakshdevstudio/JCB/pkg/types"
)

const (
	msgCityNotFound    = "city not found"
	msgSalonNotFound   = "salon not found"
	msgServiceNotFound = "service not found"
	msgStaffNotFound   = "staff member not found"
	msgSalonNotInCity  = "salon does not belong to the selected city"
	msgStaffNotInSalon = "staff member does not work at the selected salon"
	msgInvalidDateTime = "invalid date or time"
	msgTimeOffSlotGrid = "time must align to the slot grid"
)

// HandleSelectCity POST /api/v1/booking-sessions/{sessionId}/city
func (h *Handler) HandleSelectCity(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req SelectCityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/city - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	city, err := h.catalog.GetCityByID(r.Context(), req.CityID)
	if err != nil || !city.IsActive {
		if err != nil && !errors.Is(err, catalogstore.ErrCityNotFound) {
			h.logger.Error("POST /booking-sessions/{id}/city - Failed to get city: city_id=%s, error=%v",
				req.CityID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /booking-sessions/{id}/city - City unavailable: city_id=%s", req.CityID)
		handlers.RespondNotFound(w, msgCityNotFound)
		return
	}

	if !session.Flow.SelectCity(*city) {
		handlers.RespondConflict(w, msgInvalidTransition)
		return
	}

	h.saveAndRespond(w, r, session, "select_city")
}

// HandleSelectSalon POST /api/v1/booking-sessions/{sessionId}/salon
func (h *Handler) HandleSelectSalon(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req SelectSalonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/salon - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	salon, err := h.catalog.GetSalonByID(r.Context(), req.SalonID)
	if err != nil || !salon.IsActive {
		if err != nil && !errors.Is(err, catalogstore.ErrSalonNotFound) {
			h.logger.Error("POST /booking-sessions/{id}/salon - Failed to get salon: salon_id=%s, error=%v",
				req.SalonID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /booking-sessions/{id}/salon - Salon unavailable: salon_id=%s", req.SalonID)
		handlers.RespondNotFound(w, msgSalonNotFound)
		return
	}

	if session.Flow.Selection.City != nil && salon.CityID != session.Flow.Selection.City.ID {
		h.logger.Warn("POST /booking-sessions/{id}/salon - Salon not in city: salon_id=%s, city_id=%s",
			salon.ID, session.Flow.Selection.City.ID)
		handlers.RespondBadRequest(w, msgSalonNotInCity)
		return
	}

	if !session.Flow.SelectSalon(*salon) {
		handlers.RespondConflict(w, msgInvalidTransition)
		return
	}

	h.saveAndRespond(w, r, session, "select_salon")
}

// HandleSelectService POST /api/v1/booking-sessions/{sessionId}/service
func (h *Handler) HandleSelectService(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.catalog.GetServiceByID(r.Context(), req.ServiceID)
	if err != nil || !service.IsActive {
		if err != nil && !errors.Is(err, catalogstore.ErrServiceNotFound) {
			h.logger.Error("POST /booking-sessions/{id}/service - Failed to get service: service_id=%s, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /booking-sessions/{id}/service - Service unavailable: service_id=%s", req.ServiceID)
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	}

	if !session.Flow.SelectService(*service) {
		handlers.RespondConflict(w, msgInvalidTransition)
		return
	}

	h.saveAndRespond(w, r, session, "select_service")
}

// HandleSelectStaff POST /api/v1/booking-sessions/{sessionId}/staff
func (h *Handler) HandleSelectStaff(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req SelectStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var staff *domain.Staff
	if req.StaffID != nil {
		found, err := h.catalog.GetStaffByID(r.Context(), *req.StaffID)
		if err != nil || !found.IsActive {
			if err != nil && !errors.Is(err, catalogstore.ErrStaffNotFound) {
				h.logger.Error("POST /booking-sessions/{id}/staff - Failed to get staff: staff_id=%s, error=%v",
					*req.StaffID, err)
				handlers.RespondInternalError(w)
				return
			}
			h.logger.Warn("POST /booking-sessions/{id}/staff - Staff unavailable: staff_id=%s", *req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)
			return
		}

		if session.Flow.Selection.Salon != nil && found.SalonID != session.Flow.Selection.Salon.ID {
			h.logger.Warn("POST /booking-sessions/{id}/staff - Staff not in salon: staff_id=%s, salon_id=%s",
				found.ID, session.Flow.Selection.Salon.ID)
			handlers.RespondBadRequest(w, msgStaffNotInSalon)
			return
		}

		staff = found
	}

	if !session.Flow.SelectStaff(staff) {
		handlers.RespondConflict(w, msgInvalidTransition)
		return
	}

	h.saveAndRespond(w, r, session, "select_staff")
}

// HandleSelectDateTime POST /api/v1/booking-sessions/{sessionId}/datetime
func (h *Handler) HandleSelectDateTime(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req SelectDateTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/datetime - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/datetime - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/datetime - Invalid time: %s", req.Time)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Время должно попадать в сетку слотов
	if minutes, err := startTime.Minutes(); err != nil || minutes%domain.SlotStepMinutes != 0 {
		h.logger.Warn("POST /booking-sessions/{id}/datetime - Time off grid: %s", req.Time)
		handlers.RespondBadRequest(w, msgTimeOffSlotGrid)
		return
	}

	if !session.Flow.SelectDateTime(date, startTime) {
		handlers.RespondConflict(w, msgInvalidTransition)
		return
	}

	h.saveAndRespond(w, r, session, "select_datetime")
}
