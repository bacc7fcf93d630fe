package get_available_slots

import (
	"errors"
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
	getAvailableSlots "github.com/rakshdevstudio/JCB/internal/usecase/get_available_slots"
)

// GetAvailableSlotsParams параметры запроса сетки слотов из URL
type GetAvailableSlotsParams struct {
	SalonID   string
	ServiceID string
	StaffID   *string
	Date      string // "2026-09-15"
}

// ToUseCaseRequest конвертирует параметры в модель usecase
func (p *GetAvailableSlotsParams) ToUseCaseRequest() (*getAvailableSlots.Request, error) {
	if p.ServiceID == "" {
		return nil, errors.New("serviceId is required")
	}

	date, err := time.Parse(domain.DateFormat, p.Date)
	if err != nil {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}

	return &getAvailableSlots.Request{
		SalonID:   p.SalonID,
		ServiceID: p.ServiceID,
		StaffID:   p.StaffID,
		Date:      date,
	}, nil
}

// SlotResponse один слот сетки
type SlotResponse struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// GetAvailableSlotsResponse ответ с сеткой слотов дня
type GetAvailableSlotsResponse struct {
	Date      string         `json:"date"`
	SalonID   string         `json:"salonId"`
	ServiceID string         `json:"serviceId"`
	StaffID   *string        `json:"staffId,omitempty"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP DTO
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
		})
	}

	return &GetAvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		SalonID:   resp.SalonID,
		ServiceID: resp.ServiceID,
		StaffID:   resp.StaffID,
		Slots:     slots,
	}
}
