package booking_session

import (
	"time"

	"github.com/rakshdevstudio/JCB/internal/bookingflow"
	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/internal/infra/sessionstore"
	createBooking "github.com/rakshdevstudio/JCB/internal/usecase/create_booking"
)

// Request модели

// SelectCityRequest тело запроса выбора города
type SelectCityRequest struct {
	CityID string `json:"cityId"`
}

// SelectSalonRequest тело запроса выбора салона
type SelectSalonRequest struct {
	SalonID string `json:"salonId"`
}

// SelectServiceRequest тело запроса выбора услуги
type SelectServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

// SelectStaffRequest тело запроса выбора мастера. Null означает «любой мастер».
type SelectStaffRequest struct {
	StaffID *string `json:"staffId"`
}

// SelectDateTimeRequest тело запроса выбора даты и времени
type SelectDateTimeRequest struct {
	Date string `json:"date"` // "2026-09-15"
	Time string `json:"time"` // "10:30"
}

// GoToStepRequest тело запроса перехода на более ранний шаг
type GoToStepRequest struct {
	Step string `json:"step"`
}

// SubmitRequest тело запроса отправки собранного бронирования
type SubmitRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail string  `json:"customerEmail"`
	Notes         *string `json:"notes,omitempty"`
}

// Response модели

// NamedRef краткая ссылка на справочную сущность в выборе
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SelectionResponse текущий выбор мастера записи
type SelectionResponse struct {
	City    *NamedRef `json:"city,omitempty"`
	Salon   *NamedRef `json:"salon,omitempty"`
	Service *NamedRef `json:"service,omitempty"`
	Staff   *NamedRef `json:"staff,omitempty"`
	Date    *string   `json:"date,omitempty"`
	Time    *string   `json:"time,omitempty"`
}

// PricePreview предпросмотр цены на шаге подтверждения:
// базовая цена услуги и лучшая применимая акция, если есть
type PricePreview struct {
	BasePrice  float64 `json:"basePrice"`
	FinalPrice float64 `json:"finalPrice"`
	Savings    float64 `json:"savings"`
	OfferID    *string `json:"offerId,omitempty"`
	OfferTitle *string `json:"offerTitle,omitempty"`
}

// SessionResponse состояние сессии мастера записи
type SessionResponse struct {
	ID           string            `json:"id"`
	Step         string            `json:"step"`
	Progress     float64           `json:"progress"`
	CanGoBack    bool              `json:"canGoBack"`
	Complete     bool              `json:"complete"`
	Selection    SelectionResponse `json:"selection"`
	PricePreview *PricePreview     `json:"pricePreview,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// SubmitConflictResponse ответ 409 при устаревшем выборе: на какой шаг
// вернуться, чтобы починить бронирование
type SubmitConflictResponse struct {
	Code        int     `json:"code"`
	Message     string  `json:"message"`
	RevisitStep *string `json:"revisitStep,omitempty"`
}

// SubmitResponse ответ с созданным бронированием
type SubmitResponse struct {
	ID               string  `json:"id"`
	BookingReference string  `json:"bookingReference"`
	Status           string  `json:"status"`
	SalonID          string  `json:"salonId"`
	ServiceID        string  `json:"serviceId"`
	StaffID          *string `json:"staffId,omitempty"`
	BookingDate      string  `json:"bookingDate"`
	StartTime        string  `json:"startTime"`
	DurationMinutes  int     `json:"durationMinutes"`
	Price            float64 `json:"price"`
	CustomerName     string  `json:"customerName"`
	CustomerPhone    string  `json:"customerPhone"`
	CustomerEmail    string  `json:"customerEmail"`
	Notes            *string `json:"notes,omitempty"`
	AlreadyExisted   bool    `json:"alreadyExisted"`
	CreatedAt        string  `json:"createdAt"`
}

// Методы конвертации

// FromSession конвертирует сессию в HTTP DTO
func FromSession(s *sessionstore.Session) *SessionResponse {
	sel := s.Flow.Selection

	resp := &SessionResponse{
		ID:        s.ID,
		Step:      string(s.Flow.Step),
		Progress:  s.Flow.Progress(),
		CanGoBack: s.Flow.CanGoBack(),
		Complete:  s.Flow.IsComplete(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if sel.City != nil {
		resp.Selection.City = &NamedRef{ID: sel.City.ID, Name: sel.City.Name}
	}
	if sel.Salon != nil {
		resp.Selection.Salon = &NamedRef{ID: sel.Salon.ID, Name: sel.Salon.Name}
	}
	if sel.Service != nil {
		resp.Selection.Service = &NamedRef{ID: sel.Service.ID, Name: sel.Service.Name}
	}
	if sel.Staff != nil {
		resp.Selection.Staff = &NamedRef{ID: sel.Staff.ID, Name: sel.Staff.Name}
	}
	if sel.Date != nil {
		date := sel.Date.Format(domain.DateFormat)
		resp.Selection.Date = &date
	}
	if sel.Time != nil {
		t := sel.Time.String()
		resp.Selection.Time = &t
	}

	return resp
}

// ToUseCaseRequest собирает запрос usecase из сессии и контактных данных
func (r *SubmitRequest) ToUseCaseRequest(session *sessionstore.Session, userID *string) *createBooking.Request {
	return &createBooking.Request{
		UserID:         userID,
		Selection:      session.Flow.Selection,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		CustomerEmail:  r.CustomerEmail,
		Notes:          r.Notes,
		IdempotencyKey: session.IdempotencyKey,
	}
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP DTO
func FromUseCaseResponse(resp *createBooking.Response) *SubmitResponse {
	return &SubmitResponse{
		ID:               resp.ID,
		BookingReference: resp.BookingReference,
		Status:           resp.Status,
		SalonID:          resp.SalonID,
		ServiceID:        resp.ServiceID,
		StaffID:          resp.StaffID,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Price:            resp.Price,
		CustomerName:     resp.CustomerName,
		CustomerPhone:    resp.CustomerPhone,
		CustomerEmail:    resp.CustomerEmail,
		Notes:            resp.Notes,
		AlreadyExisted:   resp.AlreadyExisted,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}

// parseStep валидирует строковое имя шага мастера
func parseStep(s string) (bookingflow.Step, bool) {
	step := bookingflow.Step(s)
	for _, known := range bookingflow.Steps {
		if step == known {
			return step, true
		}
	}
	return "", false
}
