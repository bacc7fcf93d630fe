package create_booking

import (
	"time"

	"github.com/rakshdevstudio/JCB/internal/bookingflow"
	"github.com/rakshdevstudio/JCB/pkg/types"
)

// Request модель запроса на создание бронирования из собранного выбора мастера записи
type Request struct {
	UserID *string // nil для гостевой записи

	// Selection собранный выбор мастера записи. Должен быть полным:
	// салон, услуга, дата и время обязательны, мастер может быть nil.
	Selection bookingflow.Selection

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         *string

	// IdempotencyKey ключ сессии мастера: повторная отправка той же
	// формы возвращает уже созданное бронирование, а не дубль
	IdempotencyKey string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               string
	BookingReference string
	Status           string

	SalonID   string
	ServiceID string
	StaffID   *string

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Price           float64

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         *string

	// AlreadyExisted true, если бронирование с этим ключом идемпотентности
	// уже было создано раньше и вернулось повторно
	AlreadyExisted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
