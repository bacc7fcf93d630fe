package get_available_slots

import (
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	SalonID   string    // ID салона
	ServiceID string    // ID услуги (определяет длительность слота)
	StaffID   *string   // ID мастера; nil — любой мастер
	Date      time.Time // Дата, на которую строится сетка (без времени)
}

// Response модель ответа с сеткой слотов.
// Слоты возвращаются все, включая занятые: витрина показывает
// полную сетку дня и помечает недоступные.
type Response struct {
	Date      time.Time
	SalonID   string
	ServiceID string
	StaffID   *string
	Slots     []domain.TimeSlot
}
