package get_available_slots

import (
	"context"
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveIntervals получает занятые интервалы салона на дату,
	// опционально сужая выборку до конкретного мастера
	GetActiveIntervals(ctx context.Context, salonID string, staffID *string, date time.Time) ([]domain.BookedInterval, error)
}

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	GetSalonByID(ctx context.Context, id string) (*domain.Salon, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
	GetStaffByID(ctx context.Context, id string) (*domain.Staff, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
