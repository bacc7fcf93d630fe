package create_booking

import (
	"context"
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
	GetActiveIntervals(ctx context.Context, salonID string, staffID *string, date time.Time) ([]domain.BookedInterval, error)
}

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	GetSalonByID(ctx context.Context, id string) (*domain.Salon, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
	GetStaffByID(ctx context.Context, id string) (*domain.Staff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
