package bookings

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/internal/integrations/identity"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// CatalogRepository интерфейс репозитория справочника.
// Нужен для проверки прав городского менеджера: салон знает свой город.
type CatalogRepository interface {
	GetSalonByID(ctx context.Context, id string) (*domain.Salon, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetRoles(ctx context.Context, userID string) ([]identity.RoleRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
