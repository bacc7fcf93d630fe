package catalog

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	ListCities(ctx context.Context) ([]*domain.City, error)
	ListSalonsByCity(ctx context.Context, cityID string) ([]*domain.Salon, error)
	ListServiceCategories(ctx context.Context) ([]*domain.ServiceCategory, error)
	ListServices(ctx context.Context, categoryID *string) ([]*domain.Service, error)
	ListStaffBySalon(ctx context.Context, salonID string) ([]*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
