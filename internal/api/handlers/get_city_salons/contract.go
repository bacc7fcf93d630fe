package get_city_salons

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

type CatalogService interface {
	ListSalonsByCity(ctx context.Context, cityID string) ([]*domain.Salon, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
