package get_cities

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

type CatalogService interface {
	ListCities(ctx context.Context) ([]*domain.City, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
