package get_service_catalog

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

type CatalogService interface {
	ListServiceCategories(ctx context.Context) ([]*domain.ServiceCategory, error)
	ListServices(ctx context.Context, categoryID *string) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
