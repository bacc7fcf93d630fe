package get_salon_staff

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

type CatalogService interface {
	ListStaffBySalon(ctx context.Context, salonID string) ([]*domain.Staff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
