package get_offers

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/service/offers/models"
)

type OfferService interface {
	Discover(ctx context.Context, cityID *string) (*models.OfferListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
