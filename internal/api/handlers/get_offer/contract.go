package get_offer

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/service/offers/models"
)

type OfferService interface {
	GetByID(ctx context.Context, offerID string) (*models.OfferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
