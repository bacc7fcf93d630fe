package update_offer

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/service/offers/models"
)

type OfferService interface {
	Update(ctx context.Context, userID string, offerID string, req *models.OfferRequest) (*models.OfferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
