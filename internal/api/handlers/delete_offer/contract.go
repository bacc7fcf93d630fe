package delete_offer

import "context"

type OfferService interface {
	Delete(ctx context.Context, userID string, offerID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
