package get_applicable_offers

import (
	"context"

	getApplicableOffers "github.com/rakshdevstudio/JCB/internal/usecase/get_applicable_offers"
)

type GetApplicableOffersUseCase interface {
	Execute(ctx context.Context, req *getApplicableOffers.Request) (*getApplicableOffers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
