package booking_session

import (
	"context"

	"github.com/rakshdevstudio/JCB/internal/domain"
	createBooking "github.com/rakshdevstudio/JCB/internal/usecase/create_booking"
	getApplicableOffers "github.com/rakshdevstudio/JCB/internal/usecase/get_applicable_offers"
)

// Catalog отдаёт справочные сущности для проверки выбора на каждом шаге
type Catalog interface {
	GetCityByID(ctx context.Context, id string) (*domain.City, error)
	GetSalonByID(ctx context.Context, id string) (*domain.Salon, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
	GetStaffByID(ctx context.Context, id string) (*domain.Staff, error)
}

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// ApplicableOffersUseCase подбирает акции для предпросмотра цены
// на шаге подтверждения
type ApplicableOffersUseCase interface {
	Execute(ctx context.Context, req *getApplicableOffers.Request) (*getApplicableOffers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
