package get_applicable_offers

import (
	"context"
	"fmt"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/internal/pricing"
)

// UseCase use case подбора акций для бронирования
type UseCase struct {
	offerRepo    OfferRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(offerRepo OfferRepository, logger Logger) *UseCase {
	return &UseCase{
		offerRepo:    offerRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подбора применимых акций
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetApplicableOffers: validation failed: %v", err)
		return nil, err
	}

	// 2. Активные акции в порядке витрины
	offers, err := uc.offerRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetApplicableOffers: failed to list offers: %v", err)
		return nil, fmt.Errorf("%w: failed to list offers: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 3. Фильтруем по периоду и применимости, считаем предпросмотр цены.
	// Порядок репозитория сохраняется.
	applicable := make([]ApplicableOffer, 0)
	for _, offer := range offers {
		if !offer.WithinPeriod(now) {
			continue
		}
		if !isApplicable(offer, req) {
			continue
		}

		discount, err := pricing.CalculateDiscount(req.Price, offer)
		if err != nil {
			// Битая акция в справочнике не должна ронять весь подбор
			uc.logger.Error("GetApplicableOffers: skipping offer id=%s: %v", offer.ID, err)
			continue
		}

		applicable = append(applicable, ApplicableOffer{
			Offer:           *offer,
			DiscountedPrice: discount.DiscountedPrice,
			Savings:         discount.Savings,
		})
	}

	uc.logger.Info("GetApplicableOffers: %d of %d offers applicable for city=%s, salon=%s, service=%s",
		len(applicable), len(offers), req.CityID, req.SalonID, req.ServiceID)

	return &Response{Offers: applicable}, nil
}

// isApplicable строгая проверка применимости: все три измерения сразу.
// Пустой набор ограничений по измерению означает «для всех».
func isApplicable(offer *domain.Offer, req *Request) bool {
	if offer.RestrictsCities() && !contains(offer.CityIDs, req.CityID) {
		return false
	}
	if offer.RestrictsSalons() && !contains(offer.SalonIDs, req.SalonID) {
		return false
	}
	if offer.RestrictsServices() && !contains(offer.ServiceIDs, req.ServiceID) {
		return false
	}
	return true
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
