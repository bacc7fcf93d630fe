package offers

import (
	"context"
	"errors"
	"fmt"

	"github.com/rakshdevstudio/JCB/internal/domain"
	offerRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/offer"
	"github.com/rakshdevstudio/JCB/internal/integrations/identity"
	"github.com/rakshdevstudio/JCB/internal/service/offers/models"
)

// Service сервис акций: администрирование и витрина.
//
// Витрина (Discover) и подбор для бронирования (usecase/get_applicable_offers)
// намеренно фильтруют по-разному: витрина показывает акцию, если она хоть
// как-то относится к городу (ИЛИ-правило), подбор требует совпадения по всем
// измерениям сразу (И-правило).
type Service struct {
	offerRepo      OfferRepository
	catalogRepo    CatalogRepository
	identityClient IdentityClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса акций
func NewService(
	offerRepo OfferRepository,
	catalogRepo CatalogRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		offerRepo:      offerRepo,
		catalogRepo:    catalogRepo,
		identityClient: identityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Create создает акцию. Доступно только super_admin.
func (s *Service) Create(ctx context.Context, userID string, req *models.OfferRequest) (*models.OfferResponse, error) {
	s.logger.Info("CreateOffer: user=%s, title=%q", userID, req.Title)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return nil, err
	}

	offer, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateOffer: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.Offer
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err = s.offerRepo.Create(txCtx, offer)
		return err
	})
	if err != nil {
		s.logger.Error("CreateOffer: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateOffer: created offer id=%s", created.ID)
	return models.FromDomainOffer(created), nil
}

// Update обновляет акцию, полностью заменяя наборы ограничений.
// Доступно только super_admin.
func (s *Service) Update(ctx context.Context, userID string, offerID string, req *models.OfferRequest) (*models.OfferResponse, error) {
	s.logger.Info("UpdateOffer: user=%s, offer=%s", userID, offerID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return nil, err
	}

	offer, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateOffer: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	offer.ID = offerID

	var updated *domain.Offer
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		updated, err = s.offerRepo.Update(txCtx, offer)
		return err
	})
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			s.logger.Warn("UpdateOffer: offer id=%s not found", offerID)
			return nil, ErrOfferNotFound
		}
		s.logger.Error("UpdateOffer: repository error for offer id=%s: %v", offerID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateOffer: updated offer id=%s", offerID)
	return models.FromDomainOffer(updated), nil
}

// Delete удаляет акцию. Доступно только super_admin.
func (s *Service) Delete(ctx context.Context, userID string, offerID string) error {
	s.logger.Info("DeleteOffer: user=%s, offer=%s", userID, offerID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.offerRepo.Delete(ctx, offerID); err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			s.logger.Warn("DeleteOffer: offer id=%s not found", offerID)
			return ErrOfferNotFound
		}
		s.logger.Error("DeleteOffer: repository error for offer id=%s: %v", offerID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteOffer: deleted offer id=%s", offerID)
	return nil
}

// GetByID получает акцию по ID. Публичный метод.
func (s *Service) GetByID(ctx context.Context, offerID string) (*models.OfferResponse, error) {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			return nil, ErrOfferNotFound
		}
		s.logger.Error("GetOffer: repository error for offer id=%s: %v", offerID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOffer(offer), nil
}

// Discover возвращает акции для витрины в порядке featured-затем-новые.
// Без города отдаются все действующие акции. С городом действует
// ИЛИ-правило: акция без географических ограничений, акция с этим городом
// в списке или акция, привязанная к салону этого города.
func (s *Service) Discover(ctx context.Context, cityID *string) (*models.OfferListResponse, error) {
	offers, err := s.offerRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("DiscoverOffers: repository error: %v", err)
		return nil, fmt.Errorf("%w: Discover - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	current := make([]*domain.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.WithinPeriod(now) {
			current = append(current, offer)
		}
	}

	if cityID == nil {
		return models.FromDomainOfferList(current), nil
	}

	// Салоны города подтягиваем один раз, только если есть акции
	// с салонными ограничениями
	var citySalons map[string]bool
	matched := make([]*domain.Offer, 0, len(current))

	for _, offer := range current {
		if !offer.RestrictsCities() && !offer.RestrictsSalons() {
			matched = append(matched, offer)
			continue
		}
		if offer.RestrictsCities() && contains(offer.CityIDs, *cityID) {
			matched = append(matched, offer)
			continue
		}
		if offer.RestrictsSalons() {
			if citySalons == nil {
				salons, err := s.catalogRepo.ListSalonsByCity(ctx, *cityID)
				if err != nil {
					s.logger.Error("DiscoverOffers: failed to list salons for city=%s: %v", *cityID, err)
					return nil, fmt.Errorf("%w: Discover - failed to list salons: %v", ErrInternal, err)
				}
				citySalons = make(map[string]bool, len(salons))
				for _, salon := range salons {
					citySalons[salon.ID] = true
				}
			}
			for _, salonID := range offer.SalonIDs {
				if citySalons[salonID] {
					matched = append(matched, offer)
					break
				}
			}
		}
	}

	s.logger.Info("DiscoverOffers: %d of %d offers shown for city=%s", len(matched), len(current), *cityID)
	return models.FromDomainOfferList(matched), nil
}

// checkAdminAccess проверяет, что пользователь super_admin
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	roles, err := s.identityClient.GetRoles(ctx, userID)
	if err != nil {
		s.logger.Error("checkAdminAccess: failed to get roles for user=%s: %v", userID, err)
		return fmt.Errorf("%w: failed to get roles: %v", ErrInternal, err)
	}

	for _, role := range roles {
		if role.Role == identity.RoleSuperAdmin {
			return nil
		}
	}

	s.logger.Warn("checkAdminAccess: user=%s is not super_admin", userID)
	return ErrAccessDenied
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
