package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/internal/infra/cache"
)

// Ключи кэша справочника
const (
	keyCities     = "catalog:cities"
	keyCategories = "catalog:categories"
	keyServices   = "catalog:services"
)

// Service сервис справочных данных с read-through кэшом.
// Справочник меняется редко, поэтому промах читает базу и кладёт
// результат в кэш с TTL; ошибки кэша не фатальны — данные всегда
// можно прочитать из базы.
type Service struct {
	repo   CatalogRepository
	cache  cache.Cache
	ttl    time.Duration
	logger Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(repo CatalogRepository, c cache.Cache, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// ListCities получает активные города с количеством салонов
func (s *Service) ListCities(ctx context.Context) ([]*domain.City, error) {
	return cached(ctx, s, keyCities, func() ([]*domain.City, error) {
		return s.repo.ListCities(ctx)
	})
}

// ListSalonsByCity получает активные салоны города
func (s *Service) ListSalonsByCity(ctx context.Context, cityID string) ([]*domain.Salon, error) {
	if cityID == "" {
		return nil, fmt.Errorf("%w: cityID is required", ErrInvalidInput)
	}
	key := "catalog:salons:city:" + cityID
	return cached(ctx, s, key, func() ([]*domain.Salon, error) {
		return s.repo.ListSalonsByCity(ctx, cityID)
	})
}

// ListServiceCategories получает активные категории услуг
func (s *Service) ListServiceCategories(ctx context.Context) ([]*domain.ServiceCategory, error) {
	return cached(ctx, s, keyCategories, func() ([]*domain.ServiceCategory, error) {
		return s.repo.ListServiceCategories(ctx)
	})
}

// ListServices получает активные услуги, опционально по категории
func (s *Service) ListServices(ctx context.Context, categoryID *string) ([]*domain.Service, error) {
	key := keyServices
	if categoryID != nil {
		if *categoryID == "" {
			return nil, fmt.Errorf("%w: categoryID must not be empty when provided", ErrInvalidInput)
		}
		key = keyServices + ":category:" + *categoryID
	}
	return cached(ctx, s, key, func() ([]*domain.Service, error) {
		return s.repo.ListServices(ctx, categoryID)
	})
}

// ListStaffBySalon получает активных мастеров салона
func (s *Service) ListStaffBySalon(ctx context.Context, salonID string) ([]*domain.Staff, error) {
	if salonID == "" {
		return nil, fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}
	key := "catalog:staff:salon:" + salonID
	return cached(ctx, s, key, func() ([]*domain.Staff, error) {
		return s.repo.ListStaffBySalon(ctx, salonID)
	})
}

// cached читает значение из кэша, при промахе загружает из базы
// и кладёт в кэш. Ошибки кэша логируются и не прерывают запрос.
func cached[T any](ctx context.Context, s *Service, key string, load func() ([]T, error)) ([]T, error) {
	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("catalog cache: get %s failed: %v", key, err)
	} else if ok {
		var out []T
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
		s.logger.Warn("catalog cache: corrupt entry for %s, reloading", key)
	}

	out, err := load()
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrInternal, key, err)
	}

	if data, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warn("catalog cache: set %s failed: %v", key, err)
		}
	}

	return out, nil
}
