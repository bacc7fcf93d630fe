package offers

import (
	"context"
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/internal/integrations/identity"
)

// OfferRepository интерфейс репозитория акций
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	GetByID(ctx context.Context, id string) (*domain.Offer, error)
	ListActive(ctx context.Context) ([]*domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	Delete(ctx context.Context, id string) error
}

// CatalogRepository интерфейс репозитория справочника.
// Нужен витрине: акция, привязанная к салонам города, показывается
// при просмотре этого города.
type CatalogRepository interface {
	ListSalonsByCity(ctx context.Context, cityID string) ([]*domain.Salon, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetRoles(ctx context.Context, userID string) ([]identity.RoleRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
