package get_applicable_offers

import (
	"context"
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

// OfferRepository интерфейс репозитория акций
type OfferRepository interface {
	// ListActive возвращает активные акции с ограничениями,
	// отсортированные: featured выше, затем более новые
	ListActive(ctx context.Context) ([]*domain.Offer, error)
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
