package sessionstore

import (
	"context"
	"errors"
	"time"

	"github.com/rakshdevstudio/JCB/internal/bookingflow"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessionstore: session not found")

	// ErrStorage возвращается при ошибках нижележащего хранилища
	ErrStorage = errors.New("sessionstore: storage error")
)

// Session состояние одного мастера бронирования.
// Живёт от входа пользователя в мастер до успешной отправки или истечения TTL.
type Session struct {
	ID string `json:"id"`

	Flow bookingflow.Flow `json:"flow"`

	// IdempotencyKey выдаётся при создании сессии и передаётся в запись
	// бронирования, чтобы повторная отправка той же формы не создала дубль.
	IdempotencyKey string `json:"idempotency_key"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store хранилище сессий мастера бронирования
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error

	// AcquireSubmitLock берёт краткоживущий лок на отправку сессии.
	// Возвращает false, если отправка этой сессии уже идёт.
	AcquireSubmitLock(ctx context.Context, id string, ttl time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, id string) error
}
