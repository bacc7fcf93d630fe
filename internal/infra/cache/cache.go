package cache

import (
	"context"
	"time"
)

// Cache кэш справочных данных. Ключи формируются вызывающей стороной
// из параметров выборки (см. service/catalog).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Noop кэш-заглушка для конфигураций без redis: никогда не попадает,
// записи молча игнорируются.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (*Noop) Get(context.Context, string) ([]byte, bool, error)            { return nil, false, nil }
func (*Noop) Set(context.Context, string, []byte, time.Duration) error     { return nil }
func (*Noop) Delete(context.Context, ...string) error                      { return nil }
