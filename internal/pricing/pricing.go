// Package pricing считает цену со скидкой по акции.
// Чистые функции без побочных эффектов: одна и та же пара
// (цена, акция) всегда даёт один и тот же результат.
package pricing

import (
	"errors"
	"fmt"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

var (
	// ErrNegativePrice возвращается при отрицательной исходной цене
	ErrNegativePrice = errors.New("pricing: price must not be negative")

	// ErrNegativeDiscountValue возвращается при отрицательном значении скидки
	ErrNegativeDiscountValue = errors.New("pricing: discount value must not be negative")

	// ErrUnknownDiscountType возвращается при неизвестном типе скидки
	ErrUnknownDiscountType = errors.New("pricing: unknown discount type")
)

// Discount результат применения акции к цене.
// Инвариант: DiscountedPrice + Savings == исходная цена, кроме случая,
// когда фиксированная скидка больше цены — тогда цена обрезается в ноль,
// а экономия равна исходной цене.
type Discount struct {
	DiscountedPrice float64
	Savings         float64
}

// CalculateDiscount применяет акцию к цене.
//
// percentage: экономия = цена * значение / 100.
// flat: экономия = min(значение, цена) — скидка не может превышать цену,
// итог никогда не уходит в минус.
func CalculateDiscount(price float64, offer *domain.Offer) (Discount, error) {
	if price < 0 {
		return Discount{}, fmt.Errorf("%w: got %v", ErrNegativePrice, price)
	}
	if offer.DiscountValue < 0 {
		return Discount{}, fmt.Errorf("%w: got %v", ErrNegativeDiscountValue, offer.DiscountValue)
	}

	var savings float64
	switch offer.DiscountType {
	case domain.DiscountPercentage:
		savings = price * offer.DiscountValue / 100
	case domain.DiscountFlat:
		savings = offer.DiscountValue
		if savings > price {
			savings = price
		}
	default:
		return Discount{}, fmt.Errorf("%w: %q", ErrUnknownDiscountType, offer.DiscountType)
	}

	discounted := price - savings
	if discounted < 0 {
		discounted = 0
	}

	return Discount{DiscountedPrice: discounted, Savings: savings}, nil
}
