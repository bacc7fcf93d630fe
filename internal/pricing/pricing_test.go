package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

func TestCalculateDiscount_Percentage(t *testing.T) {
	offer := &domain.Offer{DiscountType: domain.DiscountPercentage, DiscountValue: 20}

	got, err := CalculateDiscount(1000, offer)
	require.NoError(t, err)

	assert.Equal(t, 800.0, got.DiscountedPrice)
	assert.Equal(t, 200.0, got.Savings)
}

func TestCalculateDiscount_Flat(t *testing.T) {
	offer := &domain.Offer{DiscountType: domain.DiscountFlat, DiscountValue: 150}

	got, err := CalculateDiscount(1000, offer)
	require.NoError(t, err)

	assert.Equal(t, 850.0, got.DiscountedPrice)
	assert.Equal(t, 150.0, got.Savings)
}

func TestCalculateDiscount_FlatLargerThanPrice(t *testing.T) {
	// скидка больше цены: итог обрезается в ноль,
	// экономия ограничена исходной ценой
	offer := &domain.Offer{DiscountType: domain.DiscountFlat, DiscountValue: 1500}

	got, err := CalculateDiscount(1000, offer)
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.DiscountedPrice)
	assert.Equal(t, 1000.0, got.Savings)
}

func TestCalculateDiscount_HundredPercent(t *testing.T) {
	offer := &domain.Offer{DiscountType: domain.DiscountPercentage, DiscountValue: 100}

	got, err := CalculateDiscount(500, offer)
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.DiscountedPrice)
	assert.Equal(t, 500.0, got.Savings)
}

func TestCalculateDiscount_ZeroPrice(t *testing.T) {
	offer := &domain.Offer{DiscountType: domain.DiscountFlat, DiscountValue: 100}

	got, err := CalculateDiscount(0, offer)
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.DiscountedPrice)
	assert.Equal(t, 0.0, got.Savings)
}

func TestCalculateDiscount_NegativePrice(t *testing.T) {
	offer := &domain.Offer{DiscountType: domain.DiscountPercentage, DiscountValue: 10}

	_, err := CalculateDiscount(-1, offer)
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestCalculateDiscount_NegativeValue(t *testing.T) {
	offer := &domain.Offer{DiscountType: domain.DiscountPercentage, DiscountValue: -10}

	_, err := CalculateDiscount(100, offer)
	assert.ErrorIs(t, err, ErrNegativeDiscountValue)
}

func TestCalculateDiscount_UnknownType(t *testing.T) {
	offer := &domain.Offer{DiscountType: "bogus", DiscountValue: 10}

	_, err := CalculateDiscount(100, offer)
	assert.ErrorIs(t, err, ErrUnknownDiscountType)
}
