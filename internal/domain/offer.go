package domain

import "time"

// DiscountType discriminates how an offer's value is applied to a price.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// Offer is a promotion with an inclusive validity period and three optional
// restriction sets. An empty restriction set means the offer is global for
// that dimension (applies to all), not that it applies to none.
type Offer struct {
	ID             string
	Title          string
	Description    *string
	BannerImageURL *string
	StartDate      time.Time // inclusive, salon-local calendar date
	EndDate        time.Time // inclusive
	DiscountType   DiscountType
	DiscountValue  float64
	IsFeatured     bool
	IsActive       bool

	ServiceIDs []string
	SalonIDs   []string
	CityIDs    []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithinPeriod reports whether day falls inside [StartDate, EndDate],
// comparing calendar dates only.
func (o *Offer) WithinPeriod(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(truncateToDay(o.StartDate)) && !d.After(truncateToDay(o.EndDate))
}

// RestrictsServices reports whether the offer limits applicable services.
func (o *Offer) RestrictsServices() bool { return len(o.ServiceIDs) > 0 }

// RestrictsSalons reports whether the offer limits applicable salons.
func (o *Offer) RestrictsSalons() bool { return len(o.SalonIDs) > 0 }

// RestrictsCities reports whether the offer limits applicable cities.
func (o *Offer) RestrictsCities() bool { return len(o.CityIDs) > 0 }

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
