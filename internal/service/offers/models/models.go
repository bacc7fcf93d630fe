package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

var (
	// ErrInvalidPeriod возвращается, когда конец периода раньше начала
	ErrInvalidPeriod = errors.New("offer end date is before start date")

	// ErrInvalidDiscount возвращается при некорректной скидке
	ErrInvalidDiscount = errors.New("invalid discount")
)

// Request модели

// OfferRequest запрос на создание или обновление акции.
// Наборы ограничений при обновлении заменяются целиком.
type OfferRequest struct {
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	BannerImageURL *string `json:"bannerImageUrl,omitempty"`
	StartDate      string  `json:"startDate"` // "2026-09-01"
	EndDate        string  `json:"endDate"`   // включительно
	DiscountType   string  `json:"discountType"`
	DiscountValue  float64 `json:"discountValue"`
	IsFeatured     bool    `json:"isFeatured"`
	IsActive       bool    `json:"isActive"`

	ServiceIDs []string `json:"serviceIds,omitempty"`
	SalonIDs   []string `json:"salonIds,omitempty"`
	CityIDs    []string `json:"cityIds,omitempty"`
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *OfferRequest) ToDomain() (*domain.Offer, error) {
	if r.Title == "" {
		return nil, errors.New("title is required")
	}

	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %v", err)
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %v", err)
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidPeriod
	}

	discountType := domain.DiscountType(r.DiscountType)
	if discountType != domain.DiscountPercentage && discountType != domain.DiscountFlat {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidDiscount, r.DiscountType)
	}
	if r.DiscountValue < 0 {
		return nil, fmt.Errorf("%w: negative value", ErrInvalidDiscount)
	}
	if discountType == domain.DiscountPercentage && r.DiscountValue > 100 {
		return nil, fmt.Errorf("%w: percentage above 100", ErrInvalidDiscount)
	}

	return &domain.Offer{
		Title:          r.Title,
		Description:    r.Description,
		BannerImageURL: r.BannerImageURL,
		StartDate:      startDate,
		EndDate:        endDate,
		DiscountType:   discountType,
		DiscountValue:  r.DiscountValue,
		IsFeatured:     r.IsFeatured,
		IsActive:       r.IsActive,
		ServiceIDs:     r.ServiceIDs,
		SalonIDs:       r.SalonIDs,
		CityIDs:        r.CityIDs,
	}, nil
}

// Response модели

// OfferResponse ответ с данными акции
type OfferResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	BannerImageURL *string `json:"bannerImageUrl,omitempty"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	DiscountType   string  `json:"discountType"`
	DiscountValue  float64 `json:"discountValue"`
	IsFeatured     bool    `json:"isFeatured"`
	IsActive       bool    `json:"isActive"`

	ServiceIDs []string `json:"serviceIds"`
	SalonIDs   []string `json:"salonIds"`
	CityIDs    []string `json:"cityIds"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OfferListResponse ответ со списком акций
type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
}

// Методы конвертации

// FromDomainOffer конвертирует domain модель в DTO
func FromDomainOffer(o *domain.Offer) *OfferResponse {
	if o == nil {
		return nil
	}

	return &OfferResponse{
		ID:             o.ID,
		Title:          o.Title,
		Description:    o.Description,
		BannerImageURL: o.BannerImageURL,
		StartDate:      o.StartDate.Format(domain.DateFormat),
		EndDate:        o.EndDate.Format(domain.DateFormat),
		DiscountType:   string(o.DiscountType),
		DiscountValue:  o.DiscountValue,
		IsFeatured:     o.IsFeatured,
		IsActive:       o.IsActive,
		ServiceIDs:     emptyIfNil(o.ServiceIDs),
		SalonIDs:       emptyIfNil(o.SalonIDs),
		CityIDs:        emptyIfNil(o.CityIDs),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// FromDomainOfferList конвертирует список domain моделей в DTO
func FromDomainOfferList(offers []*domain.Offer) *OfferListResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, *FromDomainOffer(o))
	}
	return &OfferListResponse{Offers: out}
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
