package get_applicable_offers

import (
	"errors"
	"strconv"

	"github.com/rakshdevstudio/JCB/internal/domain"
	getApplicableOffers "github.com/rakshdevstudio/JCB/internal/usecase/get_applicable_offers"
)

// GetApplicableOffersParams параметры подбора акций из URL
type GetApplicableOffersParams struct {
	CityID    string
	SalonID   string
	ServiceID string
	Price     string
}

// ToUseCaseRequest конвертирует параметры в модель usecase
func (p *GetApplicableOffersParams) ToUseCaseRequest() (*getApplicableOffers.Request, error) {
	if p.CityID == "" || p.SalonID == "" || p.ServiceID == "" {
		return nil, errors.New("cityId, salonId and serviceId are required")
	}

	price, err := strconv.ParseFloat(p.Price, 64)
	if err != nil || price < 0 {
		return nil, errors.New("price must be a non-negative number")
	}

	return &getApplicableOffers.Request{
		CityID:    p.CityID,
		SalonID:   p.SalonID,
		ServiceID: p.ServiceID,
		Price:     price,
	}, nil
}

// ApplicableOfferResponse применимая акция с предпросмотром цены
type ApplicableOfferResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	BannerImageURL  *string `json:"bannerImageUrl,omitempty"`
	DiscountType    string  `json:"discountType"`
	DiscountValue   float64 `json:"discountValue"`
	IsFeatured      bool    `json:"isFeatured"`
	EndDate         string  `json:"endDate"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Savings         float64 `json:"savings"`
}

// GetApplicableOffersResponse ответ со списком применимых акций
type GetApplicableOffersResponse struct {
	Offers []ApplicableOfferResponse `json:"offers"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP DTO
func FromUseCaseResponse(resp *getApplicableOffers.Response) *GetApplicableOffersResponse {
	out := make([]ApplicableOfferResponse, 0, len(resp.Offers))
	for _, o := range resp.Offers {
		out = append(out, ApplicableOfferResponse{
			ID:              o.Offer.ID,
			Title:           o.Offer.Title,
			Description:     o.Offer.Description,
			BannerImageURL:  o.Offer.BannerImageURL,
			DiscountType:    string(o.Offer.DiscountType),
			DiscountValue:   o.Offer.DiscountValue,
			IsFeatured:      o.Offer.IsFeatured,
			EndDate:         o.Offer.EndDate.Format(domain.DateFormat),
			DiscountedPrice: o.DiscountedPrice,
			Savings:         o.Savings,
		})
	}
	return &GetApplicableOffersResponse{Offers: out}
}
