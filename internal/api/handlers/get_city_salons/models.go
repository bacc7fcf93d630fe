package get_city_salons

import "github.com/rakshdevstudio/JCB/internal/domain"

// SalonResponse салон в ответе API
type SalonResponse struct {
	ID          string   `json:"id"`
	CityID      string   `json:"cityId"`
	Name        string   `json:"name"`
	Area        string   `json:"area"`
	Address     string   `json:"address"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	OpenTime    string   `json:"openTime"`
	CloseTime   string   `json:"closeTime"`
}

// SalonListResponse список салонов города
type SalonListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// FromDomainSalons конвертирует domain модели в HTTP DTO
func FromDomainSalons(salons []*domain.Salon) *SalonListResponse {
	out := make([]SalonResponse, 0, len(salons))
	for _, s := range salons {
		out = append(out, SalonResponse{
			ID:          s.ID,
			CityID:      s.CityID,
			Name:        s.Name,
			Area:        s.Area,
			Address:     s.Address,
			Phone:       s.Phone,
			Email:       s.Email,
			Rating:      s.Rating,
			ReviewCount: s.ReviewCount,
			ImageURL:    s.ImageURL,
			OpenTime:    s.OpenTime.String(),
			CloseTime:   s.CloseTime.String(),
		})
	}
	return &SalonListResponse{Salons: out}
}
