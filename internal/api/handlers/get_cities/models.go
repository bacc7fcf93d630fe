package get_cities

import "github.com/rakshdevstudio/JCB/internal/domain"

// CityResponse город в ответе API
type CityResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	State      string `json:"state"`
	Country    string `json:"country"`
	SalonCount int    `json:"salonCount"`
}

// CityListResponse список городов
type CityListResponse struct {
	Cities []CityResponse `json:"cities"`
}

// FromDomainCities конвертирует domain модели в HTTP DTO
func FromDomainCities(cities []*domain.City) *CityListResponse {
	out := make([]CityResponse, 0, len(cities))
	for _, c := range cities {
		out = append(out, CityResponse{
			ID:         c.ID,
			Name:       c.Name,
			State:      c.State,
			Country:    c.Country,
			SalonCount: c.SalonCount,
		})
	}
	return &CityListResponse{Cities: out}
}
