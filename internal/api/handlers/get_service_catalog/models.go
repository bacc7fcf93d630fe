package get_service_catalog

import "github.com/rakshdevstudio/JCB/internal/domain"

// CategoryResponse категория услуг в ответе API
type CategoryResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon,omitempty"`
}

// CategoryListResponse список категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ServiceResponse услуга в ответе API
type ServiceResponse struct {
	ID              string  `json:"id"`
	CategoryID      string  `json:"categoryId"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	BasePrice       float64 `json:"basePrice"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainCategories конвертирует domain модели в HTTP DTO
func FromDomainCategories(categories []*domain.ServiceCategory) *CategoryListResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{
			ID:   c.ID,
			Name: c.Name,
			Icon: c.Icon,
		})
	}
	return &CategoryListResponse{Categories: out}
}

// FromDomainServices конвертирует domain модели в HTTP DTO
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ID:              s.ID,
			CategoryID:      s.CategoryID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			BasePrice:       s.BasePrice,
		})
	}
	return &ServiceListResponse{Services: out}
}
