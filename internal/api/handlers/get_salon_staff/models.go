package get_salon_staff

import "github.com/rakshdevstudio/JCB/internal/domain"

// StaffResponse мастер в ответе API
type StaffResponse struct {
	ID          string   `json:"id"`
	SalonID     string   `json:"salonId"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Specialties []string `json:"specialties"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Experience  *string  `json:"experience,omitempty"`
}

// StaffListResponse список мастеров салона
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// FromDomainStaff конвертирует domain модели в HTTP DTO
func FromDomainStaff(staff []*domain.Staff) *StaffListResponse {
	out := make([]StaffResponse, 0, len(staff))
	for _, m := range staff {
		specialties := m.Specialties
		if specialties == nil {
			specialties = []string{}
		}
		out = append(out, StaffResponse{
			ID:          m.ID,
			SalonID:     m.SalonID,
			Name:        m.Name,
			Role:        m.Role,
			Specialties: specialties,
			Rating:      m.Rating,
			ReviewCount: m.ReviewCount,
			ImageURL:    m.ImageURL,
			Experience:  m.Experience,
		})
	}
	return &StaffListResponse{Staff: out}
}
