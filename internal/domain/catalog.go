package domain

import "github.com/rakshdevstudio/JCB/pkg/types"

// City is an area the chain operates in. Immutable reference data from the
// booking flow's point of view.
type City struct {
	ID       string
	Name     string
	State    string
	Country  string
	IsActive bool

	// SalonCount is a derived display value, not a stored column.
	SalonCount int
}

// Salon is a single location. OpenTime/CloseTime are salon-local wall-clock
// values; OpenTime < CloseTime always holds (enforced at write time).
type Salon struct {
	ID          string
	CityID      string
	Name        string
	Area        string
	Address     string
	Phone       *string
	Email       *string
	Rating      *float64
	ReviewCount *int
	ImageURL    *string
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	IsActive    bool
}

// ServiceCategory groups services for display.
type ServiceCategory struct {
	ID           string
	Name         string
	Icon         *string
	DisplayOrder *int
	IsActive     bool
}

// Service is a bookable treatment.
type Service struct {
	ID              string
	CategoryID      string
	Name            string
	Description     *string
	DurationMinutes int // whole minutes, > 0
	BasePrice       float64
	IsActive        bool
}

// Staff is a stylist attached to one salon. Booking a specific staff member
// is optional; a nil staff selection means "no preference".
type Staff struct {
	ID          string
	SalonID     string
	Name        string
	Role        string
	Specialties []string
	Rating      *float64
	ReviewCount *int
	ImageURL    *string
	Experience  *string
	IsActive    bool
}
