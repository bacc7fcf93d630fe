package get_salon_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/internal/service/bookings/models"
)

// ParseQuery собирает запрос сервиса из query-параметров:
// startDate/endDate (YYYY-MM-DD), status, includeInactive
func ParseQuery(query url.Values, salonID string, userID string) (*models.GetSalonBookingsRequest, error) {
	req := &models.GetSalonBookingsRequest{
		UserID:          userID,
		SalonID:         salonID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if v := query.Get("startDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %v", err)
		}
		req.StartDate = &date
	}
	if v := query.Get("endDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %v", err)
		}
		req.EndDate = &date
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	return req, nil
}
