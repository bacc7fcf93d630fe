package update_booking_status

import "github.com/rakshdevstudio/JCB/internal/service/bookings/models"

// UpdateStatusRequest тело запроса на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID string) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
