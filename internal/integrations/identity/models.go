package identity

// Роли, которые выдаёт IdentityService
const (
	RoleCustomer     = "customer"
	RoleStaff        = "staff"
	RoleSalonManager = "salon_manager"
	RoleCityManager  = "city_manager"
	RoleSuperAdmin   = "super_admin"
)

// UserProfile профиль пользователя из IdentityService
type UserProfile struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// RoleRecord запись о роли пользователя.
// Для salon_manager заполнен salon_id, для city_manager — city_id,
// у super_admin область действия не ограничена.
type RoleRecord struct {
	Role    string  `json:"role"`
	SalonID *string `json:"salon_id"`
	CityID  *string `json:"city_id"`
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
