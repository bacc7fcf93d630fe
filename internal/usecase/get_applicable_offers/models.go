package get_applicable_offers

import (
	"github.com/rakshdevstudio/JCB/internal/domain"
)

// Request модель запроса на подбор акций для конкретного бронирования.
// Подбор строгий: акция обязана подходить по ВСЕМ трём измерениям сразу
// (город, салон, услуга). Пустой набор ограничений акции по измерению
// означает «подходит всем».
type Request struct {
	CityID    string  // Город выбранного салона
	SalonID   string  // Выбранный салон
	ServiceID string  // Выбранная услуга
	Price     float64 // Цена, от которой считается предпросмотр скидки
}

// ApplicableOffer акция, применимая к бронированию, с предпросмотром цены
type ApplicableOffer struct {
	Offer           domain.Offer
	DiscountedPrice float64
	Savings         float64
}

// Response модель ответа: применимые акции в порядке витрины
// (featured выше, затем более новые)
type Response struct {
	Offers []ApplicableOffer
}
