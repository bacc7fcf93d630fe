package create_booking

import (
	"errors"

	"github.com/rakshdevstudio/JCB/internal/bookingflow"
)

var (
	// ErrIncompleteSelection возвращается, когда в выборе мастера записи
	// не хватает обязательного шага
	ErrIncompleteSelection = errors.New("booking selection is incomplete")

	// ErrInvalidInput возвращается при некорректных контактных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSalonUnavailable возвращается, когда выбранный салон исчез или
	// деактивирован между выбором и отправкой
	ErrSalonUnavailable = errors.New("selected salon is no longer available")

	// ErrServiceUnavailable возвращается, когда выбранная услуга исчезла
	// или деактивирована между выбором и отправкой
	ErrServiceUnavailable = errors.New("selected service is no longer available")

	// ErrStaffUnavailable возвращается, когда выбранный мастер исчез,
	// деактивирован или сменил салон между выбором и отправкой
	ErrStaffUnavailable = errors.New("selected staff member is no longer available")

	// ErrSlotNotAvailable возвращается, когда слот заняли раньше
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// StepToRevisit сообщает, на какой шаг мастера нужно вернуть пользователя,
// чтобы починить устаревший выбор. Для ошибок, не связанных с конкретным
// шагом, возвращает false.
func StepToRevisit(err error) (bookingflow.Step, bool) {
	switch {
	case errors.Is(err, ErrSalonUnavailable):
		return bookingflow.StepSalon, true
	case errors.Is(err, ErrServiceUnavailable):
		return bookingflow.StepService, true
	case errors.Is(err, ErrStaffUnavailable):
		return bookingflow.StepStaff, true
	case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, ErrInvalidDate):
		return bookingflow.StepDateTime, true
	default:
		return "", false
	}
}
