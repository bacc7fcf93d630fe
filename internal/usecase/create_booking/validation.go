package create_booking

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует полноту выбора и контактные данные.
// Падает на первой же проблеме: частично собранный выбор не должен
// доходить до транзакции.
func validateRequest(req *Request) error {
	s := req.Selection

	if s.Salon == nil {
		return fmt.Errorf("%w: salon is not selected", ErrIncompleteSelection)
	}
	if s.Service == nil {
		return fmt.Errorf("%w: service is not selected", ErrIncompleteSelection)
	}
	if s.Date == nil {
		return fmt.Errorf("%w: date is not selected", ErrIncompleteSelection)
	}
	if s.Time == nil {
		return fmt.Errorf("%w: time is not selected", ErrIncompleteSelection)
	}
	// Мастер опционален: nil означает «любой мастер»

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: customer email is malformed", ErrInvalidInput)
	}

	if req.IdempotencyKey == "" {
		return fmt.Errorf("%w: idempotency key is required", ErrInvalidInput)
	}

	if err := s.Time.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(requestDate, now time.Time) error {
	dateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
