package domain

import (
	"time"

	"github.com/rakshdevstudio/JCB/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a persisted appointment at a salon.
// Duration and price are copied from the service at creation time and are
// never re-derived: later catalog edits must not alter existing bookings.
type Booking struct {
	ID        string
	UserID    *string // nil for guest bookings
	SalonID   string
	ServiceID string
	StaffID   *string // nil means "no preference"

	BookingDate     time.Time        // calendar date, salon-local
	StartTime       types.TimeString // wall-clock start
	DurationMinutes int
	Price           float64

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         *string

	Status BookingStatus

	// BookingReference is the human-readable code generated by the
	// database on insert. Unique across all bookings.
	BookingReference string

	// IdempotencyKey de-duplicates resubmissions of the same form.
	IdempotencyKey string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its time slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsFinal returns true if the booking reached a terminal status
func (b *Booking) IsFinal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusNoShow
}

// BookedInterval is the projection of a booking the availability engine
// needs: when it starts and how long it runs.
type BookedInterval struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// Overlaps reports whether [start, start+durationMinutes) intersects the
// interval. Both intervals are half-open, so back-to-back appointments do
// not conflict: one ending 11:00 and one starting 11:00 coexist.
func (i BookedInterval) Overlaps(start types.TimeString, durationMinutes int) bool {
	slotStart, err := start.Minutes()
	if err != nil {
		return false
	}
	intervalStart, err := i.StartTime.Minutes()
	if err != nil {
		return false
	}

	slotEnd := slotStart + durationMinutes
	intervalEnd := intervalStart + i.DurationMinutes

	return intervalStart < slotEnd && intervalEnd > slotStart
}

// SalonBookingsFilter фильтр для выборки бронирований салона
type SalonBookingsFilter struct {
	SalonID         string
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли завершённые/отменённые бронирования
}
