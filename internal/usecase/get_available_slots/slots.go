package get_available_slots

import (
	"fmt"
	"time"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/pkg/types"
)

// generateTimeSlots генерирует сетку стартов с фиксированным шагом
// domain.SlotStepMinutes от открытия салона до закрытия.
//
// Слот попадает в сетку, пока его НАЧАЛО строго раньше закрытия.
// Конец услуги при этом может выходить за время закрытия — последние
// старты дня намеренно не отбрасываются, салон сам решает, принимать ли
// запись "впритык". Поэтому здесь нет проверки конца слота.
func generateTimeSlots(openTime, closeTime types.TimeString) ([]types.TimeString, error) {
	openMin, err := openTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("parse open time: %w", err)
	}
	closeMin, err := closeTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("parse close time: %w", err)
	}

	if openMin >= closeMin {
		return nil, ErrInvalidSchedule
	}

	slots := make([]types.TimeString, 0, (closeMin-openMin+domain.SlotStepMinutes-1)/domain.SlotStepMinutes)
	for m := openMin; m < closeMin; m += domain.SlotStepMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("build slot time: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// markAvailability помечает каждый слот сетки: слот занят, если интервал
// услуги [start, start+duration) пересекается хотя бы с одним активным
// бронированием. Интервалы полуоткрытые: записи "встык" не конфликтуют.
func markAvailability(slots []types.TimeString, durationMinutes int, booked []domain.BookedInterval) []domain.TimeSlot {
	result := make([]domain.TimeSlot, len(slots))

	for i, start := range slots {
		available := true
		for _, interval := range booked {
			if interval.Overlaps(start, durationMinutes) {
				available = false
				break
			}
		}
		result[i] = domain.TimeSlot{StartTime: start, Available: available}
	}

	return result
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
