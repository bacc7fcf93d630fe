package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/rakshdevstudio/JCB/internal/domain"
	catalogRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/catalog"
)

// UseCase use case построения сетки слотов на день.
// Сетка детерминирована: одинаковые входные данные и одинаковый набор
// бронирований всегда дают одинаковый результат.
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%s, service=%s, date=%s",
		req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем салон
	salon, err := uc.catalogRepo.GetSalonByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get salon id=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	if !salon.IsActive {
		return nil, ErrSalonNotFound
	}

	// 4. Получаем услугу — её длительность задаёт ширину проверяемого интервала
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		return nil, ErrServiceNotFound
	}
	if service.DurationMinutes <= 0 {
		// Некорректные данные справочника: падаем сразу, а не строим
		// бессмысленную сетку
		uc.logger.Error("GetAvailableSlots: service id=%s has non-positive duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	// 5. Если указан мастер — проверяем, что он активен и работает в салоне
	if req.StaffID != nil {
		staff, err := uc.catalogRepo.GetStaffByID(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailableSlots: staff id=%s not found", *req.StaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get staff id=%s: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !staff.IsActive {
			return nil, ErrStaffNotFound
		}
		if staff.SalonID != req.SalonID {
			uc.logger.Warn("GetAvailableSlots: staff id=%s belongs to salon %s, not %s",
				*req.StaffID, staff.SalonID, req.SalonID)
			return nil, ErrStaffNotInSalon
		}
	}

	// 6. Генерируем сетку стартов по расписанию салона
	timeSlots, err := generateTimeSlots(salon.OpenTime, salon.CloseTime)
	if err != nil {
		if errors.Is(err, ErrInvalidSchedule) {
			uc.logger.Error("GetAvailableSlots: salon id=%s has invalid schedule %s-%s",
				req.SalonID, salon.OpenTime, salon.CloseTime)
			return nil, ErrInvalidSchedule
		}
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Получаем занятые интервалы на дату
	booked, err := uc.bookingRepo.GetActiveIntervals(ctx, req.SalonID, req.StaffID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Помечаем доступность каждого слота
	slots := markAvailability(timeSlots, service.DurationMinutes, booked)

	uc.logger.Info("GetAvailableSlots: generated %d slots for salon=%s, service=%s, date=%s",
		len(slots), req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		SalonID:   req.SalonID,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Slots:     slots,
	}, nil
}
