package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/rakshdevstudio/JCB/internal/domain"
	bookingRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/booking"
	catalogRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/catalog"
)

// UseCase use case создания бронирования из собранного выбора мастера записи.
// Все проверки и вставка идут в сериализуемой транзакции: два конкурентных
// запроса не могут оба увидеть свободный слот и оба записаться.
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Цена и длительность замораживаются из актуальной записи услуги в момент
// отправки: дальнейшие правки справочника не трогают созданные бронирования.
// При любой ошибке выбор пользователя остаётся нетронутым — сессию мастера
// изменяет только успешная отправка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация полноты выбора и контактных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: salon=%s, service=%s, date=%s, time=%s, key=%s",
		req.Selection.Salon.ID, req.Selection.Service.ID,
		req.Selection.Date.Format(domain.DateFormat), *req.Selection.Time, req.IdempotencyKey)

	// 2. Дата не должна быть в прошлом
	if err := validateDate(*req.Selection.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Перепроверяем выбор по актуальному справочнику: между выбором
	// и отправкой салон, услугу или мастера могли деактивировать
	salon, service, err := uc.revalidateSelection(ctx, req)
	if err != nil {
		return nil, err
	}

	var staffID *string
	if req.Selection.Staff != nil {
		staffID = &req.Selection.Staff.ID
	}

	var result *domain.Booking
	alreadyExisted := false

	// 4. Проверка слота и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Занятые интервалы дня с блокировкой строк (FOR UPDATE)
		booked, err := uc.bookingRepo.GetActiveIntervals(txCtx, salon.ID, staffID, *req.Selection.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get booked intervals: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.2. Слот всё ещё свободен?
		for _, interval := range booked {
			if interval.Overlaps(*req.Selection.Time, service.DurationMinutes) {
				uc.logger.Warn("CreateBooking: slot %s taken for salon=%s date=%s",
					*req.Selection.Time, salon.ID, req.Selection.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
		}

		// 4.3. Создаем бронирование с заморозкой цены и длительности услуги
		booking := &domain.Booking{
			UserID:          req.UserID,
			SalonID:         salon.ID,
			ServiceID:       service.ID,
			StaffID:         staffID,
			BookingDate:     *req.Selection.Date,
			StartTime:       *req.Selection.Time,
			DurationMinutes: service.DurationMinutes,
			Price:           service.BasePrice,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			Notes:           req.Notes,
			Status:          domain.StatusPending,
			IdempotencyKey:  req.IdempotencyKey,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateSubmission) {
				// Повторная отправка той же формы: возвращаем бронирование,
				// созданное первой отправкой
				return err
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if errors.Is(err, bookingRepo.ErrDuplicateSubmission) {
		existing, getErr := uc.bookingRepo.GetByIdempotencyKey(ctx, req.IdempotencyKey)
		if getErr != nil {
			uc.logger.Error("CreateBooking: failed to load booking for duplicate key %s: %v",
				req.IdempotencyKey, getErr)
			return nil, fmt.Errorf("%w: failed to load existing booking: %v", ErrInternal, getErr)
		}
		uc.logger.Info("CreateBooking: duplicate submission, returning booking id=%s", existing.ID)
		result = existing
		alreadyExisted = true
	} else if err != nil {
		return nil, err
	}

	if !alreadyExisted {
		uc.logger.Info("CreateBooking: created booking id=%s reference=%s", result.ID, result.BookingReference)
	}

	return toResponse(result, alreadyExisted), nil
}

// revalidateSelection сверяет выбор с актуальным справочником
func (uc *UseCase) revalidateSelection(ctx context.Context, req *Request) (*domain.Salon, *domain.Service, error) {
	salon, err := uc.catalogRepo.GetSalonByID(ctx, req.Selection.Salon.ID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateBooking: salon id=%s gone", req.Selection.Salon.ID)
			return nil, nil, ErrSalonUnavailable
		}
		uc.logger.Error("CreateBooking: failed to get salon id=%s: %v", req.Selection.Salon.ID, err)
		return nil, nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	if !salon.IsActive {
		return nil, nil, ErrSalonUnavailable
	}

	service, err := uc.catalogRepo.GetServiceByID(ctx, req.Selection.Service.ID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s gone", req.Selection.Service.ID)
			return nil, nil, ErrServiceUnavailable
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.Selection.Service.ID, err)
		return nil, nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive || service.DurationMinutes <= 0 {
		return nil, nil, ErrServiceUnavailable
	}

	if req.Selection.Staff != nil {
		staff, err := uc.catalogRepo.GetStaffByID(ctx, req.Selection.Staff.ID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffNotFound) {
				uc.logger.Warn("CreateBooking: staff id=%s gone", req.Selection.Staff.ID)
				return nil, nil, ErrStaffUnavailable
			}
			uc.logger.Error("CreateBooking: failed to get staff id=%s: %v", req.Selection.Staff.ID, err)
			return nil, nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !staff.IsActive || staff.SalonID != salon.ID {
			return nil, nil, ErrStaffUnavailable
		}
	}

	return salon, service, nil
}

func toResponse(b *domain.Booking, alreadyExisted bool) *Response {
	return &Response{
		ID:               b.ID,
		BookingReference: b.BookingReference,
		Status:           string(b.Status),
		SalonID:          b.SalonID,
		ServiceID:        b.ServiceID,
		StaffID:          b.StaffID,
		BookingDate:      b.BookingDate,
		StartTime:        b.StartTime,
		DurationMinutes:  b.DurationMinutes,
		Price:            b.Price,
		CustomerName:     b.CustomerName,
		CustomerPhone:    b.CustomerPhone,
		CustomerEmail:    b.CustomerEmail,
		Notes:            b.Notes,
		AlreadyExisted:   alreadyExisted,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
