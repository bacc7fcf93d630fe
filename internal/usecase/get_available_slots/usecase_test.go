package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshdevstudio/JCB/internal/domain"
	catalogRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/catalog"
	"github.com/rakshdevstudio/JCB/pkg/ptr"
	"github.com/rakshdevstudio/JCB/pkg/types"
)

type fakeBookingRepo struct {
	intervals []domain.BookedInterval
	err       error

	gotSalonID string
	gotStaffID *string
}

func (f *fakeBookingRepo) GetActiveIntervals(_ context.Context, salonID string, staffID *string, _ time.Time) ([]domain.BookedInterval, error) {
	f.gotSalonID = salonID
	f.gotStaffID = staffID
	return f.intervals, f.err
}

type fakeCatalogRepo struct {
	salon   *domain.Salon
	service *domain.Service
	staff   *domain.Staff
}

func (f *fakeCatalogRepo) GetSalonByID(context.Context, string) (*domain.Salon, error) {
	if f.salon == nil {
		return nil, catalogRepo.ErrSalonNotFound
	}
	return f.salon, nil
}

func (f *fakeCatalogRepo) GetServiceByID(context.Context, string) (*domain.Service, error) {
	if f.service == nil {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

func (f *fakeCatalogRepo) GetStaffByID(context.Context, string) (*domain.Staff, error) {
	if f.staff == nil {
		return nil, catalogRepo.ErrStaffNotFound
	}
	return f.staff, nil
}

type fakeTimeProvider struct{ now time.Time }

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookingRepo *fakeBookingRepo, catalog *fakeCatalogRepo) *UseCase {
	uc := NewUseCase(bookingRepo, catalog, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func activeSalon(open, close string) *domain.Salon {
	return &domain.Salon{
		ID:        "salon-1",
		CityID:    "mumbai",
		Name:      "Parel Studio",
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(close),
		IsActive:  true,
	}
}

func activeService(duration int) *domain.Service {
	return &domain.Service{
		ID:              "svc-1",
		Name:            "Haircut",
		DurationMinutes: duration,
		BasePrice:       500,
		IsActive:        true,
	}
}

func validRequest() *Request {
	return &Request{
		SalonID:   "salon-1",
		ServiceID: "svc-1",
		Date:      time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	}
}

func slotTimes(slots []domain.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

func TestExecute_FullGridWhenNoBookings(t *testing.T) {
	catalog := &fakeCatalogRepo{salon: activeSalon("10:00", "12:00"), service: activeService(30)}
	uc := newTestUseCase(&fakeBookingRepo{}, catalog)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slotTimes(resp.Slots))
	for _, s := range resp.Slots {
		assert.True(t, s.Available, "slot %s", s.StartTime)
	}
}

func TestExecute_OverlapMarksSlotsUnavailable(t *testing.T) {
	// Салон 10:00-12:00, услуга 60 минут, занято 10:30-11:00.
	// 10:00 (конец 11:00) пересекает занятый интервал, 10:30 тоже,
	// 11:00 начинается ровно в конце занятого — свободен.
	catalog := &fakeCatalogRepo{salon: activeSalon("10:00", "12:00"), service: activeService(60)}
	bookingRepo := &fakeBookingRepo{intervals: []domain.BookedInterval{
		{StartTime: "10:30", DurationMinutes: 30},
	}}
	uc := newTestUseCase(bookingRepo, catalog)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slotTimes(resp.Slots))
	assert.False(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
	assert.True(t, resp.Slots[3].Available)
}

func TestExecute_GridCoversEveryStepBeforeClose(t *testing.T) {
	// Последний старт дня может уходить услугой за закрытие: при графике
	// 10:00-11:15 сетка содержит 10:00, 10:30 и 11:00, даже если услуга
	// в 11:00 закончится после 11:15
	catalog := &fakeCatalogRepo{salon: activeSalon("10:00", "11:15"), service: activeService(45)}
	uc := newTestUseCase(&fakeBookingRepo{}, catalog)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "10:30", "11:00"}, slotTimes(resp.Slots))
}

func TestExecute_BackToBackBookingsDoNotConflict(t *testing.T) {
	// Полуоткрытые интервалы: запись, заканчивающаяся в 10:30,
	// не блокирует старт в 10:30
	catalog := &fakeCatalogRepo{salon: activeSalon("10:00", "11:00"), service: activeService(30)}
	bookingRepo := &fakeBookingRepo{intervals: []domain.BookedInterval{
		{StartTime: "10:00", DurationMinutes: 30},
	}}
	uc := newTestUseCase(bookingRepo, catalog)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, []string{"10:00", "10:30"}, slotTimes(resp.Slots))
	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[1].Available)
}

func TestExecute_StaffFilterPassedToRepository(t *testing.T) {
	catalog := &fakeCatalogRepo{
		salon:   activeSalon("10:00", "11:00"),
		service: activeService(30),
		staff:   &domain.Staff{ID: "staff-1", SalonID: "salon-1", Name: "Priya", IsActive: true},
	}
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, catalog)

	req := validRequest()
	req.StaffID = ptr.Ptr("staff-1")

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, bookingRepo.gotStaffID)
	assert.Equal(t, "staff-1", *bookingRepo.gotStaffID)
}

func TestExecute_StaffFromAnotherSalon(t *testing.T) {
	catalog := &fakeCatalogRepo{
		salon:   activeSalon("10:00", "11:00"),
		service: activeService(30),
		staff:   &domain.Staff{ID: "staff-1", SalonID: "salon-2", Name: "Priya", IsActive: true},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, catalog)

	req := validRequest()
	req.StaffID = ptr.Ptr("staff-1")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotInSalon)
}

func TestExecute_SalonNotFound(t *testing.T) {
	catalog := &fakeCatalogRepo{service: activeService(30)}
	uc := newTestUseCase(&fakeBookingRepo{}, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_InactiveServiceRejected(t *testing.T) {
	service := activeService(30)
	service.IsActive = false
	catalog := &fakeCatalogRepo{salon: activeSalon("10:00", "11:00"), service: service}
	uc := newTestUseCase(&fakeBookingRepo{}, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NonPositiveDurationFailsFast(t *testing.T) {
	catalog := &fakeCatalogRepo{salon: activeSalon("10:00", "11:00"), service: activeService(0)}
	uc := newTestUseCase(&fakeBookingRepo{}, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_OpenNotBeforeCloseFailsFast(t *testing.T) {
	catalog := &fakeCatalogRepo{salon: activeSalon("12:00", "12:00"), service: activeService(30)}
	uc := newTestUseCase(&fakeBookingRepo{}, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestExecute_PastDateRejected(t *testing.T) {
	catalog := &fakeCatalogRepo{salon: activeSalon("10:00", "11:00"), service: activeService(30)}
	uc := newTestUseCase(&fakeBookingRepo{}, catalog)

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MissingInputRejected(t *testing.T) {
	catalog := &fakeCatalogRepo{salon: activeSalon("10:00", "11:00"), service: activeService(30)}
	uc := newTestUseCase(&fakeBookingRepo{}, catalog)

	req := validRequest()
	req.ServiceID = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
