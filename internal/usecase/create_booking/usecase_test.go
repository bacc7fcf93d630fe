package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshdevstudio/JCB/internal/bookingflow"
	"github.com/rakshdevstudio/JCB/internal/domain"
	bookingRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/booking"
	catalogRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/catalog"
	"github.com/rakshdevstudio/JCB/pkg/ptr"
	"github.com/rakshdevstudio/JCB/pkg/types"
)

type fakeBookingRepo struct {
	intervals []domain.BookedInterval
	createErr error
	existing  *domain.Booking

	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = "bk-1"
	b.BookingReference = "JCB-2026-000123"
	b.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetByIdempotencyKey(context.Context, string) (*domain.Booking, error) {
	if f.existing == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.existing, nil
}

func (f *fakeBookingRepo) GetActiveIntervals(context.Context, string, *string, time.Time) ([]domain.BookedInterval, error) {
	return f.intervals, nil
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

// fakeTxManager просто вызывает fn: семантика изоляции проверяется не здесь
type fakeTxManager struct{ calls int }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeTimeProvider struct{ now time.Time }

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		salon: &domain.Salon{
			ID: "salon-1", CityID: "mumbai", Name: "Parel Studio",
			OpenTime: "10:00", CloseTime: "20:00", IsActive: true,
		},
		service: &domain.Service{
			ID: "svc-1", Name: "Haircut", DurationMinutes: 60, BasePrice: 750, IsActive: true,
		},
		staff: &domain.Staff{ID: "staff-1", SalonID: "salon-1", Name: "Priya", IsActive: true},
	}
}

func completeRequest() *Request {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	startTime := types.TimeString("11:00")
	return &Request{
		Selection: bookingflow.Selection{
			City:    &domain.City{ID: "mumbai", Name: "Mumbai"},
			Salon:   &domain.Salon{ID: "salon-1"},
			Service: &domain.Service{ID: "svc-1"},
			Date:    &date,
			Time:    &startTime,
		},
		CustomerName:   "Asha Rao",
		CustomerPhone:  "+91 98200 00000",
		CustomerEmail:  "asha@example.com",
		IdempotencyKey: "6f1c2a34-0000-0000-0000-000000000001",
	}
}

func newTestUseCase(bookings *fakeBookingRepo, catalog *fakeCatalogRepo, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(bookings, catalog, tx, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CreatesPendingBookingWithFrozenPrice(t *testing.T) {
	bookings := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(bookings, testCatalog(), tx)

	resp, err := uc.Execute(context.Background(), completeRequest())
	require.NoError(t, err)

	assert.Equal(t, "bk-1", resp.ID)
	assert.Equal(t, "JCB-2026-000123", resp.BookingReference)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.False(t, resp.AlreadyExisted)
	assert.Equal(t, 1, tx.calls)

	// цена и длительность заморожены из справочника, не из выбора
	assert.Equal(t, 750.0, resp.Price)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.NotNil(t, bookings.created)
	assert.Equal(t, "6f1c2a34-0000-0000-0000-000000000001", bookings.created.IdempotencyKey)
}

func TestExecute_NilStaffMeansAnyStaff(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, testCatalog(), &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), completeRequest())
	require.NoError(t, err)

	assert.Nil(t, resp.StaffID)
}

func TestExecute_IncompleteSelectionRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testCatalog(), &fakeTxManager{})

	for _, tc := range []struct {
		name  string
		strip func(*Request)
	}{
		{"no salon", func(r *Request) { r.Selection.Salon = nil }},
		{"no service", func(r *Request) { r.Selection.Service = nil }},
		{"no date", func(r *Request) { r.Selection.Date = nil }},
		{"no time", func(r *Request) { r.Selection.Time = nil }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := completeRequest()
			tc.strip(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrIncompleteSelection)
		})
	}
}

func TestExecute_ContactDetailsRequired(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testCatalog(), &fakeTxManager{})

	for _, tc := range []struct {
		name  string
		strip func(*Request)
	}{
		{"no name", func(r *Request) { r.CustomerName = "  " }},
		{"no phone", func(r *Request) { r.CustomerPhone = "" }},
		{"no email", func(r *Request) { r.CustomerEmail = "" }},
		{"bad email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{"no idempotency key", func(r *Request) { r.IdempotencyKey = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := completeRequest()
			tc.strip(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SlotTakenInsideTransaction(t *testing.T) {
	// Между рендером сетки и отправкой слот заняли: пересечение
	// обнаруживается при повторной проверке в транзакции
	bookings := &fakeBookingRepo{intervals: []domain.BookedInterval{
		{StartTime: "10:30", DurationMinutes: 60},
	}}
	uc := newTestUseCase(bookings, testCatalog(), &fakeTxManager{})

	_, err := uc.Execute(context.Background(), completeRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, bookings.created)

	step, ok := StepToRevisit(err)
	require.True(t, ok)
	assert.Equal(t, bookingflow.StepDateTime, step)
}

func TestExecute_DuplicateSubmissionReturnsExistingBooking(t *testing.T) {
	existing := &domain.Booking{
		ID:               "bk-7",
		BookingReference: "JCB-2026-000007",
		SalonID:          "salon-1",
		ServiceID:        "svc-1",
		Status:           domain.StatusPending,
		IdempotencyKey:   "6f1c2a34-0000-0000-0000-000000000001",
	}
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrDuplicateSubmission, existing: existing}
	uc := newTestUseCase(bookings, testCatalog(), &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), completeRequest())
	require.NoError(t, err)

	assert.True(t, resp.AlreadyExisted)
	assert.Equal(t, "bk-7", resp.ID)
	assert.Equal(t, "JCB-2026-000007", resp.BookingReference)
}

func TestExecute_DeactivatedSalonSendsUserBackToSalonStep(t *testing.T) {
	catalog := testCatalog()
	catalog.salon.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, catalog, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), completeRequest())
	assert.ErrorIs(t, err, ErrSalonUnavailable)

	step, ok := StepToRevisit(err)
	require.True(t, ok)
	assert.Equal(t, bookingflow.StepSalon, step)
}

func TestExecute_VanishedServiceSendsUserBackToServiceStep(t *testing.T) {
	catalog := testCatalog()
	catalog.service = nil
	uc := newTestUseCase(&fakeBookingRepo{}, catalog, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), completeRequest())
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	step, ok := StepToRevisit(err)
	require.True(t, ok)
	assert.Equal(t, bookingflow.StepService, step)
}

func TestExecute_StaffMovedToAnotherSalon(t *testing.T) {
	catalog := testCatalog()
	catalog.staff.SalonID = "salon-2"
	uc := newTestUseCase(&fakeBookingRepo{}, catalog, &fakeTxManager{})

	req := completeRequest()
	req.Selection.Staff = &domain.Staff{ID: "staff-1"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffUnavailable)

	step, ok := StepToRevisit(err)
	require.True(t, ok)
	assert.Equal(t, bookingflow.StepStaff, step)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testCatalog(), &fakeTxManager{})

	req := completeRequest()
	past := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	req.Selection.Date = &past

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_GuestBookingHasNoUser(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, testCatalog(), &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), completeRequest())
	require.NoError(t, err)
	require.NotNil(t, bookings.created)
	assert.Nil(t, bookings.created.UserID)
	assert.NotEmpty(t, resp.BookingReference)
}

func TestExecute_AuthenticatedUserAttached(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, testCatalog(), &fakeTxManager{})

	req := completeRequest()
	req.UserID = ptr.Ptr("user-9")

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, bookings.created.UserID)
	assert.Equal(t, "user-9", *bookings.created.UserID)
}
