package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshdevstudio/JCB/internal/domain"
	bookingRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/booking"
	catalogRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/catalog"
	"github.com/rakshdevstudio/JCB/internal/integrations/identity"
	"github.com/rakshdevstudio/JCB/internal/service/bookings/models"
	"github.com/rakshdevstudio/JCB/pkg/ptr"
)

type fakeBookingRepo struct {
	byID map[string]*domain.Booking

	updatedID     string
	updatedStatus domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.byID {
		if b.UserID == nil || *b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetBySalonWithFilter(_ context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.byID {
		if b.SalonID == filter.SalonID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type fakeCatalogRepo struct{ salons map[string]*domain.Salon }

func (f *fakeCatalogRepo) GetSalonByID(_ context.Context, id string) (*domain.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, catalogRepo.ErrSalonNotFound
	}
	return s, nil
}

type fakeIdentityClient struct{ roles map[string][]identity.RoleRecord }

func (f *fakeIdentityClient) GetRoles(_ context.Context, userID string) ([]identity.RoleRecord, error) {
	if r, ok := f.roles[userID]; ok {
		return r, nil
	}
	return []identity.RoleRecord{{Role: identity.RoleCustomer}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:               "bk-1",
		UserID:           ptr.Ptr("user-1"),
		SalonID:          "salon-1",
		ServiceID:        "svc-1",
		BookingDate:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:        "11:00",
		DurationMinutes:  60,
		Price:            750,
		CustomerName:     "Asha Rao",
		CustomerPhone:    "+91 98200 00000",
		CustomerEmail:    "asha@example.com",
		Status:           domain.StatusPending,
		BookingReference: "JCB-2026-000123",
	}
}

func newTestService(booking *domain.Booking, roles map[string][]identity.RoleRecord) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{byID: map[string]*domain.Booking{}}
	if booking != nil {
		repo.byID[booking.ID] = booking
	}
	catalog := &fakeCatalogRepo{salons: map[string]*domain.Salon{
		"salon-1": {ID: "salon-1", CityID: "mumbai", IsActive: true},
	}}
	svc := NewService(repo, catalog, &fakeIdentityClient{roles: roles}, nopLogger{})
	return svc, repo
}

func TestGetByID_OwnerAllowed(t *testing.T) {
	svc, _ := newTestService(testBooking(), nil)

	resp, err := svc.GetByID(context.Background(), "bk-1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, "bk-1", resp.ID)
	assert.Equal(t, "2026-09-10", resp.BookingDate)
	assert.Equal(t, "11:00", resp.StartTime)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc, _ := newTestService(testBooking(), nil)

	_, err := svc.GetByID(context.Background(), "bk-1", "user-2")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_SalonManagerAllowed(t *testing.T) {
	roles := map[string][]identity.RoleRecord{
		"mgr-1": {{Role: identity.RoleSalonManager, SalonID: ptr.Ptr("salon-1")}},
	}
	svc, _ := newTestService(testBooking(), roles)

	_, err := svc.GetByID(context.Background(), "bk-1", "mgr-1")
	assert.NoError(t, err)
}

func TestGetByID_ManagerOfOtherSalonDenied(t *testing.T) {
	roles := map[string][]identity.RoleRecord{
		"mgr-2": {{Role: identity.RoleSalonManager, SalonID: ptr.Ptr("salon-9")}},
	}
	svc, _ := newTestService(testBooking(), roles)

	_, err := svc.GetByID(context.Background(), "bk-1", "mgr-2")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_CityManagerScopedByCity(t *testing.T) {
	roles := map[string][]identity.RoleRecord{
		"city-mgr": {{Role: identity.RoleCityManager, CityID: ptr.Ptr("mumbai")}},
		"city-out": {{Role: identity.RoleCityManager, CityID: ptr.Ptr("delhi")}},
	}
	svc, _ := newTestService(testBooking(), roles)

	_, err := svc.GetByID(context.Background(), "bk-1", "city-mgr")
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "bk-1", "city-out")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_SuperAdminAllowed(t *testing.T) {
	roles := map[string][]identity.RoleRecord{
		"root": {{Role: identity.RoleSuperAdmin}},
	}
	svc, _ := newTestService(testBooking(), roles)

	_, err := svc.GetByID(context.Background(), "bk-1", "root")
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	_, err := svc.GetByID(context.Background(), "nope", "user-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_OwnerCancelsPendingBooking(t *testing.T) {
	svc, repo := newTestService(testBooking(), nil)

	err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
}

func TestCancel_FinalStatusRejected(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCompleted
	svc, _ := newTestService(booking, nil)

	err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_StrangerDenied(t *testing.T) {
	svc, repo := newTestService(testBooking(), nil)

	err := svc.Cancel(context.Background(), "bk-1", &models.CancelBookingRequest{UserID: "user-2"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.updatedID)
}

func TestUpdateStatus_ManagerOnly(t *testing.T) {
	roles := map[string][]identity.RoleRecord{
		"mgr-1": {{Role: identity.RoleSalonManager, SalonID: ptr.Ptr("salon-1")}},
	}
	svc, repo := newTestService(testBooking(), roles)

	// владелец бронирования не может менять статусы
	err := svc.UpdateStatus(context.Background(), "bk-1", &models.UpdateStatusRequest{UserID: "user-1", Status: "completed"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.UpdateStatus(context.Background(), "bk-1", &models.UpdateStatusRequest{UserID: "mgr-1", Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestUpdateStatus_InvalidStatusRejected(t *testing.T) {
	roles := map[string][]identity.RoleRecord{
		"mgr-1": {{Role: identity.RoleSalonManager, SalonID: ptr.Ptr("salon-1")}},
	}
	svc, _ := newTestService(testBooking(), roles)

	err := svc.UpdateStatus(context.Background(), "bk-1", &models.UpdateStatusRequest{UserID: "mgr-1", Status: "postponed"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_FiltersByStatus(t *testing.T) {
	svc, repo := newTestService(testBooking(), nil)
	second := testBooking()
	second.ID = "bk-2"
	second.Status = domain.StatusCancelled
	repo.byID["bk-2"] = second

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "bk-1", resp.Bookings[0].ID)
}

func TestGetSalonBookings_RequiresManagerRole(t *testing.T) {
	roles := map[string][]identity.RoleRecord{
		"mgr-1": {{Role: identity.RoleSalonManager, SalonID: ptr.Ptr("salon-1")}},
	}
	svc, _ := newTestService(testBooking(), roles)

	_, err := svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
		UserID:  "user-1",
		SalonID: "salon-1",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
		UserID:  "mgr-1",
		SalonID: "salon-1",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}
