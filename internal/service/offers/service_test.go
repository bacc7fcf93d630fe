package offers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshdevstudio/JCB/internal/domain"
	offerRepo "github.com/rakshdevstudio/JCB/internal/infra/storage/offer"
	"github.com/rakshdevstudio/JCB/internal/integrations/identity"
	"github.com/rakshdevstudio/JCB/internal/service/offers/models"
	"github.com/rakshdevstudio/JCB/pkg/ptr"
)

type fakeOfferRepo struct {
	offers []*domain.Offer

	created *domain.Offer
	updated *domain.Offer
	deleted string
}

func (f *fakeOfferRepo) Create(_ context.Context, o *domain.Offer) (*domain.Offer, error) {
	o.ID = "of-new"
	f.created = o
	return o, nil
}

func (f *fakeOfferRepo) GetByID(_ context.Context, id string) (*domain.Offer, error) {
	for _, o := range f.offers {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, offerRepo.ErrOfferNotFound
}

func (f *fakeOfferRepo) ListActive(context.Context) ([]*domain.Offer, error) {
	return f.offers, nil
}

func (f *fakeOfferRepo) Update(_ context.Context, o *domain.Offer) (*domain.Offer, error) {
	for _, existing := range f.offers {
		if existing.ID == o.ID {
			f.updated = o
			return o, nil
		}
	}
	return nil, offerRepo.ErrOfferNotFound
}

func (f *fakeOfferRepo) Delete(_ context.Context, id string) error {
	for _, existing := range f.offers {
		if existing.ID == id {
			f.deleted = id
			return nil
		}
	}
	return offerRepo.ErrOfferNotFound
}

type fakeCatalogRepo struct{ salonsByCity map[string][]*domain.Salon }

func (f *fakeCatalogRepo) ListSalonsByCity(_ context.Context, cityID string) ([]*domain.Salon, error) {
	return f.salonsByCity[cityID], nil
}

type fakeIdentityClient struct{ roles map[string][]identity.RoleRecord }

func (f *fakeIdentityClient) GetRoles(_ context.Context, userID string) ([]identity.RoleRecord, error) {
	if r, ok := f.roles[userID]; ok {
		return r, nil
	}
	return []identity.RoleRecord{{Role: identity.RoleCustomer}}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct{ now time.Time }

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func currentOffer(id string) *domain.Offer {
	return &domain.Offer{
		ID:            id,
		Title:         "Festive Sale",
		StartDate:     testNow.AddDate(0, 0, -5),
		EndDate:       testNow.AddDate(0, 0, 5),
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 20,
		IsActive:      true,
	}
}

func adminRoles() map[string][]identity.RoleRecord {
	return map[string][]identity.RoleRecord{
		"root": {{Role: identity.RoleSuperAdmin}},
	}
}

func newTestService(repo *fakeOfferRepo, catalog *fakeCatalogRepo) *Service {
	if catalog == nil {
		catalog = &fakeCatalogRepo{}
	}
	svc := NewService(repo, catalog, &fakeIdentityClient{roles: adminRoles()}, fakeTxManager{}, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: testNow}
	return svc
}

func validOfferRequest() *models.OfferRequest {
	return &models.OfferRequest{
		Title:         "Monsoon Special",
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-30",
		DiscountType:  "flat",
		DiscountValue: 200,
		IsActive:      true,
	}
}

func TestCreate_SuperAdminOnly(t *testing.T) {
	repo := &fakeOfferRepo{}
	svc := newTestService(repo, nil)

	_, err := svc.Create(context.Background(), "user-1", validOfferRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.created)

	resp, err := svc.Create(context.Background(), "root", validOfferRequest())
	require.NoError(t, err)
	assert.Equal(t, "of-new", resp.ID)
	assert.Equal(t, "2026-09-01", resp.StartDate)
}

func TestCreate_RejectsBadPeriodAndDiscount(t *testing.T) {
	svc := newTestService(&fakeOfferRepo{}, nil)

	for _, tc := range []struct {
		name  string
		mut   func(*models.OfferRequest)
	}{
		{"end before start", func(r *models.OfferRequest) { r.EndDate = "2026-08-01" }},
		{"unknown discount type", func(r *models.OfferRequest) { r.DiscountType = "bogo" }},
		{"negative value", func(r *models.OfferRequest) { r.DiscountValue = -5 }},
		{"percentage above 100", func(r *models.OfferRequest) {
			r.DiscountType = "percentage"
			r.DiscountValue = 150
		}},
		{"no title", func(r *models.OfferRequest) { r.Title = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := validOfferRequest()
			tc.mut(req)

			_, err := svc.Create(context.Background(), "root", req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_ReplacesRestrictionsAndReportsMissing(t *testing.T) {
	repo := &fakeOfferRepo{offers: []*domain.Offer{currentOffer("of-1")}}
	svc := newTestService(repo, nil)

	req := validOfferRequest()
	req.CityIDs = []string{"mumbai"}

	resp, err := svc.Update(context.Background(), "root", "of-1", req)
	require.NoError(t, err)
	assert.Equal(t, []string{"mumbai"}, resp.CityIDs)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "of-1", repo.updated.ID)

	_, err = svc.Update(context.Background(), "root", "of-404", req)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestDelete_SuperAdminOnly(t *testing.T) {
	repo := &fakeOfferRepo{offers: []*domain.Offer{currentOffer("of-1")}}
	svc := newTestService(repo, nil)

	err := svc.Delete(context.Background(), "user-1", "of-1")
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), "root", "of-1")
	require.NoError(t, err)
	assert.Equal(t, "of-1", repo.deleted)
}

func TestDiscover_NoCityReturnsAllCurrent(t *testing.T) {
	expired := currentOffer("of-expired")
	expired.EndDate = testNow.AddDate(0, 0, -1)
	repo := &fakeOfferRepo{offers: []*domain.Offer{currentOffer("of-1"), expired}}
	svc := newTestService(repo, nil)

	resp, err := svc.Discover(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "of-1", resp.Offers[0].ID)
}

func TestDiscover_CityFilterIsOrRule(t *testing.T) {
	global := currentOffer("of-global")

	cityBound := currentOffer("of-city")
	cityBound.CityIDs = []string{"mumbai"}

	// Акция привязана к салону Мумбаи: при просмотре Мумбаи показывается,
	// хотя города в её списке нет
	salonBound := currentOffer("of-salon")
	salonBound.SalonIDs = []string{"salon-parel"}

	otherCity := currentOffer("of-delhi")
	otherCity.CityIDs = []string{"delhi"}

	repo := &fakeOfferRepo{offers: []*domain.Offer{global, cityBound, salonBound, otherCity}}
	catalog := &fakeCatalogRepo{salonsByCity: map[string][]*domain.Salon{
		"mumbai": {{ID: "salon-parel", CityID: "mumbai"}},
	}}
	svc := newTestService(repo, catalog)

	resp, err := svc.Discover(context.Background(), ptr.Ptr("mumbai"))
	require.NoError(t, err)

	ids := make([]string, len(resp.Offers))
	for i, o := range resp.Offers {
		ids[i] = o.ID
	}
	assert.Equal(t, []string{"of-global", "of-city", "of-salon"}, ids)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeOfferRepo{}, nil)

	_, err := svc.GetByID(context.Background(), "of-404")
	assert.ErrorIs(t, err, ErrOfferNotFound)
}
