package get_applicable_offers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshdevstudio/JCB/internal/domain"
)

type fakeOfferRepo struct {
	offers []*domain.Offer
	err    error
}

func (f *fakeOfferRepo) ListActive(context.Context) ([]*domain.Offer, error) {
	return f.offers, f.err
}

type fakeTimeProvider struct{ now time.Time }

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeOfferRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func validOffer(id string) *domain.Offer {
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

func validRequest() *Request {
	return &Request{CityID: "delhi", SalonID: "salon-1", ServiceID: "svc-1", Price: 1000}
}

func offerIDs(resp *Response) []string {
	out := make([]string, len(resp.Offers))
	for i, o := range resp.Offers {
		out[i] = o.Offer.ID
	}
	return out
}

func TestExecute_GlobalOfferAppliesEverywhere(t *testing.T) {
	repo := &fakeOfferRepo{offers: []*domain.Offer{validOffer("of-1")}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Offers, 1)
	assert.Equal(t, 800.0, resp.Offers[0].DiscountedPrice)
	assert.Equal(t, 200.0, resp.Offers[0].Savings)
}

func TestExecute_CityRestrictionIsStrict(t *testing.T) {
	// Акция только для Мумбаи не применима к бронированию в Дели,
	// даже если по салону и услуге ограничений нет
	offer := validOffer("of-1")
	offer.CityIDs = []string{"mumbai"}
	uc := newTestUseCase(&fakeOfferRepo{offers: []*domain.Offer{offer}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, resp.Offers)
}

func TestExecute_AllDimensionsMustMatch(t *testing.T) {
	offer := validOffer("of-1")
	offer.CityIDs = []string{"delhi"}
	offer.SalonIDs = []string{"salon-1"}
	offer.ServiceIDs = []string{"svc-2"} // не та услуга
	uc := newTestUseCase(&fakeOfferRepo{offers: []*domain.Offer{offer}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Offers)

	offer.ServiceIDs = []string{"svc-1", "svc-2"}
	resp, err = uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"of-1"}, offerIDs(resp))
}

func TestExecute_ExpiredAndFutureOffersSkipped(t *testing.T) {
	expired := validOffer("of-expired")
	expired.EndDate = testNow.AddDate(0, 0, -1)

	future := validOffer("of-future")
	future.StartDate = testNow.AddDate(0, 0, 1)

	current := validOffer("of-current")

	uc := newTestUseCase(&fakeOfferRepo{offers: []*domain.Offer{expired, future, current}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"of-current"}, offerIDs(resp))
}

func TestExecute_PeriodBoundariesInclusive(t *testing.T) {
	// Акция действует в последний день включительно
	offer := validOffer("of-1")
	offer.StartDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	offer.EndDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeOfferRepo{offers: []*domain.Offer{offer}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"of-1"}, offerIDs(resp))
}

func TestExecute_RepositoryOrderPreserved(t *testing.T) {
	uc := newTestUseCase(&fakeOfferRepo{offers: []*domain.Offer{
		validOffer("of-featured"),
		validOffer("of-newer"),
		validOffer("of-older"),
	}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"of-featured", "of-newer", "of-older"}, offerIDs(resp))
}

func TestExecute_BrokenOfferSkippedNotFatal(t *testing.T) {
	broken := validOffer("of-broken")
	broken.DiscountType = "bogus"
	uc := newTestUseCase(&fakeOfferRepo{offers: []*domain.Offer{broken, validOffer("of-ok")}})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"of-ok"}, offerIDs(resp))
}

func TestExecute_MissingInputRejected(t *testing.T) {
	uc := newTestUseCase(&fakeOfferRepo{})

	req := validRequest()
	req.SalonID = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
