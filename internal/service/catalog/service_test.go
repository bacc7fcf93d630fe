package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/internal/infra/cache"
)

type fakeRepo struct {
	cities     []*domain.City
	cityCalls  int
	staffCalls int
}

func (f *fakeRepo) ListCities(context.Context) ([]*domain.City, error) {
	f.cityCalls++
	return f.cities, nil
}

func (f *fakeRepo) ListSalonsByCity(context.Context, string) ([]*domain.Salon, error) {
	return []*domain.Salon{{ID: "salon-1", CityID: "mumbai", IsActive: true}}, nil
}

func (f *fakeRepo) ListServiceCategories(context.Context) ([]*domain.ServiceCategory, error) {
	return []*domain.ServiceCategory{{ID: "cat-1", Name: "Hair", IsActive: true}}, nil
}

func (f *fakeRepo) ListServices(context.Context, *string) ([]*domain.Service, error) {
	return []*domain.Service{{ID: "svc-1", Name: "Haircut", DurationMinutes: 60, IsActive: true}}, nil
}

func (f *fakeRepo) ListStaffBySalon(context.Context, string) ([]*domain.Staff, error) {
	f.staffCalls++
	return []*domain.Staff{{ID: "staff-1", SalonID: "salon-1", Name: "Priya", IsActive: true}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRedisService(t *testing.T, repo *fakeRepo, ttl time.Duration) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewService(repo, cache.NewRedis(client), ttl, nopLogger{}), mr
}

func TestListCities_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeRepo{cities: []*domain.City{{ID: "mumbai", Name: "Mumbai", SalonCount: 3, IsActive: true}}}
	svc, _ := newRedisService(t, repo, time.Minute)
	ctx := context.Background()

	first, err := svc.ListCities(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 3, first[0].SalonCount)

	second, err := svc.ListCities(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.cityCalls)
}

func TestListCities_CacheExpiryReloads(t *testing.T) {
	repo := &fakeRepo{cities: []*domain.City{{ID: "mumbai", Name: "Mumbai", IsActive: true}}}
	svc, mr := newRedisService(t, repo, time.Minute)
	ctx := context.Background()

	_, err := svc.ListCities(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = svc.ListCities(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.cityCalls)
}

func TestListStaffBySalon_KeyPerSalon(t *testing.T) {
	repo := &fakeRepo{}
	svc, mr := newRedisService(t, repo, time.Minute)
	ctx := context.Background()

	_, err := svc.ListStaffBySalon(ctx, "salon-1")
	require.NoError(t, err)

	assert.True(t, mr.Exists("catalog:staff:salon:salon-1"))

	_, err = svc.ListStaffBySalon(ctx, "salon-2")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.staffCalls)
}

func TestListStaffBySalon_RequiresSalonID(t *testing.T) {
	svc, _ := newRedisService(t, &fakeRepo{}, time.Minute)

	_, err := svc.ListStaffBySalon(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNoopCacheAlwaysHitsRepository(t *testing.T) {
	repo := &fakeRepo{cities: []*domain.City{{ID: "mumbai", Name: "Mumbai", IsActive: true}}}
	svc := NewService(repo, cache.NewNoop(), time.Minute, nopLogger{})
	ctx := context.Background()

	_, err := svc.ListCities(ctx)
	require.NoError(t, err)
	_, err = svc.ListCities(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.cityCalls)
}
