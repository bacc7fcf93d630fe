package bookingflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshdevstudio/JCB/internal/domain"
	"github.com/rakshdevstudio/JCB/pkg/types"
)

func cityMumbai() domain.City {
	return domain.City{ID: "mumbai", Name: "Mumbai", State: "Maharashtra", IsActive: true}
}

func cityDelhi() domain.City {
	return domain.City{ID: "delhi", Name: "Delhi NCR", State: "Delhi", IsActive: true}
}

func salonParel() domain.Salon {
	return domain.Salon{ID: "salon-1", CityID: "mumbai", Name: "Phoenix Mills", OpenTime: "10:00", CloseTime: "20:00", IsActive: true}
}

func serviceHaircut() domain.Service {
	return domain.Service{ID: "svc-1", CategoryID: "hair", Name: "Haircut", DurationMinutes: 60, BasePrice: 1200, IsActive: true}
}

func staffPriya() *domain.Staff {
	return &domain.Staff{ID: "staff-1", SalonID: "salon-1", Name: "Priya", Role: "Senior Stylist", IsActive: true}
}

func completedFlow(t *testing.T) *Flow {
	t.Helper()
	f := New()
	require.True(t, f.SelectCity(cityMumbai()))
	require.True(t, f.SelectSalon(salonParel()))
	require.True(t, f.SelectService(serviceHaircut()))
	require.True(t, f.SelectStaff(staffPriya()))
	require.True(t, f.SelectDateTime(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), types.TimeString("11:00")))
	return f
}

func TestNewFlowStartsAtCity(t *testing.T) {
	f := New()
	assert.Equal(t, StepCity, f.Step)
	assert.Nil(t, f.Selection.City)
	assert.False(t, f.CanGoBack())
}

func TestSelectionAdvancesSteps(t *testing.T) {
	f := New()

	require.True(t, f.SelectCity(cityMumbai()))
	assert.Equal(t, StepSalon, f.Step)

	require.True(t, f.SelectSalon(salonParel()))
	assert.Equal(t, StepService, f.Step)

	require.True(t, f.SelectService(serviceHaircut()))
	assert.Equal(t, StepStaff, f.Step)

	require.True(t, f.SelectStaff(nil)) // no preference
	assert.Equal(t, StepDateTime, f.Step)
	assert.Nil(t, f.Selection.Staff)

	require.True(t, f.SelectDateTime(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), types.TimeString("11:00")))
	assert.Equal(t, StepConfirmation, f.Step)
	assert.True(t, f.IsComplete())
}

func TestReSelectCityClearsDependentSelections(t *testing.T) {
	f := New()
	require.True(t, f.SelectCity(cityMumbai()))
	require.True(t, f.SelectSalon(salonParel()))
	require.True(t, f.SelectService(serviceHaircut()))
	require.True(t, f.SelectStaff(staffPriya()))

	// выбор другого города инвалидирует салон и мастера, но не услугу
	require.True(t, f.SelectCity(cityDelhi()))

	assert.Equal(t, StepSalon, f.Step)
	assert.Equal(t, "delhi", f.Selection.City.ID)
	assert.Nil(t, f.Selection.Salon)
	assert.Nil(t, f.Selection.Staff)
	assert.NotNil(t, f.Selection.Service)
}

func TestSelectSalonClearsStaff(t *testing.T) {
	f := New()
	require.True(t, f.SelectCity(cityMumbai()))
	require.True(t, f.SelectSalon(salonParel()))
	require.True(t, f.SelectService(serviceHaircut()))
	require.True(t, f.SelectStaff(staffPriya()))

	other := salonParel()
	other.ID = "salon-2"
	require.True(t, f.SelectSalon(other))

	assert.Nil(t, f.Selection.Staff)
	assert.Equal(t, StepService, f.Step)
}

func TestSelectionRequiresPrerequisites(t *testing.T) {
	f := New()

	assert.False(t, f.SelectSalon(salonParel()))
	assert.False(t, f.SelectService(serviceHaircut()))
	assert.False(t, f.SelectStaff(staffPriya()))
	assert.False(t, f.SelectDateTime(time.Now(), types.TimeString("11:00")))
	assert.Equal(t, StepCity, f.Step)
}

func TestGoBackKeepsSelections(t *testing.T) {
	f := New()
	require.True(t, f.SelectCity(cityMumbai()))
	require.True(t, f.SelectSalon(salonParel()))
	require.True(t, f.SelectService(serviceHaircut()))
	assert.Equal(t, StepStaff, f.Step)

	require.True(t, f.GoBack())
	assert.Equal(t, StepService, f.Step)
	assert.NotNil(t, f.Selection.Service, "goBack must not clear the service selection")
}

func TestGoBackNoopAtFirstStep(t *testing.T) {
	f := New()
	assert.False(t, f.GoBack())
	assert.Equal(t, StepCity, f.Step)
}

func TestConfirmationBlocksBackNavigation(t *testing.T) {
	f := completedFlow(t)

	assert.False(t, f.GoBack())
	assert.Equal(t, StepConfirmation, f.Step)

	assert.False(t, f.GoToStep(StepCity))
	assert.Equal(t, StepConfirmation, f.Step)
}

func TestGoToStepBackwardOnly(t *testing.T) {
	f := New()
	require.True(t, f.SelectCity(cityMumbai()))
	require.True(t, f.SelectSalon(salonParel()))
	assert.Equal(t, StepService, f.Step)

	// вперёд нельзя
	assert.False(t, f.GoToStep(StepDateTime))
	assert.Equal(t, StepService, f.Step)

	// на текущий шаг нельзя
	assert.False(t, f.GoToStep(StepService))

	// назад можно, выбор не сбрасывается
	require.True(t, f.GoToStep(StepCity))
	assert.Equal(t, StepCity, f.Step)
	assert.NotNil(t, f.Selection.Salon)
}

func TestResetClearsEverything(t *testing.T) {
	f := completedFlow(t)

	f.Reset()

	assert.Equal(t, StepCity, f.Step)
	assert.Equal(t, Selection{}, f.Selection)
	assert.False(t, f.IsComplete())
}

func TestIsCompleteAllowsNilStaff(t *testing.T) {
	f := New()
	require.True(t, f.SelectCity(cityMumbai()))
	require.True(t, f.SelectSalon(salonParel()))
	require.True(t, f.SelectService(serviceHaircut()))
	require.True(t, f.SelectStaff(nil))
	require.True(t, f.SelectDateTime(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), types.TimeString("11:30")))

	assert.True(t, f.IsComplete())
}

func TestProgress(t *testing.T) {
	f := New()
	assert.InDelta(t, 100.0/6.0, f.Progress(), 0.01)

	f = completedFlow(t)
	assert.InDelta(t, 100.0, f.Progress(), 0.01)
}
