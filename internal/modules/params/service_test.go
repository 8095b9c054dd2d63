package params

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viability/internal/modules/projection"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type brokenStore struct{}

var errDown = errors.New("dial tcp: connection refused")

func (brokenStore) Get(context.Context, projection.Scenario) (projection.SimulationParams, error) {
	return projection.SimulationParams{}, errDown
}

func (brokenStore) Set(context.Context, projection.Scenario, projection.SimulationParams) error {
	return errDown
}

func (brokenStore) Reset(context.Context) error { return errDown }

func TestDefaults(t *testing.T) {
	tests := []struct {
		scenario    projection.Scenario
		wantDrivers float64
		wantAdd     float64
		wantFare    float64
		wantGrowth  float64
	}{
		{scenario: projection.ScenarioPessimistic, wantDrivers: 3, wantAdd: 10, wantFare: 17.5, wantGrowth: 12},
		{scenario: projection.ScenarioRealistic, wantDrivers: 5, wantAdd: 10, wantFare: 18.5, wantGrowth: 15},
		{scenario: projection.ScenarioOptimistic, wantDrivers: 10, wantAdd: 13, wantFare: 18.5, wantGrowth: 18},
	}
	for _, tt := range tests {
		t.Run(string(tt.scenario), func(t *testing.T) {
			p, err := Defaults(tt.scenario)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDrivers, p.ActiveDrivers)
			assert.Equal(t, tt.wantAdd, p.DriverAdditionMonthly)
			assert.Equal(t, tt.wantFare, p.AvgFare)
			assert.Equal(t, tt.wantGrowth, p.UserGrowth)
			assert.True(t, p.MaintenanceActive)
			assert.Nil(t, p.CurrentUsersReal)
			assert.NoError(t, projection.Validate(p))
		})
	}

	_, err := Defaults("neutral")
	assert.ErrorIs(t, err, projection.ErrUnknownScenario)
}

func TestService_SaveLoadReset(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), quietLogger())

	p, err := svc.Load(ctx, projection.ScenarioRealistic)
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.ActiveDrivers)

	users := 1200.0
	p.ActiveDrivers = 40
	p.CurrentUsersReal = &users
	require.NoError(t, svc.Save(ctx, projection.ScenarioRealistic, p))

	// the store keeps its own copy
	users = 1
	got, err := svc.Load(ctx, projection.ScenarioRealistic)
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.ActiveDrivers)
	require.NotNil(t, got.CurrentUsersReal)
	assert.Equal(t, 1200.0, *got.CurrentUsersReal)

	other, err := svc.Load(ctx, projection.ScenarioOptimistic)
	require.NoError(t, err)
	assert.Equal(t, 10.0, other.ActiveDrivers)

	require.NoError(t, svc.Reset(ctx))
	got, err = svc.Load(ctx, projection.ScenarioRealistic)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.ActiveDrivers)
}

func TestService_SaveRejectsInvalid(t *testing.T) {
	svc := NewService(NewMemoryStore(), quietLogger())
	p, _ := Defaults(projection.ScenarioRealistic)
	p.ChurnRate = 140

	err := svc.Save(context.Background(), projection.ScenarioRealistic, p)
	assert.ErrorIs(t, err, projection.ErrInvalidParams)

	err = svc.Save(context.Background(), "neutral", p)
	assert.ErrorIs(t, err, projection.ErrUnknownScenario)
}

func TestService_LoadFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()

	svc := NewService(brokenStore{}, quietLogger())
	p, err := svc.Load(ctx, projection.ScenarioPessimistic)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.ActiveDrivers)
	assert.ErrorIs(t, svc.Save(ctx, projection.ScenarioPessimistic, p), errDown)

	store := NewMemoryStore()
	bad, _ := Defaults(projection.ScenarioRealistic)
	bad.AvgFare = -3
	require.NoError(t, store.Set(ctx, projection.ScenarioRealistic, bad))

	p, err = NewService(store, quietLogger()).Load(ctx, projection.ScenarioRealistic)
	require.NoError(t, err)
	assert.Equal(t, 18.5, p.AvgFare)
}

func TestService_All(t *testing.T) {
	all, err := NewService(NewMemoryStore(), quietLogger()).All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 17.5, all[projection.ScenarioPessimistic].AvgFare)
}
