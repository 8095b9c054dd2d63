// README: Default simulation parameters and the last-used parameter cache.
package params

import (
	"errors"

	"viability/internal/modules/projection"
)

var ErrNotFound = errors.New("params not found")

// Defaults returns the starting knobs of a scenario. Only fleet size, fare and user
// growth differ between scenarios.
func Defaults(s projection.Scenario) (projection.SimulationParams, error) {
	if _, err := s.Profile(); err != nil {
		return projection.SimulationParams{}, err
	}

	p := projection.SimulationParams{
		ActiveDrivers:           5,
		DriverAdditionMonthly:   10,
		RidesPerDriverDay:       15,
		RidesPerUserMonth:       4.2,
		AvgFare:                 18.5,
		UserGrowth:              15,
		ChurnRate:               2,
		FixedCosts:              6200,
		MarketingMonthly:        11000,
		PaidTraffic:             4000,
		ActivationTurbo:         1500,
		BarPartnerships:         1000,
		Referral:                1500,
		OfflineBrand:            1000,
		CommercialMarketingCost: 5000,
		TechMonthly:             3500,
		APIMaintenanceRate:      0.3,
		BankFeeRate:             3,
		ChargebackReserveRate:   1,
		InitialInvestment:       0,
		MaintenanceActive:       true,
		ApplyMinimumCosts:       false,
	}

	switch s {
	case projection.ScenarioPessimistic:
		p.ActiveDrivers = 3
		p.AvgFare = 17.5
		p.UserGrowth = 12
	case projection.ScenarioOptimistic:
		p.ActiveDrivers = 10
		p.DriverAdditionMonthly = 13
		p.UserGrowth = 18
	}
	return p, nil
}
