package projection

import "math"

const maxTripsPerDriverDay = 35

type flatCapEngine struct {
	market    MarketStats
	startYear int
}

// NewFlatCap returns the flat-cap engine: the fleet is clamped to a fixed per-scenario
// cap and supply assumes 30 working days of 35 trips at 40% availability.
func NewFlatCap(market MarketStats, startYear int) Engine {
	return &flatCapEngine{market: market, startYear: startYear}
}

func (e *flatCapEngine) Variant() Variant { return VariantFlatCap }

func (e *flatCapEngine) Project(p SimulationParams, s Scenario) ([]MonthlyResult, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	profile, err := s.Profile()
	if err != nil {
		return nil, err
	}

	ceiling := e.market.SOM()
	growth := p.UserGrowth / 100
	drivers := p.ActiveDrivers
	users := initialUsers(p)
	accumulated := -p.InitialInvestment

	rows := make([]MonthlyResult, 0, Months)
	for m := 0; m < Months; m++ {
		if !p.MaintenanceActive {
			rows = append(rows, suspendedRow(e.startYear, m, p.InitialInvestment))
			continue
		}

		prev := users
		users = growUsers(users, growth, ceiling)

		drivers = (drivers + p.DriverAdditionMonthly) * (1 - driverAttrition)
		drivers = math.Min(drivers, profile.DriverCap)

		campaign := p.PaidTraffic + p.ActivationTurbo + p.BarPartnerships + p.Referral
		if m >= 12 {
			campaign *= campaignTailFactor
		}

		row := settle(p, e.startYear, monthInput{
			index:     m,
			drivers:   drivers,
			users:     users,
			prevUsers: prev,
			demanded:  users * p.RidesPerUserMonth,
			supply:    drivers * availabilityFactor * daysPerMonth * maxTripsPerDriverDay,
			campaign:  campaign,
			techFixed: p.TechMonthly,
			techRide:  p.APIMaintenanceRate,
		}, accumulated)
		accumulated = row.AccumulatedProfit
		rows = append(rows, row)
	}
	if err := checkFinite(rows); err != nil {
		return nil, err
	}
	return rows, nil
}
