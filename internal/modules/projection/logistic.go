package projection

import "math"

const (
	fleetCeiling   = 500.0
	fleetSteepness = 0.25
	fleetMidpoint  = 18.0

	weekdaysPerMonth = 22
	weekendPerMonth  = 8
	weekendBoost     = 1.25
)

// seasonality scales demand by calendar month (January first); it averages 1.0.
var seasonality = [12]float64{0.92, 0.95, 1.00, 0.98, 1.00, 0.97, 1.05, 0.98, 1.00, 1.02, 1.03, 1.10}

type logisticEngine struct {
	market    MarketStats
	startYear int
}

// NewLogistic returns the S-curve engine: the fleet cap grows logistically toward 500
// drivers, demand follows the seasonality table and technology is billed per ride only.
func NewLogistic(market MarketStats, startYear int) Engine {
	return &logisticEngine{market: market, startYear: startYear}
}

func (e *logisticEngine) Variant() Variant { return VariantLogistic }

// FleetCap is the driver ceiling for month (1-based) under a growth multiplier.
func FleetCap(month int, multiplier float64) float64 {
	return fleetCeiling / (1 + math.Exp(-fleetSteepness*multiplier*(float64(month)-fleetMidpoint)))
}

func (e *logisticEngine) Project(p SimulationParams, s Scenario) ([]MonthlyResult, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	profile, err := s.Profile()
	if err != nil {
		return nil, err
	}

	ceiling := e.market.SOM()
	growth := p.UserGrowth / 100 * profile.GrowthMultiplier
	drivers := p.ActiveDrivers
	users := initialUsers(p)
	accumulated := -p.InitialInvestment
	tripsPerDriver := p.RidesPerDriverDay * (weekdaysPerMonth + weekendPerMonth*weekendBoost)

	rows := make([]MonthlyResult, 0, Months)
	for m := 0; m < Months; m++ {
		if !p.MaintenanceActive {
			rows = append(rows, suspendedRow(e.startYear, m, p.InitialInvestment))
			continue
		}

		prev := users
		users = growUsers(users, growth, ceiling)

		drivers = (drivers + p.DriverAdditionMonthly) * (1 - driverAttrition)
		drivers = math.Min(drivers, FleetCap(m+1, profile.GrowthMultiplier))

		campaign := p.PaidTraffic + p.ActivationTurbo + p.BarPartnerships + p.Referral + p.OfflineBrand
		if m >= 12 {
			campaign *= campaignTailFactor
		}

		row := settle(p, e.startYear, monthInput{
			index:     m,
			drivers:   drivers,
			users:     users,
			prevUsers: prev,
			demanded:  users * p.RidesPerUserMonth * seasonality[m%12],
			supply:    drivers * availabilityFactor * tripsPerDriver,
			campaign:  campaign,
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
