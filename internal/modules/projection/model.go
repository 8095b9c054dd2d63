// README: Simulation inputs and monthly results of the projection engine.
package projection

import "errors"

var (
	ErrInvalidParams   = errors.New("invalid simulation params")
	ErrUnknownScenario = errors.New("unknown scenario")
	ErrUnknownVariant  = errors.New("unknown projection variant")
)

// Months is the fixed projection horizon.
const Months = 36

// MarketStats are the static population figures bounding user growth.
type MarketStats struct {
	Population float64 `json:"population"`
	SAMPct     float64 `json:"sam_pct"`
	SOMPct     float64 `json:"som_pct"`
}

// SOM is the serviceable obtainable market in users.
func (m MarketStats) SOM() float64 {
	return m.Population * (m.SAMPct / 100) * (m.SOMPct / 100)
}

// SimulationParams is one flat set of operational knobs. Percentages are 0-100.
// Upper bounds keep every month of a projection inside float64 range.
type SimulationParams struct {
	ActiveDrivers         float64 `json:"active_drivers" validate:"gte=0,lte=1e6"`
	DriverAdditionMonthly float64 `json:"driver_addition_monthly" validate:"gte=0,lte=1e6"`
	RidesPerDriverDay     float64 `json:"rides_per_driver_day" validate:"gte=0,lte=1000"`
	RidesPerUserMonth     float64 `json:"rides_per_user_month" validate:"gte=0,lte=1000"`
	AvgFare               float64 `json:"avg_fare" validate:"gte=0,lte=1e6"`
	UserGrowth            float64 `json:"user_growth" validate:"gte=0,lte=100"`
	ChurnRate             float64 `json:"churn_rate" validate:"gte=0,lte=100"`

	FixedCosts              float64 `json:"fixed_costs" validate:"gte=0,lte=1e9"`
	MarketingMonthly        float64 `json:"marketing_monthly" validate:"gte=0,lte=1e9"`
	PaidTraffic             float64 `json:"paid_traffic" validate:"gte=0,lte=1e9"`
	ActivationTurbo         float64 `json:"activation_turbo" validate:"gte=0,lte=1e9"`
	BarPartnerships         float64 `json:"bar_partnerships" validate:"gte=0,lte=1e9"`
	Referral                float64 `json:"referral" validate:"gte=0,lte=1e9"`
	OfflineBrand            float64 `json:"offline_brand" validate:"gte=0,lte=1e9"`
	CommercialMarketingCost float64 `json:"commercial_marketing_cost" validate:"gte=0,lte=1e9"`

	TechMonthly           float64 `json:"tech_monthly" validate:"gte=0,lte=1e9"`
	APIMaintenanceRate    float64 `json:"api_maintenance_rate" validate:"gte=0,lte=1e6"`
	BankFeeRate           float64 `json:"bank_fee_rate" validate:"gte=0,lte=100"`
	ChargebackReserveRate float64 `json:"chargeback_reserve_rate" validate:"gte=0,lte=100"`
	InitialInvestment     float64 `json:"initial_investment" validate:"gte=0,lte=1e9"`

	MaintenanceActive bool `json:"maintenance_active"`
	ApplyMinimumCosts bool `json:"apply_minimum_costs"`

	// CurrentUsersReal seeds the user base with an observed count ("real world" mode).
	CurrentUsersReal *float64 `json:"current_users_real,omitempty" validate:"omitempty,gte=0,lte=1e9"`
}

// MonthlyResult is one row of the projection. Counts are rounded for display;
// the engine carries fractional state between months.
type MonthlyResult struct {
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	MonthName string `json:"month_name"`

	Drivers int `json:"drivers"`
	Users   int `json:"users"`
	Rides   int `json:"rides"`

	GrossRevenue    float64 `json:"gross_revenue"`
	TakeRateGross   float64 `json:"take_rate_gross"`
	Cashback        float64 `json:"cashback"`
	TakeRateRevenue float64 `json:"take_rate_revenue"`
	TakeRatePct     float64 `json:"take_rate_pct"`

	Taxes         float64 `json:"taxes"`
	VariableCosts float64 `json:"variable_costs"`
	FixedCosts    float64 `json:"fixed_costs"`
	Marketing     float64 `json:"marketing"`
	Tech          float64 `json:"tech"`
	CampaignCosts float64 `json:"campaign_costs"`

	EBITDA            float64 `json:"ebitda"`
	NetProfit         float64 `json:"net_profit"`
	AccumulatedProfit float64 `json:"accumulated_profit"`

	Margin             float64 `json:"margin"`
	ContributionMargin float64 `json:"contribution_margin"`
	CAC                float64 `json:"cac"`
	LTV                float64 `json:"ltv"`

	GrossPerDriver    float64 `json:"gross_per_driver"`
	NetPerDriver      float64 `json:"net_per_driver"`
	RidesPerDriver    float64 `json:"rides_per_driver"`
	RidesPerDriverDay float64 `json:"rides_per_driver_day"`

	SupplyCapacity     float64 `json:"supply_capacity"`
	DemandedRides      float64 `json:"demanded_rides"`
	IsSupplyBottleneck bool    `json:"is_supply_bottleneck"`
	DemandGap          float64 `json:"demand_gap"`
	NewUsersAdded      int     `json:"new_users_added"`
}
