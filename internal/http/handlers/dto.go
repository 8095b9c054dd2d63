package handlers

import "viability/internal/modules/projection"

// paramsDTO mirrors projection.SimulationParams with pointers so an omitted knob is
// reported instead of silently read as zero.
type paramsDTO struct {
	ActiveDrivers         *float64 `json:"active_drivers" validate:"required"`
	DriverAdditionMonthly *float64 `json:"driver_addition_monthly" validate:"required"`
	RidesPerDriverDay     *float64 `json:"rides_per_driver_day" validate:"required"`
	RidesPerUserMonth     *float64 `json:"rides_per_user_month" validate:"required"`
	AvgFare               *float64 `json:"avg_fare" validate:"required"`
	UserGrowth            *float64 `json:"user_growth" validate:"required"`
	ChurnRate             *float64 `json:"churn_rate" validate:"required"`

	FixedCosts              *float64 `json:"fixed_costs" validate:"required"`
	MarketingMonthly        *float64 `json:"marketing_monthly" validate:"required"`
	PaidTraffic             *float64 `json:"paid_traffic" validate:"required"`
	ActivationTurbo         *float64 `json:"activation_turbo" validate:"required"`
	BarPartnerships         *float64 `json:"bar_partnerships" validate:"required"`
	Referral                *float64 `json:"referral" validate:"required"`
	OfflineBrand            *float64 `json:"offline_brand" validate:"required"`
	CommercialMarketingCost *float64 `json:"commercial_marketing_cost" validate:"required"`

	TechMonthly           *float64 `json:"tech_monthly" validate:"required"`
	APIMaintenanceRate    *float64 `json:"api_maintenance_rate" validate:"required"`
	BankFeeRate           *float64 `json:"bank_fee_rate" validate:"required"`
	ChargebackReserveRate *float64 `json:"chargeback_reserve_rate" validate:"required"`
	InitialInvestment     *float64 `json:"initial_investment" validate:"required"`

	MaintenanceActive *bool `json:"maintenance_active" validate:"required"`
	ApplyMinimumCosts *bool `json:"apply_minimum_costs" validate:"required"`

	CurrentUsersReal *float64 `json:"current_users_real,omitempty"`
}

// toParams must only be called after validation succeeded.
func (d *paramsDTO) toParams() projection.SimulationParams {
	return projection.SimulationParams{
		ActiveDrivers:           *d.ActiveDrivers,
		DriverAdditionMonthly:   *d.DriverAdditionMonthly,
		RidesPerDriverDay:       *d.RidesPerDriverDay,
		RidesPerUserMonth:       *d.RidesPerUserMonth,
		AvgFare:                 *d.AvgFare,
		UserGrowth:              *d.UserGrowth,
		ChurnRate:               *d.ChurnRate,
		FixedCosts:              *d.FixedCosts,
		MarketingMonthly:        *d.MarketingMonthly,
		PaidTraffic:             *d.PaidTraffic,
		ActivationTurbo:         *d.ActivationTurbo,
		BarPartnerships:         *d.BarPartnerships,
		Referral:                *d.Referral,
		OfflineBrand:            *d.OfflineBrand,
		CommercialMarketingCost: *d.CommercialMarketingCost,
		TechMonthly:             *d.TechMonthly,
		APIMaintenanceRate:      *d.APIMaintenanceRate,
		BankFeeRate:             *d.BankFeeRate,
		ChargebackReserveRate:   *d.ChargebackReserveRate,
		InitialInvestment:       *d.InitialInvestment,
		MaintenanceActive:       *d.MaintenanceActive,
		ApplyMinimumCosts:       *d.ApplyMinimumCosts,
		CurrentUsersReal:        d.CurrentUsersReal,
	}
}
