// README: Annual audit and investment summary derived from projection rows.
package audit

// YearAudit aggregates the monthly rows of one calendar year.
type YearAudit struct {
	Year                 int     `json:"year"`
	TotalGMV             float64 `json:"total_gmv"`
	TotalRevenue         float64 `json:"total_revenue"`
	TotalCashback        float64 `json:"total_cashback"`
	TotalNetProfit       float64 `json:"total_net_profit"`
	TotalEBITDA          float64 `json:"total_ebitda"`
	TotalRides           int     `json:"total_rides"`
	AvgMonthlyProfit     float64 `json:"avg_monthly_profit"`
	AvgRidesPerDriverDay float64 `json:"avg_rides_per_driver_day"`
	GrowthFromPrev       float64 `json:"growth_from_prev"`
	BestMonth            string  `json:"best_month"`
	WorstMonth           string  `json:"worst_month"`
	EndUsers             int     `json:"end_users"`
	EndDrivers           int     `json:"end_drivers"`
	AvgMonthlyRides      float64 `json:"avg_monthly_rides"`
	TotalOpCosts         float64 `json:"total_op_costs"`
}

// Summary is the whole-horizon investment view.
type Summary struct {
	Months          int      `json:"months"`
	TotalInvestment float64  `json:"total_investment"`
	TotalGMV        float64  `json:"total_gmv"`
	TotalNetProfit  float64  `json:"total_net_profit"`
	ROIPct          float64  `json:"roi_pct"`
	PaybackMonths   *float64 `json:"payback_months"`
	BreakEvenMonth  *int     `json:"break_even_month"`
}
