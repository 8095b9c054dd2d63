package audit

import "viability/internal/modules/projection"

// Years groups rows by calendar year in first-seen order and reduces each group.
func Years(rows []projection.MonthlyResult) []YearAudit {
	var order []int
	groups := map[int][]projection.MonthlyResult{}
	for _, r := range rows {
		if _, ok := groups[r.Year]; !ok {
			order = append(order, r.Year)
		}
		groups[r.Year] = append(groups[r.Year], r)
	}

	audits := make([]YearAudit, 0, len(order))
	for i, year := range order {
		a := reduceYear(year, groups[year])
		if i > 0 {
			a.GrowthFromPrev = growth(audits[i-1].TotalRevenue, a.TotalRevenue)
		}
		audits = append(audits, a)
	}
	return audits
}

func reduceYear(year int, data []projection.MonthlyResult) YearAudit {
	a := YearAudit{Year: year}
	if len(data) == 0 {
		return a
	}

	var rideDays float64
	best, worst := data[0], data[0]
	for _, r := range data {
		a.TotalGMV += r.GrossRevenue
		a.TotalRevenue += r.TakeRateRevenue
		a.TotalCashback += r.Cashback
		a.TotalNetProfit += r.NetProfit
		a.TotalEBITDA += r.EBITDA
		a.TotalRides += r.Rides
		a.TotalOpCosts += r.Marketing + r.Tech + r.VariableCosts
		rideDays += r.RidesPerDriverDay

		// strict comparisons keep the first month on ties
		if r.NetProfit > best.NetProfit {
			best = r
		}
		if r.NetProfit < worst.NetProfit {
			worst = r
		}
	}

	n := float64(len(data))
	last := data[len(data)-1]
	a.AvgMonthlyProfit = a.TotalNetProfit / n
	a.AvgRidesPerDriverDay = rideDays / n
	a.AvgMonthlyRides = float64(a.TotalRides) / n
	a.BestMonth = best.MonthName
	a.WorstMonth = worst.MonthName
	a.EndUsers = last.Users
	a.EndDrivers = last.Drivers
	return a
}

func growth(prev, cur float64) float64 {
	if prev <= 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}

// Summarize computes ROI, payback and break-even over the full horizon. Payback is
// nil when there is no investment to recover or the average month loses money.
func Summarize(rows []projection.MonthlyResult, initialInvestment float64) Summary {
	s := Summary{Months: len(rows), TotalInvestment: initialInvestment}
	for _, r := range rows {
		s.TotalGMV += r.GrossRevenue
		s.TotalNetProfit += r.NetProfit
		if s.BreakEvenMonth == nil && r.AccumulatedProfit >= 0 {
			m := r.Month
			s.BreakEvenMonth = &m
		}
	}
	if initialInvestment <= 0 || len(rows) == 0 {
		return s
	}

	s.ROIPct = s.TotalNetProfit / initialInvestment * 100
	if avg := s.TotalNetProfit / float64(len(rows)); avg > 0 {
		payback := initialInvestment / avg
		s.PaybackMonths = &payback
	}
	return s
}
