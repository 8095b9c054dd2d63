// README: Engine interface and the month roll-up shared by both projection variants.
package projection

import (
	"fmt"
	"math"
	"reflect"
)

// Engine projects Months monthly rows for one scenario. Implementations keep all
// running state local to a single Project call.
type Engine interface {
	Variant() Variant
	Project(p SimulationParams, s Scenario) ([]MonthlyResult, error)
}

var monthNames = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

const (
	nominalTakeRatePct = 15.0
	taxRate            = 0.112
	driverAttrition    = 0.02
	availabilityFactor = 0.40
	campaignTailFactor = 0.3
	daysPerMonth       = 30
)

// MeritocracyTakeRate is the effective commission percentage for a fleet averaging
// ridesPerDriver rides per driver in the month.
func MeritocracyTakeRate(ridesPerDriver float64) float64 {
	switch {
	case ridesPerDriver >= 600:
		return 10
	case ridesPerDriver >= 500:
		return 11
	case ridesPerDriver >= 400:
		return 12
	case ridesPerDriver >= 300:
		return 13
	}
	return 15
}

// monthInput is what a variant computed for one month before the financial roll-up.
type monthInput struct {
	index     int
	drivers   float64
	users     float64
	prevUsers float64
	demanded  float64
	supply    float64
	campaign  float64
	techFixed float64
	techRide  float64
}

func calendar(startYear, index int) (int, string) {
	return startYear + index/12, monthNames[index%12]
}

// growUsers applies one logistic-saturation step toward ceiling.
func growUsers(users, rate, ceiling float64) float64 {
	if ceiling <= 0 {
		return users
	}
	effective := math.Max(0, rate*(1-users/ceiling))
	users *= 1 + effective
	if users > ceiling {
		users = ceiling
	}
	return users
}

func initialUsers(p SimulationParams) float64 {
	if p.CurrentUsersReal != nil {
		return *p.CurrentUsersReal
	}
	if p.ActiveDrivers > 0 {
		return p.ActiveDrivers * 50
	}
	return 100
}

func suspendedRow(startYear, index int, initialInvestment float64) MonthlyResult {
	year, name := calendar(startYear, index)
	return MonthlyResult{
		Month:             index + 1,
		Year:              year,
		MonthName:         name,
		AccumulatedProfit: -initialInvestment,
	}
}

// settle turns one month of operational state into a financial row. accumulated is
// the running profit before this month.
func settle(p SimulationParams, startYear int, in monthInput, accumulated float64) MonthlyResult {
	rides := math.Min(in.demanded, in.supply)
	ridesPerDriver := safeDiv(rides, in.drivers)
	takePct := MeritocracyTakeRate(ridesPerDriver)

	gross := rides * p.AvgFare
	takeGross := gross * nominalTakeRatePct / 100
	takeNet := gross * takePct / 100
	cashback := takeGross - takeNet

	var taxes, variable, marketing, campaign float64
	tech := in.techFixed
	if rides > 0 {
		taxes = takeNet * taxRate
		bankFees := takeNet * p.BankFeeRate / 100
		chargeback := gross * p.ChargebackReserveRate / 100
		variable = bankFees + chargeback
		campaign = in.campaign
		marketing = p.MarketingMonthly + campaign
		if p.ApplyMinimumCosts {
			marketing = math.Max(marketing, p.CommercialMarketingCost)
		}
		tech += rides * in.techRide
	}

	ebitda := takeNet - taxes - variable - p.FixedCosts - tech - marketing
	net := ebitda

	contribution := takeNet - taxes - variable
	churn := p.ChurnRate / 100
	ltv := safeDiv(safeDiv(contribution, in.users), churn)

	netNewUsers := in.users - in.prevUsers
	grossNewUsers := netNewUsers + in.prevUsers*churn
	var cac float64
	if grossNewUsers > 0 && rides > 0 {
		cac = marketing / grossNewUsers
	}

	year, name := calendar(startYear, in.index)
	return MonthlyResult{
		Month:     in.index + 1,
		Year:      year,
		MonthName: name,

		Drivers: roundCount(in.drivers),
		Users:   roundCount(in.users),
		Rides:   roundCount(rides),

		GrossRevenue:    gross,
		TakeRateGross:   takeGross,
		Cashback:        cashback,
		TakeRateRevenue: takeNet,
		TakeRatePct:     takePct,

		Taxes:         taxes,
		VariableCosts: variable,
		FixedCosts:    p.FixedCosts,
		Marketing:     marketing,
		Tech:          tech,
		CampaignCosts: campaign,

		EBITDA:            ebitda,
		NetProfit:         net,
		AccumulatedProfit: accumulated + net,

		Margin:             safeDiv(net, takeNet) * 100,
		ContributionMargin: safeDiv(contribution, takeNet) * 100,
		CAC:                cac,
		LTV:                ltv,

		GrossPerDriver:    safeDiv(gross, in.drivers),
		NetPerDriver:      safeDiv(gross-takeNet, in.drivers),
		RidesPerDriver:    ridesPerDriver,
		RidesPerDriverDay: ridesPerDriver / daysPerMonth,

		SupplyCapacity:     math.Round(in.supply),
		DemandedRides:      math.Round(in.demanded),
		IsSupplyBottleneck: in.demanded > in.supply,
		DemandGap:          math.Round(math.Max(0, in.demanded-in.supply)),
		NewUsersAdded:      roundCount(netNewUsers),
	}
}

// safeDiv returns 0 when the denominator is not positive.
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

func roundCount(v float64) int {
	return int(math.Round(v))
}

// checkFinite rejects a projection holding a NaN or infinite figure in any row.
func checkFinite(rows []MonthlyResult) error {
	for _, r := range rows {
		v := reflect.ValueOf(r)
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := v.Field(i)
			if f.Kind() != reflect.Float64 {
				continue
			}
			if x := f.Float(); math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: %s of month %d is not finite", ErrInvalidParams, jsonFieldName(t.Field(i)), r.Month)
			}
		}
	}
	return nil
}
