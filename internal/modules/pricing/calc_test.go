package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-6

func TestCalcPricing(t *testing.T) {
	tests := []struct {
		name           string
		cfg            TariffConfig
		opts           Options
		wantBefore     float64
		wantTariff     float64
		wantPrice      float64
		wantCommission float64
		wantRepasse    float64
	}{
		{
			name:           "floor applied again after a discounting multiplier",
			cfg:            TariffConfig{BaseFare: 10, PerKm: 0, MinFare: 11.5, TechFeeFixed: 0.7, TakeRatePct: 15},
			opts:           Options{DistanceKm: 0, DynamicMultiplier: 0.8, IncludeTechFee: true},
			wantBefore:     11.5,
			wantTariff:     11.5,
			wantPrice:      12.2,
			wantCommission: 1.725,
			wantRepasse:    9.775,
		},
		{
			name:           "included kilometers are free",
			cfg:            TariffConfig{BaseFare: 10, PerKm: 2, IncludedKm: 1, MinFare: 11.5, TechFeeFixed: 0.7, TakeRatePct: 15},
			opts:           DefaultOptions(1),
			wantBefore:     11.5,
			wantTariff:     11.5,
			wantPrice:      12.2,
			wantCommission: 1.725,
			wantRepasse:    9.775,
		},
		{
			name:           "commission excludes the technology fee",
			cfg:            TariffConfig{BaseFare: 10, PerKm: 2, TechFeeFixed: 0.7, TakeRatePct: 15},
			opts:           DefaultOptions(5),
			wantBefore:     20,
			wantTariff:     20,
			wantPrice:      20.7,
			wantCommission: 3,
			wantRepasse:    17,
		},
		{
			name:           "surge",
			cfg:            TariffConfig{BaseFare: 10, PerKm: 2, TechFeeFixed: 0.7, TakeRatePct: 10},
			opts:           Options{DistanceKm: 5, DynamicMultiplier: 1.5, IncludeTechFee: true},
			wantBefore:     20,
			wantTariff:     30,
			wantPrice:      30.7,
			wantCommission: 3,
			wantRepasse:    27,
		},
		{
			name:           "without technology fee",
			cfg:            TariffConfig{BaseFare: 10, PerKm: 2, TechFeeFixed: 0.7, TakeRatePct: 15},
			opts:           Options{DistanceKm: 5, DynamicMultiplier: 1, IncludeTechFee: false},
			wantBefore:     20,
			wantTariff:     20,
			wantPrice:      20,
			wantCommission: 3,
			wantRepasse:    17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcPricing(tt.cfg, tt.opts)
			assert.InDelta(t, tt.wantBefore, got.TariffBeforeDynamic, tolerance)
			assert.InDelta(t, tt.wantTariff, got.Tariff, tolerance)
			assert.InDelta(t, tt.wantPrice, got.PassengerPrice, tolerance)
			assert.InDelta(t, tt.wantCommission, got.PlatformCommission, tolerance)
			assert.InDelta(t, tt.wantRepasse, got.DriverRepasse, tolerance)
		})
	}
}

func TestCalcSplitFromPassengerPrice(t *testing.T) {
	tests := []struct {
		name           string
		in             SplitInput
		wantFee        float64
		wantTariff     float64
		wantCommission float64
		wantRepasse    float64
	}{
		{
			name:    "price below the technology fee",
			in:      SplitInput{PassengerPrice: 0.5, TechFeeFixed: 0.7, TakeRatePct: 15, IncludeTechFee: true},
			wantFee: 0.5,
		},
		{
			name:           "regular fare",
			in:             SplitInput{PassengerPrice: 20.7, TechFeeFixed: 0.7, TakeRatePct: 15, IncludeTechFee: true},
			wantFee:        0.7,
			wantTariff:     20,
			wantCommission: 3,
			wantRepasse:    17,
		},
		{
			name:           "technology fee excluded",
			in:             SplitInput{PassengerPrice: 20, TechFeeFixed: 0.7, TakeRatePct: 15},
			wantTariff:     20,
			wantCommission: 3,
			wantRepasse:    17,
		},
		{
			name: "negative price clamps to zero",
			in:   SplitInput{PassengerPrice: -4, TechFeeFixed: 0.7, TakeRatePct: 15, IncludeTechFee: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcSplitFromPassengerPrice(tt.in)
			assert.InDelta(t, tt.wantFee, got.TechFeeApplied, tolerance)
			assert.InDelta(t, tt.wantTariff, got.Tariff, tolerance)
			assert.InDelta(t, tt.wantCommission, got.PlatformCommission, tolerance)
			assert.InDelta(t, tt.wantRepasse, got.DriverRepasse, tolerance)
		})
	}
}

func TestSplitSumsToPassengerPrice(t *testing.T) {
	cfg := DefaultTariff()
	for _, km := range []float64{0, 0.4, 2.5, 7, 13.3, 42} {
		for _, mult := range []float64{0.5, 1, 1.1, 1.54, 2.5} {
			for _, fee := range []bool{true, false} {
				r := CalcPricing(cfg, Options{DistanceKm: km, DynamicMultiplier: mult, IncludeTechFee: fee})
				sum := r.PlatformCommission + r.TechFeeApplied + r.DriverRepasse
				assert.InDelta(t, r.PassengerPrice, sum, tolerance, "km=%v mult=%v fee=%v", km, mult, fee)

				s := CalcSplitFromPassengerPrice(SplitInput{
					PassengerPrice: r.PassengerPrice,
					TechFeeFixed:   cfg.TechFeeFixed,
					TakeRatePct:    cfg.TakeRatePct,
					IncludeTechFee: fee,
				})
				assert.InDelta(t, s.PassengerPrice, s.PlatformCommission+s.TechFeeApplied+s.DriverRepasse, tolerance)

				// forward and inverse agree on every leg
				assert.InDelta(t, r.Tariff, s.Tariff, tolerance)
				assert.InDelta(t, r.TechFeeApplied, s.TechFeeApplied, tolerance)
				assert.InDelta(t, r.PlatformCommission, s.PlatformCommission, tolerance)
				assert.InDelta(t, r.DriverRepasse, s.DriverRepasse, tolerance)
			}
		}
	}
}
