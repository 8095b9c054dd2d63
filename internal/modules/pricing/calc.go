package pricing

import "math"

// TariffBeforeDynamic is base fare plus billable distance, floored at the minimum fare.
func TariffBeforeDynamic(cfg TariffConfig, distanceKm float64) float64 {
	billable := math.Max(0, distanceKm-cfg.IncludedKm)
	return math.Max(cfg.BaseFare+cfg.PerKm*billable, cfg.MinFare)
}

// CalcPricing prices one ride. The minimum fare is applied before and again after the
// surge multiplier. Commission is taken from the tariff only, never the technology fee.
func CalcPricing(cfg TariffConfig, opts Options) Result {
	before := TariffBeforeDynamic(cfg, opts.DistanceKm)
	tariff := math.Max(before*opts.DynamicMultiplier, cfg.MinFare)

	var techFee float64
	if opts.IncludeTechFee {
		techFee = cfg.TechFeeFixed
	}
	price := tariff + techFee
	commission := math.Max(tariff, 0) * cfg.TakeRatePct / 100

	return Result{
		DistanceKm:          opts.DistanceKm,
		DynamicMultiplier:   opts.DynamicMultiplier,
		TariffBeforeDynamic: before,
		Tariff:              tariff,
		TechFeeApplied:      techFee,
		PassengerPrice:      price,
		TakeRatePct:         cfg.TakeRatePct,
		PlatformCommission:  commission,
		DriverRepasse:       price - techFee - commission,
	}
}

// CalcSplitFromPassengerPrice recovers the split when only the charged price is known.
// The technology fee never exceeds the price, so the tariff is never negative.
func CalcSplitFromPassengerPrice(in SplitInput) Split {
	price := math.Max(in.PassengerPrice, 0)

	var techFee float64
	if in.IncludeTechFee {
		techFee = math.Min(math.Max(in.TechFeeFixed, 0), price)
	}
	tariff := math.Max(0, price-techFee)
	commission := tariff * in.TakeRatePct / 100

	return Split{
		PassengerPrice:     price,
		TechFeeApplied:     techFee,
		Tariff:             tariff,
		TakeRatePct:        in.TakeRatePct,
		PlatformCommission: commission,
		DriverRepasse:      price - techFee - commission,
	}
}
