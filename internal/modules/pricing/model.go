// README: Tariff configuration, fare results and the three-way split of a passenger price.
package pricing

import "errors"

var (
	ErrBadRequest  = errors.New("bad pricing request")
	ErrNoTariff    = errors.New("no tariff configured")
	ErrInvalidBook = errors.New("invalid tariff book")
)

// TariffConfig is the fare table of one municipality.
type TariffConfig struct {
	BaseFare     float64 `json:"base_fare" yaml:"base_fare"`
	PerKm        float64 `json:"per_km" yaml:"per_km"`
	IncludedKm   float64 `json:"included_km" yaml:"included_km"`
	MinFare      float64 `json:"min_fare" yaml:"min_fare"`
	TechFeeFixed float64 `json:"tech_fee_fixed" yaml:"tech_fee_fixed"`
	TakeRatePct  float64 `json:"take_rate_pct" yaml:"take_rate_pct"`
}

type Options struct {
	DistanceKm        float64
	DynamicMultiplier float64
	IncludeTechFee    bool
}

// DefaultOptions prices distanceKm without surge and with the technology fee.
func DefaultOptions(distanceKm float64) Options {
	return Options{DistanceKm: distanceKm, DynamicMultiplier: 1.0, IncludeTechFee: true}
}

type Result struct {
	DistanceKm          float64 `json:"distance_km"`
	DynamicMultiplier   float64 `json:"dynamic_multiplier"`
	TariffBeforeDynamic float64 `json:"tariff_before_dynamic"`
	Tariff              float64 `json:"tariff"`
	TechFeeApplied      float64 `json:"tech_fee_applied"`
	PassengerPrice      float64 `json:"passenger_price"`
	TakeRatePct         float64 `json:"take_rate_pct"`
	PlatformCommission  float64 `json:"platform_commission"`
	DriverRepasse       float64 `json:"driver_repasse"`
}

type SplitInput struct {
	PassengerPrice float64
	TechFeeFixed   float64
	TakeRatePct    float64
	IncludeTechFee bool
}

type Split struct {
	PassengerPrice     float64 `json:"passenger_price"`
	TechFeeApplied     float64 `json:"tech_fee_applied"`
	Tariff             float64 `json:"tariff"`
	TakeRatePct        float64 `json:"take_rate_pct"`
	PlatformCommission float64 `json:"platform_commission"`
	DriverRepasse      float64 `json:"driver_repasse"`
}

// Schedule is a time-of-day surge window. Start and End are "HH:MM", both inclusive.
type Schedule struct {
	Period     string  `json:"period" yaml:"period"`
	Start      string  `json:"start" yaml:"start"`
	End        string  `json:"end" yaml:"end"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

type HeatZone struct {
	Zone       string  `json:"zone" yaml:"zone"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// EventRange bounds the surge applied during an event such as rain.
type EventRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Book is everything needed to quote a fare.
type Book struct {
	Tariff    TariffConfig          `json:"tariff" yaml:"tariff"`
	Schedules []Schedule            `json:"dynamic_schedules" yaml:"dynamic_schedules"`
	HeatZones []HeatZone            `json:"heat_zones" yaml:"heat_zones"`
	Events    map[string]EventRange `json:"event_multipliers" yaml:"event_multipliers"`
	Source    string                `json:"source" yaml:"-"`
}
