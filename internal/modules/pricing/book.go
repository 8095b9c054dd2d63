package pricing

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	SourceDefaults = "defaults"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

func DefaultTariff() TariffConfig {
	return TariffConfig{
		BaseFare:     4.00,
		PerKm:        2.02,
		IncludedKm:   0,
		MinFare:      9.00,
		TechFeeFixed: 0.70,
		TakeRatePct:  15,
	}
}

func DefaultSchedules() []Schedule {
	return []Schedule{
		{Period: "Madrugada", Start: "00:00", End: "05:59", Multiplier: 1.2},
		{Period: "Normal", Start: "06:00", End: "17:59", Multiplier: 1.0},
		{Period: "Pico", Start: "18:00", End: "20:59", Multiplier: 1.1},
		{Period: "Noite", Start: "21:00", End: "23:59", Multiplier: 1.2},
	}
}

func DefaultHeatZones() []HeatZone {
	return []HeatZone{
		{Zone: "Centro/Estação", Multiplier: 1.40},
		{Zone: "Leporace/Brasilândia", Multiplier: 1.20},
		{Zone: "City Petrópolis/Aeroporto", Multiplier: 1.10},
		{Zone: "Distrito Industrial", Multiplier: 1.00},
	}
}

func DefaultEvents() map[string]EventRange {
	return map[string]EventRange{
		"evento": {Min: 1.80, Max: 2.50},
		"chuva":  {Min: 1.80, Max: 2.50},
	}
}

func DefaultBook() Book {
	return Book{
		Tariff:    DefaultTariff(),
		Schedules: DefaultSchedules(),
		HeatZones: DefaultHeatZones(),
		Events:    DefaultEvents(),
		Source:    SourceDefaults,
	}
}

// MultiplierAt returns the schedule covering the minute of day of t. Windows may wrap
// past midnight. Uncovered minutes get 1.0.
func (b Book) MultiplierAt(t time.Time) (float64, string) {
	minute := t.Hour()*60 + t.Minute()
	for _, s := range b.Schedules {
		start, err1 := parseClock(s.Start)
		end, err2 := parseClock(s.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if start <= end && minute >= start && minute <= end {
			return s.Multiplier, s.Period
		}
		if start > end && (minute >= start || minute <= end) {
			return s.Multiplier, s.Period
		}
	}
	return 1.0, ""
}

// ZoneMultiplier looks a heat zone up by name, ignoring case. An empty name is 1.0.
func (b Book) ZoneMultiplier(name string) (float64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 1.0, nil
	}
	for _, z := range b.HeatZones {
		if strings.EqualFold(z.Zone, name) {
			return z.Multiplier, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown heat zone %q", ErrBadRequest, name)
}

// EventMultiplier is the lower bound of the named event's surge range.
func (b Book) EventMultiplier(name string) (float64, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 1.0, nil
	}
	ev, ok := b.Events[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown event %q", ErrBadRequest, name)
	}
	return ev.Min, nil
}

func (b Book) Validate() error {
	t := b.Tariff
	for name, v := range map[string]float64{
		"base_fare":      t.BaseFare,
		"per_km":         t.PerKm,
		"included_km":    t.IncludedKm,
		"min_fare":       t.MinFare,
		"tech_fee_fixed": t.TechFeeFixed,
		"take_rate_pct":  t.TakeRatePct,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidBook, name)
		}
	}
	if t.TakeRatePct > 100 {
		return fmt.Errorf("%w: take_rate_pct above 100", ErrInvalidBook)
	}
	for _, s := range b.Schedules {
		if _, err := parseClock(s.Start); err != nil {
			return fmt.Errorf("%w: schedule %q: %v", ErrInvalidBook, s.Period, err)
		}
		if _, err := parseClock(s.End); err != nil {
			return fmt.Errorf("%w: schedule %q: %v", ErrInvalidBook, s.Period, err)
		}
		if s.Multiplier <= 0 {
			return fmt.Errorf("%w: schedule %q multiplier must be positive", ErrInvalidBook, s.Period)
		}
	}
	for _, z := range b.HeatZones {
		if z.Multiplier <= 0 {
			return fmt.Errorf("%w: zone %q multiplier must be positive", ErrInvalidBook, z.Zone)
		}
	}
	for name, ev := range b.Events {
		if name != strings.ToLower(strings.TrimSpace(name)) {
			return fmt.Errorf("%w: event %q must be lower case", ErrInvalidBook, name)
		}
		if !(ev.Min > 0) || ev.Max < ev.Min {
			return fmt.Errorf("%w: event %q needs 0 < min <= max", ErrInvalidBook, name)
		}
	}
	return nil
}

// normalizeEvents lower-cases event names so lookups are case-insensitive.
func (b *Book) normalizeEvents() error {
	events := make(map[string]EventRange, len(b.Events))
	for name, ev := range b.Events {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := events[key]; dup {
			return fmt.Errorf("%w: event %q listed twice", ErrInvalidBook, key)
		}
		events[key] = ev
	}
	b.Events = events
	return nil
}

// LoadBookFile reads a YAML (or JSON) tariff book. Sections missing from the file keep
// their defaults.
func LoadBookFile(path string) (Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Book{}, fmt.Errorf("read tariff book: %w", err)
	}
	book := DefaultBook()
	book.Events = nil
	if err := yaml.Unmarshal(raw, &book); err != nil {
		return Book{}, fmt.Errorf("%w: %v", ErrInvalidBook, err)
	}
	if book.Events == nil {
		book.Events = DefaultEvents()
	}
	if err := book.normalizeEvents(); err != nil {
		return Book{}, err
	}
	if err := book.Validate(); err != nil {
		return Book{}, err
	}
	book.Source = SourceFile
	return book, nil
}

func parseClock(v string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("bad clock %q", v)
	}
	return t.Hour()*60 + t.Minute(), nil
}
