package projection

import (
	"fmt"
	"strings"
)

type Scenario string

const (
	ScenarioPessimistic Scenario = "pessimistic"
	ScenarioRealistic   Scenario = "realistic"
	ScenarioOptimistic  Scenario = "optimistic"
)

// ScenarioProfile holds every per-scenario constant the engines use.
type ScenarioProfile struct {
	DriverCap        float64
	GrowthMultiplier float64
}

var scenarioProfiles = map[Scenario]ScenarioProfile{
	ScenarioPessimistic: {DriverCap: 800, GrowthMultiplier: 0.8},
	ScenarioRealistic:   {DriverCap: 2000, GrowthMultiplier: 1.0},
	ScenarioOptimistic:  {DriverCap: 3000, GrowthMultiplier: 1.2},
}

// Scenarios lists the scenarios in display order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioPessimistic, ScenarioRealistic, ScenarioOptimistic}
}

func (s Scenario) Profile() (ScenarioProfile, error) {
	p, ok := scenarioProfiles[s]
	if !ok {
		return ScenarioProfile{}, fmt.Errorf("%w: %q", ErrUnknownScenario, string(s))
	}
	return p, nil
}

// ParseScenario accepts the English names and the Portuguese UI labels.
func ParseScenario(v string) (Scenario, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pessimistic", "pessimista":
		return ScenarioPessimistic, nil
	case "realistic", "realista":
		return ScenarioRealistic, nil
	case "optimistic", "otimista":
		return ScenarioOptimistic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScenario, v)
}

type Variant string

const (
	VariantFlatCap  Variant = "flat_cap"
	VariantLogistic Variant = "logistic"
)

// ParseVariant defaults to the flat-cap engine when v is empty.
func ParseVariant(v string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "flat_cap", "flat-cap":
		return VariantFlatCap, nil
	case "logistic":
		return VariantLogistic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, v)
}
