package projection

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func testService() *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(testMarket, 2026, logger)
}

func TestServiceProject(t *testing.T) {
	svc := testService()

	tests := []struct {
		name    string
		cmd     ProjectCommand
		wantErr error
	}{
		{
			name: "flat cap",
			cmd:  ProjectCommand{Variant: VariantFlatCap, Scenario: ScenarioRealistic, Params: baseParams()},
		},
		{
			name: "logistic",
			cmd:  ProjectCommand{Variant: VariantLogistic, Scenario: ScenarioPessimistic, Params: baseParams()},
		},
		{
			name:    "unknown variant",
			cmd:     ProjectCommand{Variant: "linear", Scenario: ScenarioRealistic, Params: baseParams()},
			wantErr: ErrUnknownVariant,
		},
		{
			name:    "unknown scenario",
			cmd:     ProjectCommand{Variant: VariantFlatCap, Scenario: "neutral", Params: baseParams()},
			wantErr: ErrUnknownScenario,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := svc.Project(context.Background(), tt.cmd)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rows) != Months {
				t.Fatalf("expected %d rows, got %d", Months, len(rows))
			}
		})
	}
}

func TestServiceProject_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testService().Project(ctx, ProjectCommand{Variant: VariantFlatCap, Scenario: ScenarioRealistic, Params: baseParams()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestServiceCompare(t *testing.T) {
	svc := testService()
	params := map[Scenario]SimulationParams{}
	for _, sc := range Scenarios() {
		params[sc] = baseParams()
	}

	out, err := svc.Compare(context.Background(), VariantLogistic, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(out))
	}
	for _, sc := range Scenarios() {
		want, _ := NewLogistic(testMarket, 2026).Project(params[sc], sc)
		got := out[sc]
		if len(got) != Months || got[Months-1] != want[Months-1] {
			t.Fatalf("%s: concurrent run differs from a direct projection", sc)
		}
	}

	// Faster fleet growth means more drivers by the end of the horizon.
	if out[ScenarioOptimistic][Months-1].Drivers < out[ScenarioPessimistic][Months-1].Drivers {
		t.Fatalf("optimistic fleet smaller than pessimistic")
	}
}

func TestServiceCompare_FailsWhenAnyScenarioInvalid(t *testing.T) {
	bad := baseParams()
	bad.AvgFare = -1

	_, err := testService().Compare(context.Background(), VariantFlatCap, map[Scenario]SimulationParams{
		ScenarioRealistic:  baseParams(),
		ScenarioOptimistic: bad,
	})
	if !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}
