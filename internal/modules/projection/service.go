// README: Projection service selects an engine variant and runs one or many scenarios.
package projection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	engines map[Variant]Engine
	logger  *logrus.Logger
}

func NewService(market MarketStats, startYear int, logger *logrus.Logger) *Service {
	return &Service{
		engines: map[Variant]Engine{
			VariantFlatCap:  NewFlatCap(market, startYear),
			VariantLogistic: NewLogistic(market, startYear),
		},
		logger: logger,
	}
}

type ProjectCommand struct {
	Variant  Variant
	Scenario Scenario
	Params   SimulationParams
}

func (s *Service) engine(v Variant) (Engine, error) {
	e, ok := s.engines[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
	return e, nil
}

func (s *Service) Project(ctx context.Context, cmd ProjectCommand) ([]MonthlyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := s.engine(cmd.Variant)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := e.Project(cmd.Params, cmd.Scenario)
	fields := logrus.Fields{
		"variant":  cmd.Variant,
		"scenario": cmd.Scenario,
	}
	if err != nil {
		s.logger.WithFields(fields).WithError(err).Warn("projection rejected")
		return nil, err
	}

	last := rows[len(rows)-1]
	fields["months"] = len(rows)
	fields["accumulated_profit"] = last.AccumulatedProfit
	fields["end_drivers"] = last.Drivers
	fields["end_users"] = last.Users
	fields["elapsed"] = time.Since(start).String()
	s.logger.WithFields(fields).Debug("projection computed")
	return rows, nil
}

// Compare projects every scenario in params concurrently. Each run owns its state,
// so no coordination beyond collecting results is needed.
func (s *Service) Compare(ctx context.Context, variant Variant, params map[Scenario]SimulationParams) (map[Scenario][]MonthlyResult, error) {
	var mu sync.Mutex
	out := make(map[Scenario][]MonthlyResult, len(params))

	g, gctx := errgroup.WithContext(ctx)
	for sc, p := range params {
		sc, p := sc, p
		g.Go(func() error {
			rows, err := s.Project(gctx, ProjectCommand{Variant: variant, Scenario: sc, Params: p})
			if err != nil {
				return fmt.Errorf("scenario %s: %w", sc, err)
			}
			mu.Lock()
			out[sc] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
