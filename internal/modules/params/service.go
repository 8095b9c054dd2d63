package params

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"viability/internal/modules/projection"
)

// Service is the load/save boundary around the projection engine. The engine itself
// never reads or writes parameters.
type Service struct {
	store  Store
	logger *logrus.Logger
}

func NewService(store Store, logger *logrus.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Load returns the cached parameters of a scenario, or its defaults when nothing usable
// is cached. A failing cache degrades to defaults.
func (s *Service) Load(ctx context.Context, sc projection.Scenario) (projection.SimulationParams, error) {
	defaults, err := Defaults(sc)
	if err != nil {
		return projection.SimulationParams{}, err
	}

	p, err := s.store.Get(ctx, sc)
	switch {
	case errors.Is(err, ErrNotFound):
		return defaults, nil
	case err != nil:
		s.logger.WithError(err).WithField("scenario", sc).Warn("params cache read failed, using defaults")
		return defaults, nil
	}

	if err := projection.Validate(p); err != nil {
		s.logger.WithError(err).WithField("scenario", sc).Warn("cached params invalid, using defaults")
		return defaults, nil
	}
	return p, nil
}

func (s *Service) Save(ctx context.Context, sc projection.Scenario, p projection.SimulationParams) error {
	if _, err := sc.Profile(); err != nil {
		return err
	}
	if err := projection.Validate(p); err != nil {
		return err
	}
	if err := s.store.Set(ctx, sc, p); err != nil {
		return err
	}
	s.logger.WithField("scenario", sc).Debug("params saved")
	return nil
}

func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	s.logger.Info("params reset to defaults")
	return nil
}

// All loads every scenario in display order.
func (s *Service) All(ctx context.Context) (map[projection.Scenario]projection.SimulationParams, error) {
	out := make(map[projection.Scenario]projection.SimulationParams, 3)
	for _, sc := range projection.Scenarios() {
		p, err := s.Load(ctx, sc)
		if err != nil {
			return nil, err
		}
		out[sc] = p
	}
	return out, nil
}
