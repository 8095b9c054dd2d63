// README: Pricing service resolves the tariff book and computes quotes and splits.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"viability/internal/types"
)

// BookSource loads a tariff book for a municipality.
type BookSource interface {
	Book(ctx context.Context, municipality string) (Book, error)
}

type Service struct {
	source       BookSource
	file         string
	municipality string
	logger       *logrus.Logger
	now          func() time.Time
}

// NewService resolves books from source, then file, then the built-in defaults. Both
// source and file are optional.
func NewService(source BookSource, file, municipality string, logger *logrus.Logger) *Service {
	return &Service{
		source:       source,
		file:         file,
		municipality: municipality,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *Service) Book(ctx context.Context) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}
	log := s.logger.WithField("municipality", s.municipality)

	if s.source != nil {
		book, err := s.source.Book(ctx, s.municipality)
		switch {
		case err == nil:
			return book, nil
		case errors.Is(err, ErrNoTariff):
			log.Info("no tariff in database, falling back")
		default:
			log.WithError(err).Warn("load tariff book from database")
		}
	}

	if s.file != "" {
		book, err := LoadBookFile(s.file)
		if err == nil {
			return book, nil
		}
		log.WithError(err).WithField("file", s.file).Warn("load tariff book file")
	}
	return DefaultBook(), nil
}

type QuoteRequest struct {
	DistanceKm float64
	// DynamicMultiplier overrides the schedule, zone and event multipliers when set.
	DynamicMultiplier *float64
	At                *time.Time
	Zone              string
	Event             string
	IncludeTechFee    *bool
}

type Quote struct {
	Result
	Period     string      `json:"period,omitempty"`
	Zone       string      `json:"zone,omitempty"`
	Event      string      `json:"event,omitempty"`
	Price      types.Money `json:"price"`
	BookSource string      `json:"book_source"`
}

func (s *Service) Quote(ctx context.Context, req QuoteRequest) (Quote, error) {
	if err := finiteNonNegative("distance_km", req.DistanceKm); err != nil {
		return Quote{}, err
	}
	book, err := s.Book(ctx)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{BookSource: book.Source}
	opts := DefaultOptions(req.DistanceKm)
	if req.IncludeTechFee != nil {
		opts.IncludeTechFee = *req.IncludeTechFee
	}

	if req.DynamicMultiplier != nil {
		if err := finiteNonNegative("dynamic_multiplier", *req.DynamicMultiplier); err != nil {
			return Quote{}, err
		}
		opts.DynamicMultiplier = *req.DynamicMultiplier
	} else {
		at := s.now()
		if req.At != nil {
			at = *req.At
		}
		schedule, period := book.MultiplierAt(at)
		zone, err := book.ZoneMultiplier(req.Zone)
		if err != nil {
			return Quote{}, err
		}
		event, err := book.EventMultiplier(req.Event)
		if err != nil {
			return Quote{}, err
		}
		q.Period = period
		q.Zone = req.Zone
		q.Event = req.Event
		opts.DynamicMultiplier = schedule * zone * event
	}

	q.Result = CalcPricing(book.Tariff, opts)
	q.Price = types.BRL(q.PassengerPrice)
	return q, nil
}

type SplitRequest struct {
	PassengerPrice float64
	TechFeeFixed   *float64
	TakeRatePct    *float64
	IncludeTechFee *bool
}

// Split fills missing fee and take rate from the current tariff book.
func (s *Service) Split(ctx context.Context, req SplitRequest) (Split, error) {
	if err := finiteNonNegative("passenger_price", req.PassengerPrice); err != nil {
		return Split{}, err
	}
	book, err := s.Book(ctx)
	if err != nil {
		return Split{}, err
	}

	in := SplitInput{
		PassengerPrice: req.PassengerPrice,
		TechFeeFixed:   book.Tariff.TechFeeFixed,
		TakeRatePct:    book.Tariff.TakeRatePct,
		IncludeTechFee: true,
	}
	if req.TechFeeFixed != nil {
		if err := finiteNonNegative("tech_fee_fixed", *req.TechFeeFixed); err != nil {
			return Split{}, err
		}
		in.TechFeeFixed = *req.TechFeeFixed
	}
	if req.TakeRatePct != nil {
		if err := finiteNonNegative("take_rate_pct", *req.TakeRatePct); err != nil {
			return Split{}, err
		}
		if *req.TakeRatePct > 100 {
			return Split{}, fmt.Errorf("%w: take_rate_pct above 100", ErrBadRequest)
		}
		in.TakeRatePct = *req.TakeRatePct
	}
	if req.IncludeTechFee != nil {
		in.IncludeTechFee = *req.IncludeTechFee
	}
	return CalcSplitFromPassengerPrice(in), nil
}

func finiteNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number", ErrBadRequest, field)
	}
	return nil
}
