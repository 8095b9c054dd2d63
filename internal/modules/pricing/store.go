// README: Tariff book store backed by PostgreSQL.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS pricing_config (
	id BIGSERIAL PRIMARY KEY,
	municipality TEXT NOT NULL,
	base_fare DOUBLE PRECISION NOT NULL,
	per_km DOUBLE PRECISION NOT NULL,
	included_km DOUBLE PRECISION NOT NULL DEFAULT 0,
	min_fare DOUBLE PRECISION NOT NULL,
	tech_fee_fixed DOUBLE PRECISION NOT NULL,
	take_rate_pct DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS dynamic_schedules (
	period TEXT PRIMARY KEY,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	multiplier DOUBLE PRECISION NOT NULL
);
CREATE TABLE IF NOT EXISTS heat_zones (
	zone TEXT PRIMARY KEY,
	multiplier DOUBLE PRECISION NOT NULL
);`

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schema)
	return err
}

// Tariff returns the most recent tariff row of a municipality.
func (s *Store) Tariff(ctx context.Context, municipality string) (TariffConfig, error) {
	row := s.db.QueryRow(ctx, `
		SELECT base_fare, per_km, included_km, min_fare, tech_fee_fixed, take_rate_pct
		FROM pricing_config
		WHERE municipality = $1
		ORDER BY id DESC
		LIMIT 1`, municipality,
	)

	var t TariffConfig
	err := row.Scan(&t.BaseFare, &t.PerKm, &t.IncludedKm, &t.MinFare, &t.TechFeeFixed, &t.TakeRatePct)
	if errors.Is(err, pgx.ErrNoRows) {
		return TariffConfig{}, ErrNoTariff
	}
	if err != nil {
		return TariffConfig{}, err
	}
	return t, nil
}

func (s *Store) SaveTariff(ctx context.Context, municipality string, t TariffConfig) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO pricing_config (
			municipality, base_fare, per_km, included_km, min_fare, tech_fee_fixed, take_rate_pct
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		municipality, t.BaseFare, t.PerKm, t.IncludedKm, t.MinFare, t.TechFeeFixed, t.TakeRatePct,
	)
	return err
}

func (s *Store) Schedules(ctx context.Context) ([]Schedule, error) {
	rows, err := s.db.Query(ctx, `
		SELECT period, start_time, end_time, multiplier
		FROM dynamic_schedules
		ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Schedule, error) {
		var sc Schedule
		err := row.Scan(&sc.Period, &sc.Start, &sc.End, &sc.Multiplier)
		return sc, err
	})
}

func (s *Store) HeatZones(ctx context.Context) ([]HeatZone, error) {
	rows, err := s.db.Query(ctx, `
		SELECT zone, multiplier
		FROM heat_zones
		ORDER BY multiplier DESC, zone`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (HeatZone, error) {
		var z HeatZone
		err := row.Scan(&z.Zone, &z.Multiplier)
		return z, err
	})
}

// Book assembles a tariff book. The tariff row is required; empty schedule or zone
// tables fall back to the defaults.
func (s *Store) Book(ctx context.Context, municipality string) (Book, error) {
	tariff, err := s.Tariff(ctx, municipality)
	if err != nil {
		return Book{}, err
	}
	schedules, err := s.Schedules(ctx)
	if err != nil {
		return Book{}, fmt.Errorf("load schedules: %w", err)
	}
	zones, err := s.HeatZones(ctx)
	if err != nil {
		return Book{}, fmt.Errorf("load heat zones: %w", err)
	}

	book := DefaultBook()
	book.Tariff = tariff
	if len(schedules) > 0 {
		book.Schedules = schedules
	}
	if len(zones) > 0 {
		book.HeatZones = zones
	}
	if err := book.Validate(); err != nil {
		return Book{}, fmt.Errorf("municipality %q: %w", municipality, err)
	}
	book.Source = SourcePostgres
	return book, nil
}
