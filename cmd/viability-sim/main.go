// README: Offline runner; projects every scenario with default params, prints yearly audits and writes CSVs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"viability/internal/config"
	"viability/internal/export"
	"viability/internal/infra"
	"viability/internal/modules/audit"
	"viability/internal/modules/params"
	"viability/internal/modules/projection"
	"viability/internal/types"
)

type Config struct {
	Variant    string
	OutDir     string
	Population float64
	SAMPct     float64
	SOMPct     float64
	StartYear  int
	Investment float64
	Timeout    time.Duration
}

func main() {
	base, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:], base)
	if err != nil {
		os.Exit(2)
	}
	logger := infra.NewLogger("warn", os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	variant, err := projection.ParseVariant(cfg.Variant)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	all := make(map[projection.Scenario]projection.SimulationParams, 3)
	for _, sc := range projection.Scenarios() {
		p, err := params.Defaults(sc)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if cfg.Investment >= 0 {
			p.InitialInvestment = cfg.Investment
		}
		all[sc] = p
	}

	market := projection.MarketStats{Population: cfg.Population, SAMPct: cfg.SAMPct, SOMPct: cfg.SOMPct}
	svc := projection.NewService(market, cfg.StartYear, logger)
	results, err := svc.Compare(ctx, variant, all)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("market=%.0f users (SOM) variant=%s\n", market.SOM(), variant)
	for _, sc := range projection.Scenarios() {
		rows := results[sc]
		years := audit.Years(rows)
		printScenario(sc, years, audit.Summarize(rows, all[sc].InitialInvestment))

		if cfg.OutDir == "" {
			continue
		}
		if err := writeCSVs(cfg.OutDir, sc, variant, rows, years); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func printScenario(sc projection.Scenario, years []audit.YearAudit, sum audit.Summary) {
	fmt.Printf("\n== %s ==\n", sc)
	for _, y := range years {
		fmt.Printf("%d  GMV=%s  lucro=%s  corridas=%d  usuarios=%d  motoristas=%d  crescimento=%s%%\n",
			y.Year,
			types.BRL(y.TotalGMV).String(),
			types.BRL(y.TotalNetProfit).String(),
			y.TotalRides,
			y.EndUsers,
			y.EndDrivers,
			types.DecimalComma(y.GrowthFromPrev, 1),
		)
	}
	fmt.Printf("ROI=%s%%", types.DecimalComma(sum.ROIPct, 1))
	if sum.PaybackMonths != nil {
		fmt.Printf("  payback=%s meses", types.DecimalComma(*sum.PaybackMonths, 1))
	}
	if sum.BreakEvenMonth != nil {
		fmt.Printf("  break-even=mes %d", *sum.BreakEvenMonth)
	}
	fmt.Println()
}

func writeCSVs(dir string, sc projection.Scenario, v projection.Variant, rows []projection.MonthlyResult, years []audit.YearAudit) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	monthly := filepath.Join(dir, fmt.Sprintf("projecao_%s_%s.csv", sc, v))
	if err := writeFile(monthly, func(w io.Writer) error { return export.WriteMonthlyCSV(w, rows) }); err != nil {
		return err
	}
	audits := filepath.Join(dir, fmt.Sprintf("auditoria_%s_%s.csv", sc, v))
	return writeFile(audits, func(w io.Writer) error { return export.WriteAuditCSV(w, years) })
}

// writeFile creates path and reports a failed Close, which is where buffered data is lost.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}

// loadConfig parses args on fs. Market and start-year flags default to base, so the
// VIABILITY_* environment applies unless a flag overrides it.
func loadConfig(fs *flag.FlagSet, args []string, base config.Config) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Variant, "variant", envOrDefault("VIABILITY_VARIANT", "flat_cap"), "Projection variant (flat_cap or logistic)")
	fs.StringVar(&cfg.OutDir, "out", envOrDefault("VIABILITY_OUT_DIR", ""), "Directory for CSV exports (empty skips)")
	fs.Float64Var(&cfg.Population, "population", base.Market.Population, "Municipality population")
	fs.Float64Var(&cfg.SAMPct, "sam", base.Market.SAMPct, "Serviceable market share of the population, percent")
	fs.Float64Var(&cfg.SOMPct, "som", base.Market.SOMPct, "Obtainable share of the serviceable market, percent")
	fs.IntVar(&cfg.StartYear, "start-year", base.Projection.StartYear, "Calendar year of month 1")
	fs.Float64Var(&cfg.Investment, "investment", -1, "Initial investment override (negative keeps the scenario default)")
	fs.DurationVar(&cfg.Timeout, "timeout", 30*time.Second, "Total timeout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Variant = strings.TrimSpace(cfg.Variant)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
