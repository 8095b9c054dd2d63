// README: CSV exports for Brazilian-locale spreadsheets (BOM, semicolons, decimal commas).
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"viability/internal/modules/audit"
	"viability/internal/modules/projection"
	"viability/internal/types"
)

const bom = "\ufeff"

var monthlyHeader = []string{"Mes", "Ano", "Motoristas", "Usuarios", "Corridas", "GMV", "Receita", "Lucro", "Acumulado"}

var auditHeader = []string{
	"Ano", "GMV", "Receita", "Cashback", "Lucro", "EBITDA", "Corridas",
	"Lucro_Medio", "Corridas_Motorista_Dia", "Crescimento_Pct",
	"Melhor_Mes", "Pior_Mes", "Usuarios_Fim", "Motoristas_Fim", "Custos_Operacionais",
}

func newWriter(w io.Writer) (*csv.Writer, error) {
	if _, err := io.WriteString(w, bom); err != nil {
		return nil, err
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	cw.UseCRLF = true
	return cw, nil
}

func money(v float64) string { return types.DecimalComma(v, 2) }

func WriteMonthlyCSV(w io.Writer, rows []projection.MonthlyResult) error {
	cw, err := newWriter(w)
	if err != nil {
		return err
	}
	if err := cw.Write(monthlyHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Drivers),
			strconv.Itoa(r.Users),
			strconv.Itoa(r.Rides),
			money(r.GrossRevenue),
			money(r.TakeRateRevenue),
			money(r.NetProfit),
			money(r.AccumulatedProfit),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteAuditCSV(w io.Writer, audits []audit.YearAudit) error {
	cw, err := newWriter(w)
	if err != nil {
		return err
	}
	if err := cw.Write(auditHeader); err != nil {
		return err
	}
	for _, a := range audits {
		rec := []string{
			strconv.Itoa(a.Year),
			money(a.TotalGMV),
			money(a.TotalRevenue),
			money(a.TotalCashback),
			money(a.TotalNetProfit),
			money(a.TotalEBITDA),
			strconv.Itoa(a.TotalRides),
			money(a.AvgMonthlyProfit),
			types.DecimalComma(a.AvgRidesPerDriverDay, 1),
			types.DecimalComma(a.GrowthFromPrev, 1),
			a.BestMonth,
			a.WorstMonth,
			strconv.Itoa(a.EndUsers),
			strconv.Itoa(a.EndDrivers),
			money(a.TotalOpCosts),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
