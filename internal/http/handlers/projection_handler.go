// README: Projection handlers for single runs, scenario comparison and CSV exports.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"viability/internal/export"
	"viability/internal/modules/audit"
	"viability/internal/modules/params"
	"viability/internal/modules/projection"
)

type ProjectionHandler struct {
	projection *projection.Service
	params     *params.Service
}

func NewProjectionHandler(projectionSvc *projection.Service, paramsSvc *params.Service) *ProjectionHandler {
	return &ProjectionHandler{projection: projectionSvc, params: paramsSvc}
}

type report struct {
	Variant  projection.Variant          `json:"variant"`
	Scenario projection.Scenario         `json:"scenario"`
	Params   projection.SimulationParams `json:"params"`
	Months   []projection.MonthlyResult  `json:"months"`
	Audits   []audit.YearAudit           `json:"audits"`
	Summary  audit.Summary               `json:"summary"`
}

func newReport(v projection.Variant, sc projection.Scenario, p projection.SimulationParams, rows []projection.MonthlyResult) report {
	return report{
		Variant:  v,
		Scenario: sc,
		Params:   p,
		Months:   rows,
		Audits:   audit.Years(rows),
		Summary:  audit.Summarize(rows, p.InitialInvestment),
	}
}

type projectReq struct {
	Variant  string     `json:"variant"`
	Scenario string     `json:"scenario" validate:"required"`
	Params   *paramsDTO `json:"params"`
}

func (h *ProjectionHandler) Project(c *gin.Context) {
	var req projectReq
	if !bindJSON(c, &req) {
		return
	}
	variant, sc, err := parseSelection(req.Variant, req.Scenario)
	if err != nil {
		writeProjectionError(c, err)
		return
	}

	ctx := c.Request.Context()
	var p projection.SimulationParams
	if req.Params != nil {
		p = req.Params.toParams()
	} else if p, err = h.params.Load(ctx, sc); err != nil {
		writeProjectionError(c, err)
		return
	}

	rows, err := h.projection.Project(ctx, projection.ProjectCommand{Variant: variant, Scenario: sc, Params: p})
	if err != nil {
		writeProjectionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, newReport(variant, sc, p, rows))
}

type compareReq struct {
	Variant string `json:"variant"`
}

// Compare projects all three scenarios from their cached (or default) params.
func (h *ProjectionHandler) Compare(c *gin.Context) {
	var req compareReq
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	variant, err := projection.ParseVariant(req.Variant)
	if err != nil {
		writeProjectionError(c, err)
		return
	}

	ctx := c.Request.Context()
	all, err := h.params.All(ctx)
	if err != nil {
		writeProjectionError(c, err)
		return
	}
	results, err := h.projection.Compare(ctx, variant, all)
	if err != nil {
		writeProjectionError(c, err)
		return
	}

	out := make(map[projection.Scenario]report, len(results))
	for sc, rows := range results {
		out[sc] = newReport(variant, sc, all[sc], rows)
	}
	writeJSON(c, http.StatusOK, gin.H{"variant": variant, "scenarios": out})
}

func (h *ProjectionHandler) ExportMonthly(c *gin.Context) {
	r, ok := h.projectFromQuery(c)
	if !ok {
		return
	}
	attachCSV(c, fmt.Sprintf("projecao_%s_%s.csv", r.Scenario, r.Variant))
	if err := export.WriteMonthlyCSV(c.Writer, r.Months); err != nil {
		_ = c.Error(err)
	}
}

func (h *ProjectionHandler) ExportAudits(c *gin.Context) {
	r, ok := h.projectFromQuery(c)
	if !ok {
		return
	}
	attachCSV(c, fmt.Sprintf("auditoria_%s_%s.csv", r.Scenario, r.Variant))
	if err := export.WriteAuditCSV(c.Writer, r.Audits); err != nil {
		_ = c.Error(err)
	}
}

// projectFromQuery runs the cached params of ?scenario= (default realistic) with ?variant=.
func (h *ProjectionHandler) projectFromQuery(c *gin.Context) (report, bool) {
	variant, sc, err := parseSelection(c.Query("variant"), c.DefaultQuery("scenario", string(projection.ScenarioRealistic)))
	if err != nil {
		writeProjectionError(c, err)
		return report{}, false
	}
	ctx := c.Request.Context()
	p, err := h.params.Load(ctx, sc)
	if err != nil {
		writeProjectionError(c, err)
		return report{}, false
	}
	rows, err := h.projection.Project(ctx, projection.ProjectCommand{Variant: variant, Scenario: sc, Params: p})
	if err != nil {
		writeProjectionError(c, err)
		return report{}, false
	}
	return newReport(variant, sc, p, rows), true
}

func parseSelection(variant, scenario string) (projection.Variant, projection.Scenario, error) {
	v, err := projection.ParseVariant(variant)
	if err != nil {
		return "", "", err
	}
	sc, err := projection.ParseScenario(scenario)
	if err != nil {
		return "", "", err
	}
	return v, sc, nil
}

func attachCSV(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
}
