// README: Params handlers for the last-used parameter cache.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viability/internal/modules/params"
	"viability/internal/modules/projection"
)

type ParamsHandler struct {
	params *params.Service
}

func NewParamsHandler(svc *params.Service) *ParamsHandler {
	return &ParamsHandler{params: svc}
}

func (h *ParamsHandler) List(c *gin.Context) {
	all, err := h.params.All(c.Request.Context())
	if err != nil {
		writeProjectionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, all)
}

func (h *ParamsHandler) Get(c *gin.Context) {
	sc, err := projection.ParseScenario(c.Param("scenario"))
	if err != nil {
		writeProjectionError(c, err)
		return
	}
	p, err := h.params.Load(c.Request.Context(), sc)
	if err != nil {
		writeProjectionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

func (h *ParamsHandler) Put(c *gin.Context) {
	sc, err := projection.ParseScenario(c.Param("scenario"))
	if err != nil {
		writeProjectionError(c, err)
		return
	}
	var req paramsDTO
	if !bindJSON(c, &req) {
		return
	}
	p := req.toParams()
	if err := h.params.Save(c.Request.Context(), sc, p); err != nil {
		writeProjectionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

func (h *ParamsHandler) Reset(c *gin.Context) {
	if err := h.params.Reset(c.Request.Context()); err != nil {
		writeProjectionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
