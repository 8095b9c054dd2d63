// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"viability/internal/http/handlers"
	"viability/internal/http/middleware"
	"viability/internal/modules/params"
	"viability/internal/modules/pricing"
	"viability/internal/modules/projection"
)

type ServerDeps struct {
	Projection *projection.Service
	Params     *params.Service
	Pricing    *pricing.Service
	Logger     *logrus.Logger
}

type Server struct {
	projection *projection.Service
	params     *params.Service
	pricing    *pricing.Service
	logger     *logrus.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		projection: deps.Projection,
		params:     deps.Params,
		pricing:    deps.Pricing,
		logger:     deps.Logger,
	}
}

func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(s.logger), middleware.Recovery(s.logger))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	projectionHandler := handlers.NewProjectionHandler(s.projection, s.params)
	api.POST("/projections", projectionHandler.Project)
	api.POST("/projections/compare", projectionHandler.Compare)
	api.GET("/projections/export.csv", projectionHandler.ExportMonthly)
	api.GET("/audits/export.csv", projectionHandler.ExportAudits)

	paramsHandler := handlers.NewParamsHandler(s.params)
	api.GET("/params", paramsHandler.List)
	api.GET("/params/:scenario", paramsHandler.Get)
	api.PUT("/params/:scenario", paramsHandler.Put)
	api.DELETE("/params", paramsHandler.Reset)

	pricingHandler := handlers.NewPricingHandler(s.pricing)
	api.GET("/pricing/tariff", pricingHandler.Tariff)
	api.POST("/pricing/quote", pricingHandler.Quote)
	api.POST("/pricing/split", pricingHandler.Split)

	return r
}
