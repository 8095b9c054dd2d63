// README: Pricing handlers for the tariff book, fare quotes and price splits.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"viability/internal/modules/pricing"
)

type PricingHandler struct {
	pricing *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{pricing: svc}
}

func (h *PricingHandler) Tariff(c *gin.Context) {
	book, err := h.pricing.Book(c.Request.Context())
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, book)
}

type quoteReq struct {
	DistanceKm        *float64   `json:"distance_km" validate:"required"`
	DynamicMultiplier *float64   `json:"dynamic_multiplier"`
	At                *time.Time `json:"at"`
	Zone              string     `json:"zone"`
	Event             string     `json:"event"`
	IncludeTechFee    *bool      `json:"include_tech_fee"`
}

func (h *PricingHandler) Quote(c *gin.Context) {
	var req quoteReq
	if !bindJSON(c, &req) {
		return
	}
	q, err := h.pricing.Quote(c.Request.Context(), pricing.QuoteRequest{
		DistanceKm:        *req.DistanceKm,
		DynamicMultiplier: req.DynamicMultiplier,
		At:                req.At,
		Zone:              req.Zone,
		Event:             req.Event,
		IncludeTechFee:    req.IncludeTechFee,
	})
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, q)
}

type splitReq struct {
	PassengerPrice *float64 `json:"passenger_price" validate:"required"`
	TechFeeFixed   *float64 `json:"tech_fee_fixed"`
	TakeRatePct    *float64 `json:"take_rate_pct"`
	IncludeTechFee *bool    `json:"include_tech_fee"`
}

func (h *PricingHandler) Split(c *gin.Context) {
	var req splitReq
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.pricing.Split(c.Request.Context(), pricing.SplitRequest{
		PassengerPrice: *req.PassengerPrice,
		TechFeeFixed:   req.TechFeeFixed,
		TakeRatePct:    req.TakeRatePct,
		IncludeTechFee: req.IncludeTechFee,
	})
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, s)
}
