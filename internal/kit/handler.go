package kit

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Valentin1965/VoltStore/internal/currency"
	"github.com/Valentin1965/VoltStore/internal/rates"
)

// KitSaver materializes an accepted kit as a catalog product.
type KitSaver interface {
	CreateKitProduct(ctx context.Context, title, description string, totalEUR float64) (string, error)
}

type Handler struct {
	service *Service
	rates   *rates.Cache
	saver   KitSaver
}

func NewHandler(service *Service, ratesCache *rates.Cache, saver KitSaver) *Handler {
	return &Handler{service: service, rates: ratesCache, saver: saver}
}

// --------------------------------------------------
// Questionnaire -> recommended kit
// --------------------------------------------------
func (h *Handler) Recommend(c *gin.Context) {
	var cfg Configuration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	loc := currency.ParseLocale(c.Query("locale"))

	// The request context cancels the outbound AI call when the caller
	// abandons the request, so a stale response is never applied.
	rec, err := h.service.Recommend(c.Request.Context(), cfg, loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":         rec.Title,
		"description":   rec.Description,
		"components":    rec.Components,
		"total_eur":     rec.TotalEUR,
		"total_display": currency.Format(rec.TotalEUR, loc, h.rates.CurrentRates()),
		"currency":      currency.Code(loc),
		"source":        rec.Source,
	})
}

// --------------------------------------------------
// Accept kit -> catalog product in category Kits
// --------------------------------------------------
func (h *Handler) Accept(c *gin.Context) {
	var req RecommendationResult
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if len(req.Components) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kit has no components"})
		return
	}
	for _, comp := range req.Components {
		if comp.Quantity < 1 || comp.PriceEUR < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kit component"})
			return
		}
	}

	id, err := h.saver.CreateKitProduct(
		c.Request.Context(),
		req.Title,
		req.Description,
		req.TotalEUR(),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        id,
		"total_eur": req.TotalEUR(),
	})
}
