package rates

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cache *Cache
}

func NewHandler(cache *Cache) *Handler {
	return &Handler{cache: cache}
}

// --------------------------------------------------
// Public: current rates + cache state (advisory)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rates": h.cache.CurrentRates(),
		"state": h.cache.State(),
	})
}

// --------------------------------------------------
// Admin: forced manual refresh
// --------------------------------------------------
func (h *Handler) Refresh(c *gin.Context) {
	h.cache.Refresh(true)

	state := h.cache.State()
	if state == StateBlocked {
		// Credential problem needs out-of-band action by an operator.
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"state": state,
			"error": "rate refresh blocked: check the API credential",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rates": h.cache.CurrentRates(),
		"state": state,
	})
}

// --------------------------------------------------
// Admin: explicit partial rate update
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req PartialRates
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated := h.cache.UpdateRates(req)
	c.JSON(http.StatusOK, gin.H{
		"rates": updated,
		"state": h.cache.State(),
	})
}
