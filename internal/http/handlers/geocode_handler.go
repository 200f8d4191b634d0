// README: Address lookup handler (optional, needs a Google Maps key).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxifare/internal/maps"
)

const lookupTimeout = 5 * time.Second

type GeocodeHandler struct {
	geocoder *maps.GeocodeService
}

func NewGeocodeHandler(svc *maps.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{geocoder: svc}
}

// Lookup handles GET /api/geocode?address=.
func (h *GeocodeHandler) Lookup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
	defer cancel()

	place, err := h.geocoder.Lookup(ctx, c.Query("address"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, place)
}
