// README: Map handler; re-renders the map view on every form edit or map click.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxifare/internal/modules/mapview"
)

type MapHandler struct {
	renderer *mapview.Renderer
	now      func() time.Time
}

func NewMapHandler(renderer *mapview.Renderer) *MapHandler {
	return &MapHandler{renderer: renderer, now: time.Now}
}

// Render handles POST /api/map.
func (h *MapHandler) Render(c *gin.Context) {
	req, err := bindRide(c, h.now())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.renderer.Render(req).WithClick(clickPoint(c)))
}
