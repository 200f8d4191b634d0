// README: Page handler; serves the form with the initial map view.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxifare/internal/modules/mapview"
	"taxifare/internal/modules/ride"
)

type PageHandler struct {
	renderer       *mapview.Renderer
	lookupURL      string
	geocodeEnabled bool
	now            func() time.Time
}

func NewPageHandler(renderer *mapview.Renderer, lookupURL string, geocodeEnabled bool) *PageHandler {
	return &PageHandler{
		renderer:       renderer,
		lookupURL:      lookupURL,
		geocodeEnabled: geocodeEnabled,
		now:            time.Now,
	}
}

type formFields struct {
	Date, Time             string
	PickupLat, PickupLng   string
	DropoffLat, DropoffLng string
	PassengerCount         string
}

var fields = formFields{
	Date:           ride.FieldDate,
	Time:           ride.FieldTime,
	PickupLat:      ride.FieldPickupLat,
	PickupLng:      ride.FieldPickupLng,
	DropoffLat:     ride.FieldDropoffLat,
	DropoffLng:     ride.FieldDropoffLng,
	PassengerCount: ride.FieldPassengerCount,
}

// Index handles GET /.
func (h *PageHandler) Index(c *gin.Context) {
	req := ride.NewRideRequest(h.now())
	view, err := json.Marshal(h.renderer.Render(req))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Ride":           req,
		"View":           string(view),
		"Fields":         fields,
		"LookupURL":      h.lookupURL,
		"GeocodeEnabled": h.geocodeEnabled,
	})
}
