// README: Map renderer; derives the map view from the current ride request.
package mapview

import (
	"taxifare/internal/modules/ride"
	"taxifare/internal/types"
)

type Renderer struct {
	center types.Point
	zoom   int
}

// NewRenderer falls back to the Manhattan default center and zoom 12 when zoom is not positive.
func NewRenderer(center types.Point, zoom int) *Renderer {
	if zoom <= 0 {
		zoom = DefaultZoom
		center = DefaultCenter
	}
	return &Renderer{center: center, zoom: zoom}
}

// Render is a pure function of req; markers are rebuilt on every call.
func (r *Renderer) Render(req ride.RideRequest) MapView {
	view := MapView{
		Center:  r.center,
		Zoom:    r.zoom,
		Markers: make([]Marker, 0, 2),
	}

	pickup, hasPickup := req.Pickup()
	if hasPickup {
		view.Center = pickup
		view.Markers = append(view.Markers, newMarker(RolePickup, pickup))
	}
	dropoff, hasDropoff := req.Dropoff()
	if hasDropoff {
		view.Markers = append(view.Markers, newMarker(RoleDropoff, dropoff))
	}
	if hasPickup && hasDropoff {
		d := haversineKm(pickup, dropoff)
		view.DistanceKm = &d
	}
	return view
}
