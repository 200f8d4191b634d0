// README: Map view descriptors handed to the browser map widget.
package mapview

import "taxifare/internal/types"

type Role string

const (
	RolePickup  Role = "pickup"
	RoleDropoff Role = "dropoff"
)

const DefaultZoom = 12

// DefaultCenter is used until both pickup coordinates are entered.
var DefaultCenter = types.Point{Lat: 40.795020, Lng: -73.958588}

type Marker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Role  Role    `json:"role"`
	Color string  `json:"color"`
	Icon  string  `json:"icon"`
	Cell  string  `json:"cell"`
}

type MapView struct {
	Center     types.Point  `json:"center"`
	Zoom       int          `json:"zoom"`
	Markers    []Marker     `json:"markers"`
	DistanceKm *float64     `json:"distance_km,omitempty"`
	LastClick  *types.Point `json:"last_click,omitempty"`
}

// WithClick attaches the last map click. The view itself is not otherwise changed.
func (v MapView) WithClick(p *types.Point) MapView {
	if p != nil {
		click := *p
		v.LastClick = &click
	}
	return v
}

type markerStyle struct {
	color string
	icon  string
}

var styles = map[Role]markerStyle{
	RolePickup:  {color: "blue", icon: "person-arrow-up-from-line"},
	RoleDropoff: {color: "green", icon: "person-arrow-down-to-line"},
}

func newMarker(role Role, p types.Point) Marker {
	s := styles[role]
	return Marker{
		Lat:   p.Lat,
		Lng:   p.Lng,
		Role:  role,
		Color: s.color,
		Icon:  s.icon,
		Cell:  cellOf(p),
	}
}
