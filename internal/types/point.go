// README: Geographic point shared by the ride form and the map view.
package types

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
