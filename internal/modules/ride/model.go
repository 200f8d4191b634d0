// README: Ride request snapshot collected from the fare form.
package ride

import (
	"errors"
	"time"

	"taxifare/internal/types"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"

	MinPassengers = 1
)

var ErrInvalidField = errors.New("invalid field")

// Form field names, shared by the page, the form parser and the outbound query.
const (
	FieldDate           = "date"
	FieldTime           = "time"
	FieldPickupLat      = "pickup_latitude"
	FieldPickupLng      = "pickup_longitude"
	FieldDropoffLat     = "dropoff_latitude"
	FieldDropoffLng     = "dropoff_longitude"
	FieldPassengerCount = "passenger_count"
)

// RideRequest is the current state of the form. A nil coordinate has not been
// entered yet, which is not the same as 0.
type RideRequest struct {
	PickupDate     string   `json:"pickup_date"`
	PickupTime     string   `json:"pickup_time"`
	PickupLat      *float64 `json:"pickup_latitude,omitempty"`
	PickupLng      *float64 `json:"pickup_longitude,omitempty"`
	DropoffLat     *float64 `json:"dropoff_latitude,omitempty"`
	DropoffLng     *float64 `json:"dropoff_longitude,omitempty"`
	PassengerCount int      `json:"passenger_count"`
}

func NewRideRequest(now time.Time) RideRequest {
	return RideRequest{
		PickupDate:     now.Format(DateLayout),
		PickupTime:     now.Format(TimeLayout),
		PassengerCount: MinPassengers,
	}
}

// PickupDateTime joins date and time the way the prediction endpoint expects.
func (r RideRequest) PickupDateTime() string {
	return r.PickupDate + " " + r.PickupTime
}

func (r RideRequest) Pickup() (types.Point, bool) {
	return point(r.PickupLat, r.PickupLng)
}

func (r RideRequest) Dropoff() (types.Point, bool) {
	return point(r.DropoffLat, r.DropoffLng)
}

func point(lat, lng *float64) (types.Point, bool) {
	if lat == nil || lng == nil {
		return types.Point{}, false
	}
	return types.Point{Lat: *lat, Lng: *lng}, true
}

// ClampPassengers enforces the form's minimum of one passenger.
func ClampPassengers(n int) int {
	if n < MinPassengers {
		return MinPassengers
	}
	return n
}
