// README: Input collector; parses and holds free-form edits of the ride form.
package ride

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ParseForm builds a snapshot from submitted form values. Missing date or time
// fall back to now; empty coordinates stay unset.
func ParseForm(values url.Values, now time.Time) (RideRequest, error) {
	req := NewRideRequest(now)
	for _, field := range []string{
		FieldDate, FieldTime,
		FieldPickupLat, FieldPickupLng,
		FieldDropoffLat, FieldDropoffLng,
		FieldPassengerCount,
	} {
		v, ok := values[field]
		if !ok || len(v) == 0 {
			continue
		}
		if err := apply(&req, field, v[0]); err != nil {
			return RideRequest{}, err
		}
	}
	return req, nil
}

// Form keeps the latest edited values of one page session.
type Form struct {
	mu  sync.Mutex
	req RideRequest
}

func NewForm(now time.Time) *Form {
	return &Form{req: NewRideRequest(now)}
}

// Set applies a single field edit. Coordinates may be cleared with an empty value.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.req
	if err := apply(&next, field, value); err != nil {
		return err
	}
	f.req = next
	return nil
}

func (f *Form) Snapshot() RideRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.req
}

func apply(req *RideRequest, field, raw string) error {
	value := strings.TrimSpace(raw)
	switch field {
	case FieldDate:
		if value == "" {
			return nil
		}
		if _, err := time.Parse(DateLayout, value); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidField, field)
		}
		req.PickupDate = value
	case FieldTime:
		if value == "" {
			return nil
		}
		t, err := parseClock(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidField, field)
		}
		req.PickupTime = t
	case FieldPickupLat:
		return setCoord(&req.PickupLat, field, value)
	case FieldPickupLng:
		return setCoord(&req.PickupLng, field, value)
	case FieldDropoffLat:
		return setCoord(&req.DropoffLat, field, value)
	case FieldDropoffLng:
		return setCoord(&req.DropoffLng, field, value)
	case FieldPassengerCount:
		if value == "" {
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidField, field)
		}
		req.PassengerCount = ClampPassengers(n)
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidField, field)
	}
	return nil
}

func setCoord(dst **float64, field, value string) error {
	if value == "" {
		*dst = nil
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %s", ErrInvalidField, field)
	}
	*dst = &f
	return nil
}

// parseClock accepts HH:MM (what browsers send for <input type=time>) and HH:MM:SS.
func parseClock(value string) (string, error) {
	for _, layout := range []string{TimeLayout, "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognised time %q", value)
}
