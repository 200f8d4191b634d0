package ride

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxifare/internal/types"
)

var fixedNow = time.Date(2026, 10, 18, 14, 30, 5, 0, time.UTC)

func TestNewRideRequest_Defaults(t *testing.T) {
	req := NewRideRequest(fixedNow)
	assert.Equal(t, "2026-10-18", req.PickupDate)
	assert.Equal(t, "14:30:05", req.PickupTime)
	assert.Equal(t, 1, req.PassengerCount)
	assert.Nil(t, req.PickupLat)
	assert.Nil(t, req.DropoffLng)
	assert.Equal(t, "2026-10-18 14:30:05", req.PickupDateTime())
}

func TestClampPassengers(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{in: -3, want: 1},
		{in: 0, want: 1},
		{in: 1, want: 1},
		{in: 4, want: 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPassengers(tt.in), "ClampPassengers(%d)", tt.in)
	}
}

func TestParseForm(t *testing.T) {
	values := url.Values{
		FieldDate:           {"2026-01-02"},
		FieldTime:           {"08:15"},
		FieldPickupLat:      {"40.71"},
		FieldPickupLng:      {"-74.00"},
		FieldDropoffLat:     {""},
		FieldDropoffLng:     {"  "},
		FieldPassengerCount: {"3"},
	}
	req, err := ParseForm(values, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-02 08:15:00", req.PickupDateTime())
	require.NotNil(t, req.PickupLat)
	require.NotNil(t, req.PickupLng)
	assert.Equal(t, 40.71, *req.PickupLat)
	assert.Equal(t, -74.00, *req.PickupLng)
	assert.Nil(t, req.DropoffLat)
	assert.Nil(t, req.DropoffLng)
	assert.Equal(t, 3, req.PassengerCount)
}

func TestParseForm_ZeroIsNotAbsent(t *testing.T) {
	req, err := ParseForm(url.Values{FieldPickupLat: {"0"}, FieldPickupLng: {"0"}}, fixedNow)
	require.NoError(t, err)

	p, ok := req.Pickup()
	require.True(t, ok)
	assert.Equal(t, types.Point{Lat: 0, Lng: 0}, p)

	_, ok = req.Dropoff()
	assert.False(t, ok)
}

func TestParseForm_PassengerCountClamped(t *testing.T) {
	req, err := ParseForm(url.Values{FieldPassengerCount: {"0"}}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 1, req.PassengerCount)
}

func TestParseForm_InvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{name: "latitude not a number", values: url.Values{FieldPickupLat: {"north"}}},
		{name: "longitude NaN", values: url.Values{FieldDropoffLng: {"NaN"}}},
		{name: "passenger count fraction", values: url.Values{FieldPassengerCount: {"1.5"}}},
		{name: "bad date", values: url.Values{FieldDate: {"18/10/2026"}}},
		{name: "bad time", values: url.Values{FieldTime: {"noon"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseForm(tt.values, fixedNow)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidField))
		})
	}
}

func TestForm_SetAndSnapshot(t *testing.T) {
	f := NewForm(fixedNow)

	require.NoError(t, f.Set(FieldDropoffLat, "40.76"))
	require.NoError(t, f.Set(FieldDropoffLng, "-73.98"))
	require.NoError(t, f.Set(FieldPassengerCount, "-2"))

	snap := f.Snapshot()
	d, ok := snap.Dropoff()
	require.True(t, ok)
	assert.Equal(t, types.Point{Lat: 40.76, Lng: -73.98}, d)
	assert.Equal(t, 1, snap.PassengerCount)

	require.NoError(t, f.Set(FieldDropoffLat, ""))
	_, ok = f.Snapshot().Dropoff()
	assert.False(t, ok)
}

func TestForm_RejectedEditKeepsPreviousValue(t *testing.T) {
	f := NewForm(fixedNow)
	require.NoError(t, f.Set(FieldPickupLat, "40.5"))

	err := f.Set(FieldPickupLat, "abc")
	require.ErrorIs(t, err, ErrInvalidField)
	require.NotNil(t, f.Snapshot().PickupLat)
	assert.Equal(t, 40.5, *f.Snapshot().PickupLat)

	assert.ErrorIs(t, f.Set("colour", "red"), ErrInvalidField)
}

func TestParseForm_EmptyPassengerCountKeepsDefault(t *testing.T) {
	req, err := ParseForm(url.Values{FieldPassengerCount: {""}, FieldDate: {""}}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 1, req.PassengerCount)
	assert.Equal(t, "2026-10-18", req.PickupDate)
}
