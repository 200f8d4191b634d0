// README: HTTP client for the remote fare prediction endpoint.
package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"taxifare/internal/modules/ride"
)

const (
	DefaultEndpoint = "https://taxifare.lewagon.ai/predict"
	DefaultTimeout  = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// Client issues one GET per prediction. No retries, no caching.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{endpoint: endpoint, http: &http.Client{Timeout: timeout}}
}

// Query encodes the ride request as the endpoint's query parameters. Unset
// coordinates are left out.
func Query(req ride.RideRequest) url.Values {
	q := url.Values{}
	q.Set("pickup_datetime", req.PickupDateTime())
	setFloat(q, "pickup_longitude", req.PickupLng)
	setFloat(q, "pickup_latitude", req.PickupLat)
	setFloat(q, "dropoff_longitude", req.DropoffLng)
	setFloat(q, "dropoff_latitude", req.DropoffLat)
	q.Set("passenger_count", strconv.Itoa(ride.ClampPassengers(req.PassengerCount)))
	return q
}

func setFloat(q url.Values, key string, v *float64) {
	if v == nil {
		return
	}
	q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
}

// Predict never returns a Go error; every failure is folded into the result.
func (c *Client) Predict(ctx context.Context, req ride.RideRequest) FarePrediction {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return failed(KindTransport, 0, fmt.Sprintf("bad endpoint: %v", err))
	}
	u.RawQuery = Query(req).Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return failed(KindTransport, 0, err.Error())
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return failed(KindTransport, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return failed(KindHTTPStatus, resp.StatusCode, resp.Status)
	}
	return decodeFare(io.LimitReader(resp.Body, maxBodyBytes))
}

func decodeFare(r io.Reader) FarePrediction {
	var body map[string]any
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return failed(KindTransport, http.StatusOK, err.Error())
		}
		return failed(KindDecode, http.StatusOK, err.Error())
	}
	fare, ok := body["fare"].(float64)
	if !ok {
		return failed(KindMissingFare, http.StatusOK, "")
	}
	return fareOf(fare)
}
