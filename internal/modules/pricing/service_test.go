package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxifare/internal/modules/ride"
)

func f64(v float64) *float64 { return &v }

func sampleRequest() ride.RideRequest {
	return ride.RideRequest{
		PickupDate:     "2026-10-18",
		PickupTime:     "14:30:00",
		PickupLat:      f64(40.7614327),
		PickupLng:      f64(-73.9798156),
		DropoffLat:     f64(40.6513111),
		DropoffLng:     f64(-73.8803331),
		PassengerCount: 2,
	}
}

func newEndpoint(t *testing.T, status int, body string, seen *url.Values) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if seen != nil {
			*seen = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/predict", time.Second)
}

func TestQuery_AllFields(t *testing.T) {
	q := Query(sampleRequest())
	assert.Equal(t, "2026-10-18 14:30:00", q.Get("pickup_datetime"))
	assert.Equal(t, "-73.9798156", q.Get("pickup_longitude"))
	assert.Equal(t, "40.7614327", q.Get("pickup_latitude"))
	assert.Equal(t, "-73.8803331", q.Get("dropoff_longitude"))
	assert.Equal(t, "40.6513111", q.Get("dropoff_latitude"))
	assert.Equal(t, "2", q.Get("passenger_count"))
}

func TestQuery_OmitsUnsetCoordinates(t *testing.T) {
	req := sampleRequest()
	req.DropoffLat = nil
	req.PickupLng = nil
	req.PassengerCount = 0

	q := Query(req)
	assert.NotContains(t, q, "dropoff_latitude")
	assert.NotContains(t, q, "pickup_longitude")
	assert.Contains(t, q, "pickup_latitude")
	assert.Equal(t, "1", q.Get("passenger_count"))
}

func TestClient_Predict(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantFare    *float64
		wantKind    ErrorKind
		wantMessage string
	}{
		{
			name:        "fare present",
			status:      http.StatusOK,
			body:        `{"fare": 23.5}`,
			wantFare:    f64(23.5),
			wantMessage: "Predicted Fare: $23.50",
		},
		{
			name:        "fare beyond int64 cents",
			status:      http.StatusOK,
			body:        `{"fare": 1e17}`,
			wantFare:    f64(1e17),
			wantMessage: "Predicted Fare: $100000000000000000.00",
		},
		{
			name:        "fare missing",
			status:      http.StatusOK,
			body:        `{"prediction": 23.5}`,
			wantKind:    KindMissingFare,
			wantMessage: "Error: Prediction key not found in API response",
		},
		{
			name:        "fare not numeric",
			status:      http.StatusOK,
			body:        `{"fare": "cheap"}`,
			wantKind:    KindMissingFare,
			wantMessage: "Error: Prediction key not found in API response",
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"detail": "Not Found"}`,
			wantKind:    KindHTTPStatus,
			wantMessage: "Error: Failed to retrieve prediction. Status code: 404",
		},
		{
			name:        "unprocessable",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail": []}`,
			wantKind:    KindHTTPStatus,
			wantMessage: "Error: Failed to retrieve prediction. Status code: 422",
		},
		{
			name:        "malformed json",
			status:      http.StatusOK,
			body:        `{"fare": `,
			wantKind:    KindDecode,
			wantMessage: "Error: Invalid response from the prediction service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newEndpoint(t, tt.status, tt.body, nil)
			got := c.Predict(context.Background(), sampleRequest())

			if tt.wantFare != nil {
				require.True(t, got.OK())
				assert.Nil(t, got.Err)
				assert.Equal(t, *tt.wantFare, *got.Fare)
			} else {
				require.False(t, got.OK())
				require.NotNil(t, got.Err)
				assert.Nil(t, got.Fare)
				assert.Equal(t, tt.wantKind, got.Err.Kind)
			}
			assert.Equal(t, tt.wantMessage, got.Message())
		})
	}
}

func TestClient_Predict_StatusCodeInMessage(t *testing.T) {
	c := newEndpoint(t, http.StatusNotFound, "", nil)
	got := c.Predict(context.Background(), sampleRequest())
	require.NotNil(t, got.Err)
	assert.Equal(t, http.StatusNotFound, got.Err.StatusCode)
	assert.Contains(t, got.Err.Error(), "404")
}

func TestClient_Predict_SendsQuery(t *testing.T) {
	var seen url.Values
	c := newEndpoint(t, http.StatusOK, `{"fare": 10}`, &seen)
	_ = c.Predict(context.Background(), sampleRequest())

	assert.Equal(t, "2026-10-18 14:30:00", seen.Get("pickup_datetime"))
	assert.Equal(t, "40.6513111", seen.Get("dropoff_latitude"))
	assert.Equal(t, "2", seen.Get("passenger_count"))
}

func TestClient_Predict_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	got := NewClient(endpoint, time.Second).Predict(context.Background(), sampleRequest())
	require.NotNil(t, got.Err)
	assert.Equal(t, KindTransport, got.Err.Kind)
	assert.Equal(t, "Error: Could not reach the prediction service", got.Message())
}

func TestClient_Predict_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	got := NewClient(srv.URL, 50*time.Millisecond).Predict(context.Background(), sampleRequest())
	require.NotNil(t, got.Err)
	assert.Equal(t, KindTransport, got.Err.Kind)
}

type blockingPredictor struct {
	started chan struct{}
	release chan struct{}
	calls   int
	mu      sync.Mutex
}

func (b *blockingPredictor) Predict(ctx context.Context, _ ride.RideRequest) FarePrediction {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	b.started <- struct{}{}
	<-b.release
	return fareOf(12.25)
}

func TestService_Estimate_RejectsConcurrentTrigger(t *testing.T) {
	p := &blockingPredictor{started: make(chan struct{}, 1), release: make(chan struct{})}
	svc := NewService(p, nil)

	done := make(chan FarePrediction, 1)
	go func() {
		res, err := svc.Estimate(context.Background(), "session-a", sampleRequest())
		assert.NoError(t, err)
		done <- res
	}()
	<-p.started
	assert.True(t, svc.InFlight("session-a"))

	_, err := svc.Estimate(context.Background(), "session-a", sampleRequest())
	assert.ErrorIs(t, err, ErrInFlight)

	close(p.release)
	res := <-done
	require.True(t, res.OK())
	assert.Equal(t, "Predicted Fare: $12.25", res.Message())
	assert.False(t, svc.InFlight("session-a"))

	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Equal(t, 1, p.calls)
}

type stubPredictor struct {
	result FarePrediction
}

func (s stubPredictor) Predict(context.Context, ride.RideRequest) FarePrediction {
	return s.result
}

func TestService_Estimate_SessionsAreIndependent(t *testing.T) {
	svc := NewService(stubPredictor{result: fareOf(5)}, nil)

	for _, id := range []string{"a", "b", "a"} {
		res, err := svc.Estimate(context.Background(), id, sampleRequest())
		require.NoError(t, err)
		assert.True(t, res.OK())
	}

	_, err := svc.Estimate(context.Background(), "", sampleRequest())
	assert.ErrorIs(t, err, ErrMissingSession)
}

func TestService_Estimate_ReplacesPreviousResult(t *testing.T) {
	stub := &stubPredictor{result: fareOf(5)}
	svc := NewService(stub, nil)

	first, err := svc.Estimate(context.Background(), "a", sampleRequest())
	require.NoError(t, err)
	require.True(t, first.OK())

	stub.result = failed(KindHTTPStatus, http.StatusBadGateway, "")
	second, err := svc.Estimate(context.Background(), "a", sampleRequest())
	require.NoError(t, err)
	assert.Nil(t, second.Fare)
	assert.Contains(t, second.Message(), "502")
}

func TestClient_Predict_Live(t *testing.T) {
	if os.Getenv("TAXIFARE_LIVE_TEST") == "" {
		t.Skip("TAXIFARE_LIVE_TEST not set; skipping live endpoint test")
	}
	got := NewClient(DefaultEndpoint, DefaultTimeout).Predict(context.Background(), sampleRequest())
	if !got.OK() {
		t.Fatalf("live prediction failed: %s", got.Message())
	}
	if *got.Fare <= 0 {
		t.Errorf("expected a positive fare, got %v", *got.Fare)
	}
}
