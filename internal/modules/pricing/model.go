// README: Fare prediction result returned by the prediction endpoint.
package pricing

import (
	"fmt"

	"taxifare/internal/types"
)

type ErrorKind string

const (
	KindHTTPStatus  ErrorKind = "http_status"
	KindMissingFare ErrorKind = "missing_fare"
	KindTransport   ErrorKind = "transport"
	KindDecode      ErrorKind = "decode"
)

const (
	msgMissingFare = "Prediction key not found in API response"
	msgTransport   = "Could not reach the prediction service"
	msgDecode      = "Invalid response from the prediction service"
)

// PredictionError describes why a completed request attempt produced no fare.
type PredictionError struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
}

func (e *PredictionError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("Failed to retrieve prediction. Status code: %d", e.StatusCode)
	case KindMissingFare:
		return msgMissingFare
	case KindTransport:
		return msgTransport
	default:
		return msgDecode
	}
}

// FarePrediction holds exactly one of Fare or Err.
type FarePrediction struct {
	Fare *float64
	Err  *PredictionError
}

func fareOf(v float64) FarePrediction {
	return FarePrediction{Fare: &v}
}

func failed(kind ErrorKind, status int, detail string) FarePrediction {
	return FarePrediction{Err: &PredictionError{Kind: kind, StatusCode: status, Detail: detail}}
}

func (p FarePrediction) OK() bool {
	return p.Err == nil && p.Fare != nil
}

// Message is the banner text shown under the form.
func (p FarePrediction) Message() string {
	if p.OK() {
		return "Predicted Fare: " + types.FormatUSD(*p.Fare)
	}
	if p.Err == nil {
		return "Error: " + msgMissingFare
	}
	return "Error: " + p.Err.Error()
}
