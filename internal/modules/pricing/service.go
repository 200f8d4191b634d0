// README: Pricing service; one prediction in flight per page session.
package pricing

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"taxifare/internal/modules/ride"
)

var (
	ErrInFlight       = errors.New("prediction already in progress")
	ErrMissingSession = errors.New("missing session")
)

type Predictor interface {
	Predict(ctx context.Context, req ride.RideRequest) FarePrediction
}

type Service struct {
	predictor Predictor
	log       *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewService(predictor Predictor, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		predictor: predictor,
		log:       log.Named("pricing"),
		inFlight:  make(map[string]struct{}),
	}
}

// Estimate runs one prediction for the session. A trigger arriving while the
// session's previous request is still outstanding is rejected with ErrInFlight.
func (s *Service) Estimate(ctx context.Context, sessionID string, req ride.RideRequest) (FarePrediction, error) {
	if sessionID == "" {
		return FarePrediction{}, ErrMissingSession
	}
	if !s.acquire(sessionID) {
		s.log.Debug("prediction rejected, request in flight", zap.String("session", sessionID))
		return FarePrediction{}, ErrInFlight
	}
	defer s.release(sessionID)

	start := time.Now()
	result := s.predictor.Predict(ctx, req)

	fields := []zap.Field{
		zap.String("session", sessionID),
		zap.String("pickup_datetime", req.PickupDateTime()),
		zap.Int("passenger_count", req.PassengerCount),
		zap.Duration("elapsed", time.Since(start)),
	}
	if result.OK() {
		s.log.Info("fare predicted", append(fields, zap.Float64("fare", *result.Fare))...)
	} else if result.Err != nil {
		s.log.Warn("fare prediction failed", append(fields,
			zap.String("kind", string(result.Err.Kind)),
			zap.Int("status", result.Err.StatusCode),
			zap.String("detail", result.Err.Detail),
		)...)
	}
	return result, nil
}

// InFlight reports whether the session has an outstanding prediction.
func (s *Service) InFlight(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[sessionID]
	return ok
}

func (s *Service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}
