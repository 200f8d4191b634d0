// README: Fare handler; the "Get Fare Prediction" trigger.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxifare/internal/http/middleware"
	"taxifare/internal/modules/pricing"
)

type FareHandler struct {
	pricing *pricing.Service
	now     func() time.Time
}

func NewFareHandler(svc *pricing.Service) *FareHandler {
	return &FareHandler{pricing: svc, now: time.Now}
}

type fareResponse struct {
	OK         bool     `json:"ok"`
	Fare       *float64 `json:"fare,omitempty"`
	Error      string   `json:"error,omitempty"`
	StatusCode int      `json:"status_code,omitempty"`
	Message    string   `json:"message"`
}

// Predict handles POST /api/predict. A failed prediction is still a 200: the
// message is shown in the result banner and the form stays usable.
func (h *FareHandler) Predict(c *gin.Context) {
	session := middleware.SessionID(c)
	if h.pricing.InFlight(session) {
		writeDomainError(c, pricing.ErrInFlight)
		return
	}

	req, err := bindRide(c, h.now())
	if err != nil {
		writeDomainError(c, err)
		return
	}

	result, err := h.pricing.Estimate(c.Request.Context(), session, req)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := fareResponse{OK: result.OK(), Fare: result.Fare, Message: result.Message()}
	if result.Err != nil {
		resp.Error = string(result.Err.Kind)
		resp.StatusCode = result.Err.StatusCode
	}
	writeJSON(c, http.StatusOK, resp)
}
