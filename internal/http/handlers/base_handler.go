// README: Base handler utilities (JSON helpers, error mapping, form binding).
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taxifare/internal/maps"
	"taxifare/internal/modules/pricing"
	"taxifare/internal/modules/ride"
	"taxifare/internal/types"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg, Message: "Error: " + msg})
}

func writeDomainError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, ride.ErrInvalidField), errors.Is(err, maps.ErrEmptyAddress):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, pricing.ErrMissingSession):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, pricing.ErrInFlight):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, maps.ErrNoResult):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, maps.ErrNotConfigured):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusBadGateway, "upstream error")
	}
}

// bindRide reads the ride form from the query string and urlencoded/multipart body.
func bindRide(c *gin.Context, now time.Time) (ride.RideRequest, error) {
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(1 << 20); err != nil {
			return ride.RideRequest{}, fmt.Errorf("%w: %v", ride.ErrInvalidField, err)
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return ride.RideRequest{}, fmt.Errorf("%w: %v", ride.ErrInvalidField, err)
	}
	return ride.ParseForm(c.Request.Form, now)
}

// clickPoint reads the optional last map click; anything unparsable is ignored.
func clickPoint(c *gin.Context) *types.Point {
	lat, errLat := strconv.ParseFloat(c.Request.Form.Get("click_lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Request.Form.Get("click_lng"), 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	return &types.Point{Lat: lat, Lng: lng}
}
