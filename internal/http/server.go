// README: HTTP server; wires module services into handlers.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"taxifare/internal/maps"
	"taxifare/internal/modules/mapview"
	"taxifare/internal/modules/pricing"
)

type ServerDeps struct {
	Pricing   *pricing.Service
	Renderer  *mapview.Renderer
	Geocoder  *maps.GeocodeService
	LookupURL string
	Log       *zap.Logger
}

type Server struct {
	pricing   *pricing.Service
	renderer  *mapview.Renderer
	geocoder  *maps.GeocodeService
	lookupURL string
	log       *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		pricing:   deps.Pricing,
		renderer:  deps.Renderer,
		geocoder:  deps.Geocoder,
		lookupURL: deps.LookupURL,
		log:       log,
	}
}

func (s *Server) Routes() (http.Handler, error) {
	return NewRouter(s)
}
