// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"

	apihandlers "taxifare/internal/http/handlers"
	"taxifare/internal/http/middleware"
	"taxifare/internal/http/web"
)

func NewRouter(s *Server) (http.Handler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.Logging(s.log), middleware.Recovery(s.log), middleware.Session())

	pageHandler := apihandlers.NewPageHandler(s.renderer, s.lookupURL, s.geocoder != nil)
	r.GET("/", pageHandler.Index)
	r.StaticFS("/static", http.FS(web.Static()))

	api := r.Group("/api")
	{
		mapHandler := apihandlers.NewMapHandler(s.renderer)
		api.POST("/map", mapHandler.Render)

		fareHandler := apihandlers.NewFareHandler(s.pricing)
		api.POST("/predict", fareHandler.Predict)

		geocodeHandler := apihandlers.NewGeocodeHandler(s.geocoder)
		api.GET("/geocode", geocodeHandler.Lookup)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return handlers.CompressHandler(r), nil
}
