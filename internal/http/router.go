package api

import (
	"log"
	stdhttp "net/http"

	intconfig "motoroutes/internal/config"
	h "motoroutes/internal/http/handlers"
	"motoroutes/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// catalogue reads are open; everything rider-specific needs a token
		api.GET("/itineraries", h.GetItineraries)
		api.GET("/overlay", h.GetOverlay)

		private := api.Group("")
		private.Use(middleware.RequireAuth([]byte(env.JWTSecret)))
		{
			private.PUT("/itineraries/:id/field", h.EditItineraryField)
			private.POST("/itineraries/:id/completion/toggle", h.ToggleCompletion)
			private.GET("/completion", h.GetCompletion)
			private.GET("/completion/summary", h.GetCompletionSummary)

			private.GET("/itineraries/:id/media", h.ListMedia)
			private.POST("/itineraries/:id/media", h.UploadMedia)
			private.DELETE("/itineraries/:id/media/:index", h.DeleteMedia)

			private.GET("/reports/trips", h.GetTripReport)

			private.GET("/membership/status", h.GetMembershipStatus)
			private.POST("/membership/checkout", h.CreateCheckoutSession)
		}
	}

	return r
}
