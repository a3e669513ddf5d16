package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"thecut/handlers"
	"thecut/middleware"
)

// RegisterRoutes wires the handler bundle onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.Default())
	r.Use(middleware.PrincipalMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterBarberRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterBookingRoutes registers all endpoints for the booking wizard.
// All of them are open to anonymous principals.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/services", hb.GetAvailableServices)
		booking.GET("/dates", hb.GetAvailableDates)
		booking.GET("/times", hb.GetAvailableTimes)

		booking.POST("/session", hb.StartSession)
		booking.GET("/session/:sessionID", hb.GetSession)
		booking.PUT("/session/:sessionID/service", hb.SelectService)
		booking.PUT("/session/:sessionID/date", hb.SelectDate)
		booking.PUT("/session/:sessionID/time", hb.SelectTime)
		booking.PUT("/session/:sessionID/back", hb.StepBack)
		booking.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		booking.POST("/session/:sessionID/reset", hb.ResetSession)
		booking.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterBarberRoutes registers barber profile endpoints. Reads are public;
// writes require the authenticated owner.
func RegisterBarberRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/barbers")
	{
		api.GET("/:slug", hb.GetBarberHandler)
		api.PUT("/:slug", middleware.RequireBarber(), hb.UpsertBarberHandler)
	}
}

// RegisterDashboardRoutes registers the barber dashboard endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.RequireBarber())
		api.GET("", hb.GetDashboardHandler)
	}
}
