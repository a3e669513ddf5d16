package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every route handler assembled in main.
type HandlerBundle struct {
	// Booking wizard endpoints.
	GetAvailableServices gin.HandlerFunc
	GetAvailableDates    gin.HandlerFunc
	GetAvailableTimes    gin.HandlerFunc
	StartSession         gin.HandlerFunc
	GetSession           gin.HandlerFunc
	SelectService        gin.HandlerFunc
	SelectDate           gin.HandlerFunc
	SelectTime           gin.HandlerFunc
	StepBack             gin.HandlerFunc
	ConfirmBooking       gin.HandlerFunc
	ResetSession         gin.HandlerFunc
	CancelSession        gin.HandlerFunc

	// Barber endpoints.
	GetBarberHandler    gin.HandlerFunc
	UpsertBarberHandler gin.HandlerFunc

	// Dashboard endpoints.
	GetDashboardHandler gin.HandlerFunc
}
