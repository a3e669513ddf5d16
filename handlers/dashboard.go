package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reservationRepo "thecut/database/repository/reservation"
	"thecut/middleware"
	"thecut/services/dashboard"
)

// DashboardHandler serves the authenticated barber's derived view. Each
// request reads the full current snapshot and recomputes; the live variant
// is the Aggregator over the change feed.
type DashboardHandler struct {
	Reservations reservationRepo.ReservationRepository
	Logger       *zap.Logger
}

func NewDashboardHandler(repo reservationRepo.ReservationRepository, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Reservations: repo, Logger: logger}
}

// GetDashboard returns count, revenue total and the reservation list for the
// calling barber.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	snapshot, err := h.Reservations.ListAll(c.Request.Context(), principal.BarberSlug)
	if err != nil {
		h.Logger.Error("failed to load reservations",
			zap.String("barberId", principal.BarberSlug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	// The snapshot is already scoped server-side; DeriveView filters again
	// so an unscoped feed cannot leak another barber's bookings.
	c.JSON(http.StatusOK, dashboard.DeriveView(snapshot, principal.BarberSlug))
}
