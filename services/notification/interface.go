package notification

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	barberRepo "thecut/database/repository/barber"
	"thecut/models"
)

// ReservationNotifier fans a new reservation out to the barber's automation
// hooks. Every failure on this path is logged and swallowed; notification
// outcome never affects the booking.
type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, res models.Reservation)
}

// DefaultReservationNotifier is the production implementation: webhook POST
// plus FCM push, each only when the profile opts in.
type DefaultReservationNotifier struct {
	Barbers   barberRepo.BarberRepository
	Messaging *messaging.Client // nil disables pushes
	Client    *http.Client      // nil means a 10s-timeout default
	Logger    *zap.Logger
}
