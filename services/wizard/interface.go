package wizard

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	barberRepo "thecut/database/repository/barber"
	reservationRepo "thecut/database/repository/reservation"
	"thecut/models"
)

// WizardService drives one client through the linear booking flow:
// select_service -> select_date -> select_time -> collect_details ->
// confirmed. Every call loads the session, validates the transition, and
// persists the updated session back.
type WizardService interface {
	Start(ctx context.Context, barberSlug string) (*models.WizardSession, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	SelectService(ctx context.Context, sessionID string, serviceID int) (*models.WizardSession, error)
	SelectDate(ctx context.Context, sessionID string, full string) (*models.WizardSession, error)
	SelectTime(ctx context.Context, sessionID string, slot string) (*models.WizardSession, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSession, error)
	// Confirm is the only transition with an external effect: it persists
	// the reservation and, on success, emits a reservation-created event.
	Confirm(ctx context.Context, sessionID string, name, phone string) (*models.WizardSession, error)
	Reset(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Cancel(ctx context.Context, sessionID string) error
}

// TaskEnqueuer is the slice of asynq.Client the wizard needs to hand the
// reservation-created event to the notification worker.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultWizardService implements WizardService with Redis-backed sessions.
type DefaultWizardService struct {
	Sessions     *redis.Client
	Reservations reservationRepo.ReservationRepository
	Barbers      barberRepo.BarberRepository
	Events       TaskEnqueuer // nil disables the notification side effect
	Logger       *zap.Logger

	// SessionTTL bounds how long an abandoned draft lingers. Zero means
	// defaultSessionTTL.
	SessionTTL time.Duration

	// Now is the clock used to generate the availability window; tests pin
	// it. Nil means time.Now.
	Now func() time.Time
}
