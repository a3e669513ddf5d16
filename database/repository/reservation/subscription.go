package reservationRepo

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"thecut/models"
)

// Subscription is a cancellable handle on the live reservation feed. Each
// delivered value is a complete snapshot of the reservation set at some
// point after the change that triggered it; intermediate snapshots may be
// skipped, the latest one wins.
type Subscription struct {
	snapshots chan []models.Reservation
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newSubscription(cancel context.CancelFunc) *Subscription {
	return &Subscription{
		snapshots: make(chan []models.Reservation, 1),
		cancel:    cancel,
	}
}

// Snapshots yields full snapshots until the subscription is closed. The
// channel is closed when the feed ends, on Close or context cancellation.
func (s *Subscription) Snapshots() <-chan []models.Reservation {
	return s.snapshots
}

// Close cancels the feed. Safe to call more than once.
func (s *Subscription) Close() {
	s.cancel()
}

// publish replaces any undelivered snapshot so a slow consumer only ever
// sees the freshest state.
func (s *Subscription) publish(snapshot []models.Reservation) {
	for {
		select {
		case s.snapshots <- snapshot:
			return
		default:
			select {
			case <-s.snapshots:
			default:
			}
		}
	}
}

// run delivers one initial snapshot, then re-reads the collection on every
// change event. The snapshot read is eventually consistent with the change
// that triggered it; consumers must not assume a just-created reservation
// appears in the very next snapshot.
func (s *Subscription) run(ctx context.Context, stream *mongo.ChangeStream, list func(context.Context) ([]models.Reservation, error)) {
	defer s.closeOnce.Do(func() { close(s.snapshots) })
	defer s.cancel()
	defer stream.Close(ctx)

	if snapshot, err := list(ctx); err == nil {
		s.publish(snapshot)
	}

	for stream.Next(ctx) {
		snapshot, err := list(ctx)
		if err != nil {
			continue
		}
		s.publish(snapshot)
	}
}
