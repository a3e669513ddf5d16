package reservationRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thecut/models"
)

func TestPublishLatestWins(t *testing.T) {
	sub := newSubscription(func() {})

	stale := []models.Reservation{{ID: "r1"}}
	fresh := []models.Reservation{{ID: "r1"}, {ID: "r2"}}

	// A slow consumer never sees the stale snapshot once a fresher one
	// arrives.
	sub.publish(stale)
	sub.publish(fresh)

	got := <-sub.snapshots
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[1].ID)

	select {
	case extra := <-sub.snapshots:
		t.Fatalf("unexpected extra snapshot: %v", extra)
	default:
	}
}

func TestCloseCancelsFeed(t *testing.T) {
	cancelled := false
	sub := newSubscription(func() { cancelled = true })
	sub.Close()
	assert.True(t, cancelled)
	sub.Close() // safe to call twice
}
