package dashboard

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	reservationRepo "thecut/database/repository/reservation"
	"thecut/models"
)

// Feed is the live snapshot stream the aggregator consumes.
type Feed interface {
	Snapshots() <-chan []models.Reservation
	Close()
}

// FeedSource opens feeds; satisfied by the reservation repository.
type FeedSource interface {
	Subscribe(ctx context.Context, barberID string) (*reservationRepo.Subscription, error)
}

// Aggregator keeps one barber's DashboardView continuously up to date while
// a provider dashboard is open. Lifecycle is explicit: Start subscribes,
// Stop cancels the feed. Every snapshot triggers a total recompute, never an
// incremental delta, so the view cannot drift from the underlying set.
type Aggregator struct {
	source   FeedSource
	barberID string
	logger   *zap.Logger

	mu   sync.RWMutex
	view models.DashboardView

	feed Feed
	done chan struct{}
}

func NewAggregator(source FeedSource, barberID string, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		source:   source,
		barberID: barberID,
		logger:   logger,
		view:     DeriveView(nil, barberID),
	}
}

// Start opens the live feed and begins recomputing. Returns once the
// subscription is established; consumption continues in the background until
// Stop or context cancellation.
func (a *Aggregator) Start(ctx context.Context) error {
	sub, err := a.source.Subscribe(ctx, a.barberID)
	if err != nil {
		return fmt.Errorf("failed to open dashboard feed: %w", err)
	}
	a.feed = sub
	a.done = make(chan struct{})
	go a.consume(sub)
	return nil
}

// consume recomputes the view for every delivered snapshot.
func (a *Aggregator) consume(feed Feed) {
	defer close(a.done)
	for snapshot := range feed.Snapshots() {
		view := DeriveView(snapshot, a.barberID)
		a.mu.Lock()
		a.view = view
		a.mu.Unlock()
		a.logger.Debug("dashboard view recomputed",
			zap.String("barberId", a.barberID),
			zap.Int("count", view.Count))
	}
}

// Current returns the latest derived view.
func (a *Aggregator) Current() models.DashboardView {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.view
}

// Stop cancels the feed and waits for the consumer to drain.
func (a *Aggregator) Stop() {
	if a.feed == nil {
		return
	}
	a.feed.Close()
	<-a.done
}

// RunFeed attaches an already-open feed instead of subscribing. Used where
// the caller owns the subscription lifecycle.
func (a *Aggregator) RunFeed(feed Feed) {
	a.feed = feed
	a.done = make(chan struct{})
	go a.consume(feed)
}
