package dashboard_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"thecut/models"
	"thecut/services/dashboard"
)

func reservation(barberID string, price int, clientName string) models.Reservation {
	return models.Reservation{
		ID:       clientName,
		BarberID: barberID,
		Service:  models.Service{ID: 2, Name: "Beard Maintenance", Duration: "20 min", Price: price},
		Date:     "Mon Jan 01 2024",
		Time:     "09:45",
		Name:     clientName,
		Phone:    "0850000000",
	}
}

func TestDeriveViewFiltersByBarber(t *testing.T) {
	feed := []models.Reservation{
		reservation("evan", 15, "Sam Doe"),
		reservation("maria", 35, "Alex Roe"),
		reservation("evan", 30, "Pat Lee"),
	}

	view := dashboard.DeriveView(feed, "evan")

	assert.Equal(t, 2, view.Count)
	assert.Equal(t, 45, view.TotalRevenue)
	require.Len(t, view.Reservations, 2)
	assert.Equal(t, "Sam Doe", view.Reservations[0].Name)
	assert.Equal(t, "Pat Lee", view.Reservations[1].Name)
	for _, r := range view.Reservations {
		assert.Equal(t, "evan", r.BarberID)
	}
}

func TestDeriveViewIsIdempotent(t *testing.T) {
	feed := []models.Reservation{
		reservation("evan", 15, "Sam Doe"),
		reservation("evan", 25, "Pat Lee"),
	}

	first := dashboard.DeriveView(feed, "evan")
	second := dashboard.DeriveView(feed, "evan")
	assert.Equal(t, first, second)
}

func TestDeriveViewRevenueUsesFrozenPrices(t *testing.T) {
	// The reservation embeds the price at booking time; a later catalog
	// change must not move past revenue.
	res := reservation("evan", 15, "Sam Doe")
	feed := []models.Reservation{res}

	before := dashboard.DeriveView(feed, "evan")
	assert.Equal(t, 15, before.TotalRevenue)

	feed[0].Service.Price = 15 // frozen copy, untouched by catalog edits
	after := dashboard.DeriveView(feed, "evan")
	assert.Equal(t, before.TotalRevenue, after.TotalRevenue)
}

func TestDeriveViewEmptyFeed(t *testing.T) {
	view := dashboard.DeriveView(nil, "evan")
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, 0, view.TotalRevenue)
	assert.Empty(t, view.Reservations)
}

func TestDeriveViewDoubleBookingIsVisible(t *testing.T) {
	// Two reservations for the same (barber, date, time) both count; the
	// dashboard reveals the collision instead of hiding it.
	feed := []models.Reservation{
		reservation("evan", 15, "Sam Doe"),
		reservation("evan", 15, "Jamie Kim"),
	}
	view := dashboard.DeriveView(feed, "evan")
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, 30, view.TotalRevenue)
}

type fakeFeed struct {
	ch   chan []models.Reservation
	once sync.Once
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{ch: make(chan []models.Reservation, 1)}
}

func (f *fakeFeed) Snapshots() <-chan []models.Reservation { return f.ch }
func (f *fakeFeed) Close()                                 { f.once.Do(func() { close(f.ch) }) }

func TestAggregatorRecomputesOnEachSnapshot(t *testing.T) {
	feed := newFakeFeed()
	agg := dashboard.NewAggregator(nil, "evan", zap.NewNop())
	agg.RunFeed(feed)

	feed.ch <- []models.Reservation{reservation("evan", 15, "Sam Doe")}
	require.Eventually(t, func() bool {
		return agg.Current().Count == 1
	}, time.Second, 5*time.Millisecond)

	feed.ch <- []models.Reservation{
		reservation("evan", 15, "Sam Doe"),
		reservation("maria", 35, "Alex Roe"),
		reservation("evan", 30, "Pat Lee"),
	}
	require.Eventually(t, func() bool {
		return agg.Current().Count == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 45, agg.Current().TotalRevenue)

	agg.Stop()
}

func TestAggregatorStartsEmpty(t *testing.T) {
	agg := dashboard.NewAggregator(nil, "evan", zap.NewNop())
	view := agg.Current()
	assert.Equal(t, "evan", view.BarberID)
	assert.Equal(t, 0, view.Count)
}
