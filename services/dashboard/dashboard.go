// Package dashboard derives a barber's read model from the live reservation
// feed.
package dashboard

import (
	"thecut/models"
)

// DeriveView computes the dashboard aggregates for one barber from a full
// feed snapshot. Pure and idempotent: the same snapshot always yields the
// same view. Reservations keep feed arrival order; revenue sums the frozen
// service price of each matching reservation, so later catalog price changes
// never move past totals.
func DeriveView(snapshot []models.Reservation, barberID string) models.DashboardView {
	view := models.DashboardView{
		BarberID:     barberID,
		Reservations: []models.Reservation{},
	}
	for _, res := range snapshot {
		if res.BarberID != barberID {
			continue
		}
		view.Reservations = append(view.Reservations, res)
		view.TotalRevenue += res.Service.Price
	}
	view.Count = len(view.Reservations)
	return view
}
