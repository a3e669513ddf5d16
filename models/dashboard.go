package models

// DashboardView is the derived read model for one barber: reservation count,
// revenue total over frozen service prices, and the reservations in feed
// arrival order. Recomputed in full from every snapshot.
type DashboardView struct {
	BarberID     string        `json:"barberId"`
	Count        int           `json:"count"`
	TotalRevenue int           `json:"totalRevenue"`
	Reservations []Reservation `json:"reservations"`
}
