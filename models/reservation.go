package models

import "time"

// Reservation is the persisted, confirmed booking record. It is created
// exactly once per completed wizard run and never mutated or deleted.
//
// No uniqueness is enforced on (BarberID, Date, Time): two clients can book
// the same slot concurrently and both records persist. The dashboard makes
// the collision visible rather than hiding it.
type Reservation struct {
	ID        string    `bson:"id" json:"id"`
	BarberID  string    `bson:"barberId" json:"barberId"`
	Service   Service   `bson:"service" json:"service"` // denormalized copy, not a reference
	Date      string    `bson:"date" json:"date"`       // CalendarDay.Full of the chosen day
	Time      string    `bson:"time" json:"time"`       // slot label, e.g. "09:45"
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
