package models

// Service is an immutable catalog entry. Reservations embed a denormalized
// copy, so the price a client saw at booking time stays frozen even if the
// catalog changes later.
type Service struct {
	ID       int    `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Duration string `bson:"duration" json:"duration"` // display label, e.g. "45 min"
	Price    int    `bson:"price" json:"price"`       // whole currency units
}
