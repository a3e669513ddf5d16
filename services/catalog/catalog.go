// Package catalog enumerates the offerable services and the fixed daily
// time grid. Both are loaded once at process start and never mutated.
package catalog

import (
	"fmt"

	"thecut/models"
)

var services = []models.Service{
	{ID: 1, Name: "The Executive Cut", Duration: "45 min", Price: 35},
	{ID: 2, Name: "Beard Maintenance", Duration: "20 min", Price: 15},
	{ID: 3, Name: "Skin Fade", Duration: "40 min", Price: 30},
	{ID: 4, Name: "Hot Towel Shave", Duration: "30 min", Price: 25},
}

// timeSlots is the fixed ordered set of daily offer times. No per-day
// availability subtraction happens here; an already-booked slot is still
// offered.
var timeSlots = []string{
	"09:00", "09:45", "10:30", "11:15",
	"13:00", "13:45", "14:30", "15:15", "16:00",
}

// Services returns the catalog in display order.
func Services() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

// ServiceByID returns a copy of the catalog entry with the given id.
func ServiceByID(id int) (models.Service, error) {
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Service{}, fmt.Errorf("unknown service id %d", id)
}

// TimeSlots returns the daily offer times in order.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// ValidTimeSlot reports whether label is one of the offered times.
func ValidTimeSlot(label string) bool {
	for _, t := range timeSlots {
		if t == label {
			return true
		}
	}
	return false
}
