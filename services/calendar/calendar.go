// Package calendar derives the rolling window of bookable dates.
package calendar

import (
	"time"

	"thecut/models"
)

// DefaultHorizonDays is how far ahead clients can book.
const DefaultHorizonDays = 21

// fullLayout renders the canonical date identity, e.g. "Mon Jan 01 2024".
const fullLayout = "Mon Jan 02 2006"

// Window generates the ordered sequence of bookable days starting at now's
// date. Pure function of now: no past dates, first entry is today, exactly
// one entry has IsToday set.
func Window(now time.Time, horizonDays int) []models.CalendarDay {
	days := make([]models.CalendarDay, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		d := now.AddDate(0, 0, i)
		days = append(days, models.CalendarDay{
			Full:    d.Format(fullLayout),
			DayName: d.Format("Mon"),
			DayNum:  d.Day(),
			Month:   d.Format("Jan"),
			IsToday: i == 0,
		})
	}
	return days
}

// DayByFull resolves a canonical date identity against the current window.
// Selection is only valid for a date the window actually offers.
func DayByFull(now time.Time, horizonDays int, full string) (models.CalendarDay, bool) {
	for _, d := range Window(now, horizonDays) {
		if d.Full == full {
			return d, true
		}
	}
	return models.CalendarDay{}, false
}
