package models

// CalendarDay is a derived, never-persisted value describing one bookable
// date. Full is the canonical date identity ("Mon Jan 02 2006" layout) and
// the join key between a reservation and its day: two CalendarDays are equal
// iff their Full strings are equal.
type CalendarDay struct {
	Full    string `json:"full"`
	DayName string `json:"dayName"` // short weekday, e.g. "Mon"
	DayNum  int    `json:"dayNum"`  // day of month
	Month   string `json:"month"`   // short month, e.g. "Jan"
	IsToday bool   `json:"isToday"`
}
