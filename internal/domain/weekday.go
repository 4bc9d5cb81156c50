package domain

import "time"

// German weekday names as they appear in the exported calendar.
var germanWeekdays = map[time.Weekday]string{
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
	time.Sunday:    "Sonntag",
}

// WeekdayName returns the German name for the weekday of d.
func WeekdayName(d time.Time) string {
	return germanWeekdays[d.Weekday()]
}

// IsBusinessDay reports whether d falls on Monday through Friday.
func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
