package models

import "time"

// DateLayout is the calendar-day format used for generation dates.
const DateLayout = "2006-01-02"

// DayContext describes the calendar day a run executes for.
type DayContext struct {
	Date      time.Time // Midnight of the day in the batch location
	Weekday   int       // 0 = Monday ... 6 = Sunday
	DayOfYear int       // 1-based
}

// NewDayContext derives the day context for now in loc.
func NewDayContext(now time.Time, loc *time.Location) DayContext {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return DayContext{
		Date:      time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
		Weekday:   (int(local.Weekday()) + 6) % 7,
		DayOfYear: local.YearDay(),
	}
}

// ISODate returns the day as YYYY-MM-DD.
func (d DayContext) ISODate() string {
	return d.Date.Format(DateLayout)
}

// WeekdayName returns the lowercase schedule key for the day.
func (d DayContext) WeekdayName() string {
	return Weekdays[d.Weekday%len(Weekdays)]
}
