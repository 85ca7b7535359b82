package metrics

import (
	"fmt"
	"time"
)

// Calendar defines which days count as business days.
type Calendar struct {
	WorkingDays []time.Weekday
	Holidays    []time.Time
}

// DefaultCalendar is Monday to Friday with no holidays.
func DefaultCalendar() Calendar {
	return Calendar{
		WorkingDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}
}

// IsBusinessDay checks the weekday and holiday list. Holidays match on the
// calendar date only.
func (c Calendar) IsBusinessDay(t time.Time) bool {
	isWorkDay := false
	for _, wd := range c.WorkingDays {
		if wd == t.Weekday() {
			isWorkDay = true
			break
		}
	}
	if !isWorkDay {
		return false
	}

	tDate := dateOf(t)
	for _, h := range c.Holidays {
		if tDate.Equal(dateOf(h)) {
			return false
		}
	}

	return true
}

// PreviousBusinessDay walks back from t to the nearest earlier business day.
// The time of day is preserved.
func (c Calendar) PreviousBusinessDay(t time.Time) time.Time {
	return c.step(t, -1)
}

// NextBusinessDay walks forward from t to the nearest later business day.
func (c Calendar) NextBusinessDay(t time.Time) time.Time {
	return c.step(t, 1)
}

// maxStep bounds the walk for calendars with no working days.
const maxStep = 366

func (c Calendar) step(t time.Time, dir int) time.Time {
	current := t.AddDate(0, 0, dir)
	for i := 0; i < maxStep && !c.IsBusinessDay(current); i++ {
		current = current.AddDate(0, 0, dir)
	}
	return current
}

// CountBusinessDays counts business days from start's date up to, but not
// including, end's date.
func (c Calendar) CountBusinessDays(start, end time.Time) int {
	count := 0
	endDate := dateOf(end)
	for current := dateOf(start); current.Before(endDate); current = current.AddDate(0, 0, 1) {
		if c.IsBusinessDay(current) {
			count++
		}
	}
	return count
}

// BusinessDaysAgo returns the date days business days before t.
func (c Calendar) BusinessDaysAgo(t time.Time, days int) time.Time {
	current := t
	for ; days > 0; days-- {
		current = c.PreviousBusinessDay(current)
	}
	return current
}

// BusinessDaysRange returns the window covering the last days business days
// ending at now.
func (c Calendar) BusinessDaysRange(now time.Time, days int) (from, to time.Time) {
	return c.BusinessDaysAgo(now, days), now
}

var defaultCalendar = DefaultCalendar()

// IsBusinessDay reports whether t falls Monday to Friday.
func IsBusinessDay(t time.Time) bool { return defaultCalendar.IsBusinessDay(t) }

// PreviousBusinessDay uses the default calendar.
func PreviousBusinessDay(t time.Time) time.Time { return defaultCalendar.PreviousBusinessDay(t) }

// NextBusinessDay uses the default calendar.
func NextBusinessDay(t time.Time) time.Time { return defaultCalendar.NextBusinessDay(t) }

// CountBusinessDays uses the default calendar.
func CountBusinessDays(start, end time.Time) int { return defaultCalendar.CountBusinessDays(start, end) }

// BusinessDaysAgo uses the default calendar.
func BusinessDaysAgo(t time.Time, days int) time.Time {
	return defaultCalendar.BusinessDaysAgo(t, days)
}

// BusinessDaysRange uses the default calendar.
func BusinessDaysRange(now time.Time, days int) (from, to time.Time) {
	return defaultCalendar.BusinessDaysRange(now, days)
}

// FormatBusinessDays renders a count of business days in Spanish.
func FormatBusinessDays(days int) string {
	if days == 1 {
		return "1 día hábil"
	}
	return fmt.Sprintf("%d días hábiles", days)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
