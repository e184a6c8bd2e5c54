package editor

import (
	"fmt"
	"time"
)

// now is a hook for tests that pin the open-ended "Present" endpoint.
var now = time.Now

// Duration renders the elapsed time between start and end as a label like
// "1 year 3 months". A nil end means the entry is still ongoing and the
// current time is used. Sub-day precision is ignored; a month only counts
// once its day-of-month has passed, so June 1 to July 1 is still
// "Less than 1 month".
func Duration(start, end *time.Time) string {
	if start == nil {
		return ""
	}
	e := now()
	if end != nil {
		e = *end
	}
	years := e.Year() - start.Year()
	months := int(e.Month()) - int(start.Month())
	if e.Day() <= start.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	if years <= 0 && months <= 0 {
		return "Less than 1 month"
	}
	if years < 0 {
		return "Less than 1 month"
	}
	label := ""
	if years > 0 {
		label = fmt.Sprintf("%d %s", years, plural("year", years))
	}
	if months > 0 {
		if label != "" {
			label += " "
		}
		label += fmt.Sprintf("%d %s", months, plural("month", months))
	}
	return label
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// MonthYear renders a date as "January 2006" for row labels. A nil date is
// an open-ended entry and reads "Present".
func MonthYear(t *time.Time) string {
	if t == nil {
		return "Present"
	}
	return t.Format("January 2006")
}

// Summary is the one-line "Start – End · Duration" label shown under a
// dated row, recomputed live whenever either date changes.
func Summary(start, end *time.Time) string {
	if start == nil {
		return ""
	}
	return fmt.Sprintf("%s – %s · %s", MonthYear(start), MonthYear(end), Duration(start, end))
}
