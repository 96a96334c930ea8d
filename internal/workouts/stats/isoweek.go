package stats

import (
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/workouts"
)

// ISOWeekKey maps a YYYY-MM-DD date to its ISO-8601 week key, e.g.
// "2025-W11". Weeks start on Monday and a week belongs to the year of
// its Thursday, so dates near New Year can land in the other year's
// week (Dec 29 in week 1 of the next year, Jan 1 in week 52/53 of the
// previous one).
func ISOWeekKey(date string) (string, error) {
	t, err := time.Parse(workouts.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}

	// shift to the Thursday of this date's week
	thursday := t.AddDate(0, 0, 3-isoWeekdayIndex(t))

	isoYear := thursday.Year()
	firstThursday := firstThursdayOf(isoYear)
	week := 1 + int(thursday.Sub(firstThursday).Hours())/(24*7)

	return fmt.Sprintf("%d-W%02d", isoYear, week), nil
}

// isoWeekdayIndex is 0 for Monday through 6 for Sunday.
func isoWeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func firstThursdayOf(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := (3 - isoWeekdayIndex(jan1) + 7) % 7
	return jan1.AddDate(0, 0, offset)
}
