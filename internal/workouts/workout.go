package workouts

import (
	"fmt"
	"strings"
	"time"
)

// Day of the week a workout was logged on, as spelled in the source data.
type Day string

const (
	DayMonday    Day = "Monday"
	DayTuesday   Day = "Tuesday"
	DayWednesday Day = "Wednesday"
	DayThursday  Day = "Thursday"
	DayFriday    Day = "Friday"
	DaySaturday  Day = "Saturday"
	DaySunday    Day = "Sunday"
)

// AllDays in Monday-start order, matching the weekly grid layout.
var AllDays = []Day{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

func ParseDay(s string) (Day, error) {
	for _, d := range AllDays {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown day: %q", s)
}

// DayOfDate returns the day enum for a YYYY-MM-DD date string.
func DayOfDate(date string) (Day, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	// time.Weekday is Sunday-based
	return AllDays[(int(t.Weekday())+6)%7], nil
}

type GroupType string

// GroupTypeSuperset is the only grouping kind so far; the enum is kept
// open for future kinds (drop sets, circuits).
const GroupTypeSuperset GroupType = "superset"

// Exercise is one logged exercise of a workout: a name and its ordered
// sets. Names are shown verbatim but compared case-insensitively.
// Exercises sharing a non-empty GroupID form a superset.
type Exercise struct {
	Name      string       `json:"name"`
	Sets      []WorkoutSet `json:"sets"`
	GroupID   string       `json:"groupId,omitempty"`
	GroupType GroupType    `json:"groupType,omitempty"`

	// GroupLabel is the raw grouping label read from the source
	// (logbook "Group" column); replaced by a fresh GroupID on save.
	GroupLabel string `json:"-"`
}

// WorkingSets returns the non-warmup sets.
func (e Exercise) WorkingSets() []WorkoutSet {
	var working []WorkoutSet
	for _, s := range e.Sets {
		if !s.IsWarmup {
			working = append(working, s)
		}
	}
	return working
}

// NameEquals compares exercise names the way the product does everywhere:
// case-insensitively.
func (e Exercise) NameEquals(name string) bool {
	return strings.EqualFold(e.Name, name)
}

const DateLayout = "2006-01-02"

// Workout is the canonical model both source layouts converge on:
// everything logged for one calendar date.
type Workout struct {
	Date       string     `json:"date"` // YYYY-MM-DD
	Day        Day        `json:"day"`
	WeekNumber int        `json:"weekNumber"`
	Exercises  []Exercise `json:"exercises"`
}

// ValidationError describes a structural problem in the source data
// (bad header, malformed date). It aborts the whole read - there is no
// partial import. Row is 1-based and counts the header row.
type ValidationError struct {
	Row    int
	Column string
	Msg    string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("row %d, column %s: %s", e.Row, e.Column, e.Msg)
	case e.Row > 0:
		return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
	default:
		return fmt.Sprintf("column %s: %s", e.Column, e.Msg)
	}
}
