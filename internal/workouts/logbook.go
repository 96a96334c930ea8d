package workouts

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// The flat per-date log: one row per exercise per date, fixed header.
// Older sheets predate the Group column and carry 8 columns only.
var (
	logbookHeader       = []string{"Date", "Day", "Exercise", "Group", "Warmup", "Set1", "Set2", "Set3", "Set4"}
	logbookHeaderLegacy = []string{"Date", "Day", "Exercise", "Warmup", "Set1", "Set2", "Set3", "Set4"}
)

// ReadLogbook turns the flat log into canonical workouts: rows grouped
// by date (first-appearance order kept within a date), one Exercise per
// row, workouts sorted by date ascending. A malformed header or a
// non-date-shaped date aborts the whole read.
func ReadLogbook(rows [][]string) ([]Workout, error) {
	if len(rows) == 0 {
		return nil, &ValidationError{Row: 1, Msg: "missing header row"}
	}

	hasGroupColumn, err := validateLogbookHeader(rows[0])
	if err != nil {
		return nil, err
	}

	colExercise, colGroup, colWarmup := 2, 3, 4
	if !hasGroupColumn {
		colGroup, colWarmup = -1, 3
	}

	byDate := make(map[string]*Workout)
	var dates []string

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowNumber := i + 1 // 1-based, counting the header

		date := strings.TrimSpace(logCell(row, 0))
		name := strings.TrimSpace(logCell(row, colExercise))
		if date == "" || name == "" {
			continue
		}

		if _, err := time.Parse(DateLayout, date); err != nil {
			return nil, &ValidationError{
				Row:    rowNumber,
				Column: "Date",
				Msg:    fmt.Sprintf("not a YYYY-MM-DD date: %q", date),
			}
		}

		workout, seen := byDate[date]
		if !seen {
			day, err := ParseDay(logCell(row, 1))
			if err != nil {
				// tolerate a garbled day cell, the date is authoritative
				day, _ = DayOfDate(date)
			}
			workout = &Workout{Date: date, Day: day}
			byDate[date] = workout
			dates = append(dates, date)
		}

		exercise := Exercise{Name: name}
		if colGroup >= 0 {
			exercise.GroupLabel = strings.TrimSpace(logCell(row, colGroup))
		}
		if warmup := ParseSetValue(logCell(row, colWarmup)); warmup != nil {
			exercise.Sets = append(exercise.Sets, WorkoutSet{
				Weight:    warmup.Weight,
				Reps:      warmup.Reps,
				IsWarmup:  true,
				SetNumber: 0,
			})
		}
		for s := 0; s < 4; s++ {
			sv := ParseSetValue(logCell(row, colWarmup+1+s))
			if sv == nil {
				continue
			}
			exercise.Sets = append(exercise.Sets, WorkoutSet{
				Weight:    sv.Weight,
				Reps:      sv.Reps,
				SetNumber: s + 1,
			})
		}

		workout.Exercises = append(workout.Exercises, exercise)
	}

	// date strings are YYYY-MM-DD, lexicographic order is date order
	sort.Strings(dates)

	workoutsList := make([]Workout, 0, len(dates))
	for _, date := range dates {
		workoutsList = append(workoutsList, *byDate[date])
	}
	return workoutsList, nil
}

// validateLogbookHeader reports whether the optional Group column is
// present, or fails naming the first offending column.
func validateLogbookHeader(header []string) (bool, error) {
	expected := logbookHeader
	hasGroupColumn := true
	if len(header) == len(logbookHeaderLegacy) {
		expected = logbookHeaderLegacy
		hasGroupColumn = false
	} else if len(header) != len(logbookHeader) {
		return false, &ValidationError{
			Row: 1,
			Msg: fmt.Sprintf("expected %d or %d columns, got %d",
				len(logbookHeaderLegacy), len(logbookHeader), len(header)),
		}
	}

	for i, want := range expected {
		if got := strings.TrimSpace(header[i]); !strings.EqualFold(got, want) {
			return false, &ValidationError{
				Row:    1,
				Column: fmt.Sprintf("%d", i),
				Msg:    fmt.Sprintf("expected header %q, got %q", want, got),
			}
		}
	}
	return hasGroupColumn, nil
}

func logCell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
