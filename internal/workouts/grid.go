package workouts

import (
	"strconv"
	"strings"
)

// The weekly grid lays the 7 days out side by side in 6-column blocks
// starting at column B: [exercise, warmup, set1, set2, set3, set4].
// Offsets are zero-indexed from column A.
var gridDayOffsets = map[Day]int{
	DayMonday:    1,
	DayTuesday:   7,
	DayWednesday: 13,
	DayThursday:  19,
	DayFriday:    25,
	DaySaturday:  31,
	DaySunday:    37,
}

const (
	gridColExercise = 0
	gridColWarmup   = 1
	gridColFirstSet = 2
	gridWorkingSets = 4
	gridHeaderRows  = 2
)

// Week is one week block of the grid: data rows between two week-marker
// rows, split per day.
type Week struct {
	WeekNumber int            `json:"weekNumber"`
	Days       []DayExercises `json:"days"`
}

type DayExercises struct {
	Day       Day        `json:"day"`
	Exercises []Exercise `json:"exercises"`
}

// ExtractWeeks walks the raw grid and assembles the week blocks. A row
// whose first cell is a bare positive integer starts a new week; all
// rows up to the next marker belong to it. Each day block is scanned
// independently over the same row range, so a row may hold an exercise
// for Monday and nothing for Tuesday. A grid with the header region
// only yields no weeks.
func ExtractWeeks(grid [][]string) []Week {
	if len(grid) < gridHeaderRows+1 {
		return nil
	}

	var weeks []Week
	currentWeek := -1
	var currentRows []int

	flush := func() {
		if currentWeek < 0 {
			return
		}
		week := Week{WeekNumber: currentWeek}
		for _, day := range AllDays {
			exercises := extractDayExercises(grid, currentRows, gridDayOffsets[day])
			if len(exercises) > 0 {
				week.Days = append(week.Days, DayExercises{Day: day, Exercises: exercises})
			}
		}
		weeks = append(weeks, week)
	}

	for row := gridHeaderRows; row < len(grid); row++ {
		if weekNumber, ok := parseWeekMarker(cellAt(grid, row, 0)); ok {
			flush()
			currentWeek = weekNumber
			currentRows = nil
			continue
		}
		if currentWeek >= 0 {
			currentRows = append(currentRows, row)
		}
	}
	flush()

	return weeks
}

func extractDayExercises(grid [][]string, rows []int, dayOffset int) []Exercise {
	var exercises []Exercise
	for _, row := range rows {
		name := strings.TrimSpace(cellAt(grid, row, dayOffset+gridColExercise))
		if name == "" {
			continue
		}

		var sets []WorkoutSet
		if warmup := ParseSetValue(cellAt(grid, row, dayOffset+gridColWarmup)); warmup != nil {
			sets = append(sets, WorkoutSet{
				Weight:    warmup.Weight,
				Reps:      warmup.Reps,
				IsWarmup:  true,
				SetNumber: 0,
			})
		}
		for i := 0; i < gridWorkingSets; i++ {
			sv := ParseSetValue(cellAt(grid, row, dayOffset+gridColFirstSet+i))
			if sv == nil {
				continue
			}
			sets = append(sets, WorkoutSet{
				Weight:    sv.Weight,
				Reps:      sv.Reps,
				SetNumber: i + 1,
			})
		}

		// a name without a single parseable set is just stray text
		if len(sets) == 0 {
			continue
		}
		exercises = append(exercises, Exercise{Name: name, Sets: sets})
	}
	return exercises
}

func parseWeekMarker(cell string) (int, bool) {
	weekNumber, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil || weekNumber <= 0 {
		return 0, false
	}
	return weekNumber, true
}

func cellAt(grid [][]string, row, col int) string {
	if row >= len(grid) || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}
