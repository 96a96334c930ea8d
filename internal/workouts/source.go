package workouts

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=source_mocks_test.go -package=workouts_test

// RangeGetter fetches a rectangular range of cells from the external
// spreadsheet service. Implemented by the sheets client.
type RangeGetter interface {
	GetRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error)
}

// Source yields canonical workouts regardless of the upstream layout.
// Consumers never learn which adapter produced them.
type Source interface {
	Workouts(ctx context.Context) ([]Workout, error)
}

// GridSource adapts the weekly column grid. The grid itself carries no
// dates, only week numbers and days, so dates are resolved against the
// Monday the program started on.
type GridSource struct {
	getter        RangeGetter
	spreadsheetID string
	a1Range       string
	startMonday   time.Time
}

func NewGridSource(getter RangeGetter, spreadsheetID, a1Range string, startMonday time.Time) *GridSource {
	return &GridSource{
		getter:        getter,
		spreadsheetID: spreadsheetID,
		a1Range:       a1Range,
		startMonday:   startMonday,
	}
}

func (s *GridSource) Workouts(ctx context.Context) ([]Workout, error) {
	grid, err := s.getter.GetRange(ctx, s.spreadsheetID, s.a1Range)
	if err != nil {
		return nil, err
	}

	var workoutsList []Workout
	for _, week := range ExtractWeeks(grid) {
		for _, day := range week.Days {
			workoutsList = append(workoutsList, Workout{
				Date:       s.dateOf(week.WeekNumber, day.Day),
				Day:        day.Day,
				WeekNumber: week.WeekNumber,
				Exercises:  day.Exercises,
			})
		}
	}
	return workoutsList, nil
}

func (s *GridSource) dateOf(weekNumber int, day Day) string {
	dayIndex := 0
	for i, d := range AllDays {
		if d == day {
			dayIndex = i
			break
		}
	}
	date := s.startMonday.AddDate(0, 0, (weekNumber-1)*7+dayIndex)
	return date.Format(DateLayout)
}

// LogbookSource adapts the flat per-date log.
type LogbookSource struct {
	getter        RangeGetter
	spreadsheetID string
	a1Range       string
}

func NewLogbookSource(getter RangeGetter, spreadsheetID, a1Range string) *LogbookSource {
	return &LogbookSource{
		getter:        getter,
		spreadsheetID: spreadsheetID,
		a1Range:       a1Range,
	}
}

func (s *LogbookSource) Workouts(ctx context.Context) ([]Workout, error) {
	rows, err := s.getter.GetRange(ctx, s.spreadsheetID, s.a1Range)
	if err != nil {
		return nil, err
	}
	return ReadLogbook(rows)
}
