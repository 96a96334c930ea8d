package workouts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/liftlog/internal/workouts"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridSource_Workouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	getter := NewMockRangeGetter(ctrl)

	grid := [][]string{
		{"Week"},
		{""},
		gridRow(map[int]string{0: "2"}),
		gridRow(map[int]string{
			1: "Squat", 3: "100kg, 5",
			13: "Deadlift", 15: "120kg, 3",
		}),
	}
	getter.EXPECT().
		GetRange(gomock.Any(), "sheet-id", "Workouts!A1:AQ500").
		Return(grid, nil)

	// program started Monday 2025-01-06
	startMonday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	src := workouts.NewGridSource(getter, "sheet-id", "Workouts!A1:AQ500", startMonday)

	got, err := src.Workouts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	// week 2 Monday = start + 7 days
	assert.Equal(t, "2025-01-13", got[0].Date)
	assert.Equal(t, workouts.DayMonday, got[0].Day)
	assert.Equal(t, 2, got[0].WeekNumber)
	assert.Equal(t, "Squat", got[0].Exercises[0].Name)

	// week 2 Wednesday = start + 9 days
	assert.Equal(t, "2025-01-15", got[1].Date)
	assert.Equal(t, workouts.DayWednesday, got[1].Day)
	assert.Equal(t, "Deadlift", got[1].Exercises[0].Name)
}

func TestLogbookSource_Workouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	getter := NewMockRangeGetter(ctrl)

	rows := [][]string{
		logbookHeaderRow,
		{"2025-01-01", "Wednesday", "Bench Press", "", "", "70kg, 5", "70kg, 5", "", ""},
	}
	getter.EXPECT().
		GetRange(gomock.Any(), "sheet-id", "Log!A:I").
		Return(rows, nil)

	src := workouts.NewLogbookSource(getter, "sheet-id", "Log!A:I")
	got, err := src.Workouts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-01-01", got[0].Date)
}

func TestSources_GetterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	getter := NewMockRangeGetter(ctrl)

	getterErr := errors.New("boom")
	getter.EXPECT().GetRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, getterErr).Times(2)

	_, err := workouts.NewLogbookSource(getter, "s", "r").Workouts(context.Background())
	assert.ErrorIs(t, err, getterErr)

	_, err = workouts.NewGridSource(getter, "s", "r", time.Now()).Workouts(context.Background())
	assert.ErrorIs(t, err, getterErr)
}
