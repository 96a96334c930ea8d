package sessions

import (
	"time"

	"github.com/2beens/liftlog/internal/workouts"
)

// Session is a stored workout: everything one user logged for one date.
// There is at most one session per (user, date); saving again for the
// same date replaces the whole exercise list.
type Session struct {
	ID         int              `json:"id"`
	UserID     string           `json:"userId"`
	Date       string           `json:"date"` // YYYY-MM-DD
	Day        workouts.Day     `json:"day"`
	WeekNumber int              `json:"weekNumber"`
	Exercises  []StoredExercise `json:"exercises"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// StoredExercise is an exercise row of a session, with its database id
// and the dense logging-order index.
type StoredExercise struct {
	ID         int                   `json:"id"`
	Name       string                `json:"name"`
	OrderIndex int                   `json:"orderIndex"`
	GroupID    string                `json:"groupId,omitempty"`
	GroupType  workouts.GroupType    `json:"groupType,omitempty"`
	Sets       []workouts.WorkoutSet `json:"sets"`
}
