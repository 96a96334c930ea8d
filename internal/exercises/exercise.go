package exercises

import "time"

// Entry is one named exercise of a user's exercise master list, mapping
// the name to a muscle group. Names are unique per user among non-deleted
// entries, case-insensitively. Entries are soft-deleted so old sessions
// keep resolving.
type Entry struct {
	ID          int        `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	MuscleGroup string     `json:"muscleGroup"`
	CreatedAt   time.Time  `json:"createdAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}
