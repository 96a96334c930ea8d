package exercises

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEntryNotFound = errors.New("exercise entry not found")
	ErrEntryExists   = errors.New("exercise entry already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_entry (user_id, name, muscle_group, created_at)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		entry.UserID, entry.Name, entry.MuscleGroup, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEntryExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("entry.id", entry.ID))

	return &entry, nil
}

func (r *Repo) Update(ctx context.Context, entry *Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("entry.id", entry.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_entry SET name = $1, muscle_group = $2
			WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL;`,
		entry.Name, entry.MuscleGroup, entry.ID, entry.UserID,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrEntryExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Delete soft-deletes an entry; analytics for old sessions stop resolving
// it, new entries may reuse the name.
func (r *Repo) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("entry.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_entry SET deleted_at = NOW()
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// List returns the non-deleted entries of a user, sorted by name.
func (r *Repo) List(ctx context.Context, userID string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, name, muscle_group, created_at
			FROM exercise_entry
			WHERE user_id = $1 AND deleted_at IS NULL
			ORDER BY name;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.MuscleGroup, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Lookup resolves an exercise name to its muscle group, case-insensitively.
// The stats analyzer consumes exactly this.
func (r *Repo) Lookup(ctx context.Context, userID, name string) (_ string, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.lookup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.name", name))

	var muscleGroup string
	err = r.db.QueryRow(
		ctx,
		`
			SELECT muscle_group
			FROM exercise_entry
			WHERE user_id = $1 AND lower(name) = lower($2) AND deleted_at IS NULL;`,
		userID, name,
	).Scan(&muscleGroup)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return muscleGroup, true, nil
}
