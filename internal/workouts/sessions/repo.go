package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workouts"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores a workout for (userID, workout.Date). If a session for that
// date already exists, its exercise list is replaced wholesale inside a single
// transaction, so readers never observe a half-written session. Returns the
// stored session and whether it was newly created.
func (r *Repo) Upsert(ctx context.Context, userID string, workout workouts.Workout) (_ *Session, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("workout.date", workout.Date))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	session := &Session{
		UserID:     userID,
		Date:       workout.Date,
		Day:        workout.Day,
		WeekNumber: workout.WeekNumber,
		CreatedAt:  time.Now(),
	}

	var existingID int
	err = tx.QueryRow(
		ctx,
		`SELECT id FROM workout_session WHERE user_id = $1 AND date = $2;`,
		userID, workout.Date,
	).Scan(&existingID)
	switch {
	case err == nil:
		// replace: drop the old exercise list, refresh the session row
		session.ID = existingID
		if _, err = tx.Exec(
			ctx,
			`DELETE FROM session_exercise WHERE session_id = $1;`,
			existingID,
		); err != nil {
			return nil, false, fmt.Errorf("delete exercises: %w", err)
		}
		if _, err = tx.Exec(
			ctx,
			`UPDATE workout_session SET day = $1, week_number = $2 WHERE id = $3;`,
			workout.Day, workout.WeekNumber, existingID,
		); err != nil {
			return nil, false, fmt.Errorf("update session: %w", err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		created = true
		err = tx.QueryRow(
			ctx,
			`INSERT INTO workout_session (user_id, date, day, week_number, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
			userID, workout.Date, workout.Day, workout.WeekNumber, session.CreatedAt,
		).Scan(&session.ID)
		if err != nil {
			return nil, false, fmt.Errorf("insert session: %w", err)
		}
	default:
		return nil, false, fmt.Errorf("select session: %w", err)
	}

	for i, ex := range workout.Exercises {
		setsJson, mErr := json.Marshal(ex.Sets)
		if mErr != nil {
			err = fmt.Errorf("marshal sets for %q: %w", ex.Name, mErr)
			return nil, false, err
		}

		stored := StoredExercise{
			Name:       ex.Name,
			OrderIndex: i,
			GroupID:    ex.GroupID,
			GroupType:  ex.GroupType,
			Sets:       ex.Sets,
		}
		err = tx.QueryRow(
			ctx,
			`INSERT INTO session_exercise (session_id, name, order_index, group_id, group_type, sets)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
			session.ID, ex.Name, i, ex.GroupID, ex.GroupType, setsJson,
		).Scan(&stored.ID)
		if err != nil {
			return nil, false, fmt.Errorf("insert exercise %q: %w", ex.Name, err)
		}

		session.Exercises = append(session.Exercises, stored)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	span.SetAttributes(attribute.Bool("session.created", created))

	return session, created, nil
}

// Get returns the session for a user and date, with its exercises in
// logging order.
func (r *Repo) Get(ctx context.Context, userID, date string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("date", date))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				s.id, s.user_id, s.date, s.day, s.week_number, s.created_at,
				e.id, e.name, e.order_index, e.group_id, e.group_type, e.sets
			FROM workout_session s
			LEFT JOIN session_exercise e ON e.session_id = s.id
			WHERE s.user_id = $1 AND s.date = $2
			ORDER BY e.order_index;`,
		userID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}

	return &sessions[0], nil
}

// ListAll returns every session of a user, ordered by date ascending,
// exercises in logging order within each session.
func (r *Repo) ListAll(ctx context.Context, userID string) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				s.id, s.user_id, s.date, s.day, s.week_number, s.created_at,
				e.id, e.name, e.order_index, e.group_id, e.group_type, e.sets
			FROM workout_session s
			LEFT JOIN session_exercise e ON e.session_id = s.id
			WHERE s.user_id = $1
			ORDER BY s.date, e.order_index;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sessions: %w", err)
	}
	return sessions, nil
}

// DeleteExercise removes a single exercise row from a user's session.
func (r *Repo) DeleteExercise(ctx context.Context, userID, date string, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.deleteexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("date", date))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM session_exercise e
			USING workout_session s
			WHERE e.session_id = s.id
				AND s.user_id = $1 AND s.date = $2 AND e.id = $3;`,
		userID, date, exerciseID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// DeleteSession removes a session and, via cascade, all its exercises.
func (r *Repo) DeleteSession(ctx context.Context, userID, date string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.deletesession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("date", date))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_session WHERE user_id = $1 AND date = $2;`,
		userID, date,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteAll wipes every session of a user. Used before a full re-import.
func (r *Repo) DeleteAll(ctx context.Context, userID string) (deleted int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.deleteall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_session WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	byID := make(map[int]int) // session id -> index in sessions
	for rows.Next() {
		var (
			id         int
			userID     string
			date       string
			day        string
			weekNumber int
			createdAt  time.Time

			exID         *int
			exName       *string
			exOrderIndex *int
			exGroupID    *string
			exGroupType  *string
			exSets       []byte
		)
		if err := rows.Scan(
			&id, &userID, &date, &day, &weekNumber, &createdAt,
			&exID, &exName, &exOrderIndex, &exGroupID, &exGroupType, &exSets,
		); err != nil {
			return nil, err
		}

		idx, ok := byID[id]
		if !ok {
			sessions = append(sessions, Session{
				ID:         id,
				UserID:     userID,
				Date:       date,
				Day:        workouts.Day(day),
				WeekNumber: weekNumber,
				CreatedAt:  createdAt,
			})
			idx = len(sessions) - 1
			byID[id] = idx
		}

		if exID == nil {
			// session without exercises, left join produced a null row
			continue
		}

		ex := StoredExercise{
			ID:         *exID,
			Name:       *exName,
			OrderIndex: *exOrderIndex,
		}
		if exGroupID != nil {
			ex.GroupID = *exGroupID
		}
		if exGroupType != nil {
			ex.GroupType = workouts.GroupType(*exGroupType)
		}
		if len(exSets) > 0 {
			if err := json.Unmarshal(exSets, &ex.Sets); err != nil {
				return nil, fmt.Errorf("unmarshal sets for exercise %d: %w", *exID, err)
			}
		}
		sessions[idx].Exercises = append(sessions[idx].Exercises, ex)
	}

	if sessions == nil {
		sessions = make([]Session, 0)
	}

	return sessions, nil
}
