package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workouts"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Upsert(ctx context.Context, userID string, workout workouts.Workout) (*Session, bool, error)
	Get(ctx context.Context, userID, date string) (*Session, error)
	ListAll(ctx context.Context, userID string) ([]Session, error)
	DeleteExercise(ctx context.Context, userID, date string, exerciseID int) error
	DeleteSession(ctx context.Context, userID, date string) error
	DeleteAll(ctx context.Context, userID string) (int, error)
}

var ErrInvalidWorkout = errors.New("invalid workout")

// Service sits between the HTTP handler (or the importer) and the sessions
// repo. It validates incoming workouts and assigns superset group IDs before
// they are stored.
type Service struct {
	repo sessionsRepo

	// NewGroupID exists so tests can pin group IDs.
	NewGroupID func() string
}

func NewService(repo sessionsRepo) *Service {
	return &Service{
		repo:       repo,
		NewGroupID: uuid.NewString,
	}
}

// SaveWorkout validates and stores a workout for the user. When superset is
// set, all exercises of the workout share one freshly generated group ID.
// Exercises carrying the same non-empty group label also share one fresh ID,
// a distinct one per label.
func (s *Service) SaveWorkout(
	ctx context.Context,
	userID string,
	workout workouts.Workout,
	superset bool,
) (_ *Session, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("workout.date", workout.Date))
	span.SetAttributes(attribute.Bool("superset", superset))

	if err := validateWorkout(&workout); err != nil {
		return nil, false, err
	}

	if superset {
		groupID := s.NewGroupID()
		for i := range workout.Exercises {
			workout.Exercises[i].GroupID = groupID
			workout.Exercises[i].GroupType = workouts.GroupTypeSuperset
		}
	} else {
		s.assignLabelGroups(workout.Exercises)
	}

	return s.repo.Upsert(ctx, userID, workout)
}

// assignLabelGroups gives exercises sharing a group label a common fresh
// group ID. Labels are scoped to a single workout, so IDs never collide
// across dates.
func (s *Service) assignLabelGroups(exercises []workouts.Exercise) {
	labelIDs := make(map[string]string)
	for i := range exercises {
		label := exercises[i].GroupLabel
		if label == "" {
			continue
		}
		id, ok := labelIDs[label]
		if !ok {
			id = s.NewGroupID()
			labelIDs[label] = id
		}
		exercises[i].GroupID = id
		exercises[i].GroupType = workouts.GroupTypeSuperset
	}
}

func (s *Service) Get(ctx context.Context, userID, date string) (*Session, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.get")
	defer span.End()
	return s.repo.Get(ctx, userID, date)
}

func (s *Service) ListAll(ctx context.Context, userID string) ([]Session, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.listall")
	defer span.End()
	return s.repo.ListAll(ctx, userID)
}

func (s *Service) DeleteExercise(ctx context.Context, userID, date string, exerciseID int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.deleteexercise")
	defer span.End()
	return s.repo.DeleteExercise(ctx, userID, date, exerciseID)
}

func (s *Service) DeleteSession(ctx context.Context, userID, date string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.deletesession")
	defer span.End()
	return s.repo.DeleteSession(ctx, userID, date)
}

func (s *Service) DeleteAll(ctx context.Context, userID string) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.deleteall")
	defer span.End()
	return s.repo.DeleteAll(ctx, userID)
}

func validateWorkout(w *workouts.Workout) error {
	if _, err := time.Parse(workouts.DateLayout, w.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidWorkout, w.Date)
	}
	if w.Day == "" {
		day, err := workouts.DayOfDate(w.Date)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidWorkout, err)
		}
		w.Day = day
	} else {
		day, err := workouts.ParseDay(string(w.Day))
		if err != nil {
			return fmt.Errorf("%w: bad day %q", ErrInvalidWorkout, w.Day)
		}
		w.Day = day
	}
	for _, ex := range w.Exercises {
		if ex.Name == "" {
			return fmt.Errorf("%w: exercise with empty name", ErrInvalidWorkout)
		}
	}
	return nil
}
