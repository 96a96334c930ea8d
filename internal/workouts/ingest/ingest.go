package ingest

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workouts"
	"github.com/2beens/liftlog/internal/workouts/sessions"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=ingest_mocks_test.go -package=ingest_test

type workoutUpserter interface {
	SaveWorkout(ctx context.Context, userID string, workout workouts.Workout, superset bool) (*sessions.Session, bool, error)
}

// Result sums up one import run.
type Result struct {
	Total    int `json:"total"`
	Created  int `json:"created"`
	Replaced int `json:"replaced"`
}

// Importer pulls every workout out of a source and upserts them by date.
// Parsing happens up front: a structural error in the source aborts the
// run before the first write.
type Importer struct {
	upserter       workoutUpserter
	metricsManager *metrics.Manager
}

func NewImporter(upserter workoutUpserter, metricsManager *metrics.Manager) *Importer {
	return &Importer{
		upserter:       upserter,
		metricsManager: metricsManager,
	}
}

func (i *Importer) Run(ctx context.Context, userID string, source workouts.Source) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ingest.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	startedAt := time.Now()
	defer func() {
		i.metricsManager.HistImportDuration.Observe(time.Since(startedAt).Seconds())
	}()
	i.metricsManager.CounterWorkoutImports.Inc()

	allWorkouts, err := source.Workouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	span.SetAttributes(attribute.Int("workouts.count", len(allWorkouts)))
	log.Debugf("importing %d workouts for %s", len(allWorkouts), userID)

	result := &Result{}
	for _, workout := range allWorkouts {
		_, created, err := i.upserter.SaveWorkout(ctx, userID, workout, false)
		if err != nil {
			return nil, fmt.Errorf("save workout %s: %w", workout.Date, err)
		}
		i.metricsManager.CounterWorkoutsUpserted.Inc()
		result.Total++
		if created {
			result.Created++
		} else {
			result.Replaced++
		}
	}

	log.Infof(
		"import done for %s: %d workouts (%d new, %d replaced) in %s",
		userID, result.Total, result.Created, result.Replaced, time.Since(startedAt),
	)

	return result, nil
}
