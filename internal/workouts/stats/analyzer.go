package stats

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workouts"
	"github.com/2beens/liftlog/internal/workouts/sessions"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

type sessionsRepo interface {
	ListAll(ctx context.Context, userID string) ([]sessions.Session, error)
}

type muscleGroupLookup interface {
	Lookup(ctx context.Context, userID, exerciseName string) (string, bool, error)
}

// MuscleGroupOther is the bucket for exercises the lookup does not know.
const MuscleGroupOther = "Other"

// BestSet is a derived record, never persisted: the heaviest set of one
// exercise, recomputed on each query.
type BestSet struct {
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Volume       float64 `json:"volume"`
	Date         string  `json:"date"`
	MuscleGroup  string  `json:"muscleGroup"`
}

// Window narrows best-set queries to recent history. Zero value means
// all time; callers pick the unit, days and weeks just add up.
type Window struct {
	Days  int `json:"days"`
	Weeks int `json:"weeks"`
}

func (w Window) isZero() bool {
	return w.Days == 0 && w.Weeks == 0
}

type TrendPoint struct {
	Date          string  `json:"date"`
	MaxWeight     float64 `json:"maxWeight"`
	TotalVolume   float64 `json:"totalVolume"`
	TotalReps     int     `json:"totalReps"`
	AverageWeight float64 `json:"averageWeight"`
}

type WeekVolume struct {
	Week          string             `json:"week"` // ISO week key, YYYY-Www
	TotalVolume   float64            `json:"totalVolume"`
	ByMuscleGroup map[string]float64 `json:"byMuscleGroup"`
	ExerciseCount int                `json:"exerciseCount"`
}

type Summary struct {
	TotalSessions int      `json:"totalSessions"`
	TotalSets     int      `json:"totalSets"` // working sets only
	TotalVolume   float64  `json:"totalVolume"`
	ExerciseCount int      `json:"exerciseCount"`
	Exercises     []string `json:"exercises"` // distinct names, sorted
}

// Analyzer derives analytics from stored sessions. All operations are
// pure reads over the store as of call time. The muscle group lookup is
// optional: without one everything buckets under "Other".
type Analyzer struct {
	repo   sessionsRepo
	lookup muscleGroupLookup

	// Now exists so tests can pin the window cutoff.
	Now func() time.Time
}

func NewAnalyzer(repo sessionsRepo, lookup muscleGroupLookup) *Analyzer {
	return &Analyzer{
		repo:   repo,
		lookup: lookup,
		Now:    time.Now,
	}
}

// PersonalRecords returns the all-time best set per exercise, sorted by
// exercise name.
func (a *Analyzer) PersonalRecords(ctx context.Context, userID string) (_ []BestSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.prs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return a.bestSets(ctx, userID, Window{})
}

// BestSets returns the best set per exercise within the given lookback
// window, sorted by exercise name.
func (a *Analyzer) BestSets(ctx context.Context, userID string, window Window) (_ []BestSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.bestsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("window.days", window.Days))
	span.SetAttributes(attribute.Int("window.weeks", window.Weeks))
	return a.bestSets(ctx, userID, window)
}

func (a *Analyzer) bestSets(ctx context.Context, userID string, window Window) ([]BestSet, error) {
	all, err := a.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	cutoff := ""
	if !window.isZero() {
		days := window.Days + 7*window.Weeks
		cutoff = a.Now().AddDate(0, 0, -days).Format(workouts.DateLayout)
	}

	best := make(map[string]*BestSet) // lowercased name -> current winner
	for _, session := range all {
		if cutoff != "" && session.Date < cutoff {
			continue
		}
		for _, ex := range session.Exercises {
			key := strings.ToLower(ex.Name)
			for _, set := range ex.Sets {
				if set.IsWarmup {
					continue
				}
				current, ok := best[key]
				// weight first, reps as tiebreaker; first seen keeps full ties
				if ok && (set.Weight < current.Weight ||
					(set.Weight == current.Weight && set.Reps <= current.Reps)) {
					continue
				}
				best[key] = &BestSet{
					ExerciseName: ex.Name,
					Weight:       set.Weight,
					Reps:         set.Reps,
					Volume:       set.Volume(),
					Date:         session.Date,
				}
			}
		}
	}

	groupCache := make(map[string]string)
	records := make([]BestSet, 0, len(best))
	for _, b := range best {
		group, err := a.muscleGroupOf(ctx, userID, b.ExerciseName, groupCache)
		if err != nil {
			return nil, err
		}
		b.MuscleGroup = group
		records = append(records, *b)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ExerciseName < records[j].ExerciseName
	})

	return records, nil
}

// TrendSeries returns one point per session date containing the exercise
// (matched case-insensitively), date ascending. An occurrence with only
// warmup sets yields no point.
func (a *Analyzer) TrendSeries(ctx context.Context, userID, exerciseName string) (_ []TrendPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.trend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.name", exerciseName))

	all, err := a.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0)
	for _, session := range all {
		point := TrendPoint{Date: session.Date}
		var hasWorkingSets bool
		for _, ex := range session.Exercises {
			if !strings.EqualFold(ex.Name, exerciseName) {
				continue
			}
			for _, set := range ex.Sets {
				if set.IsWarmup {
					continue
				}
				hasWorkingSets = true
				if set.Weight > point.MaxWeight {
					point.MaxWeight = set.Weight
				}
				point.TotalVolume += set.Volume()
				point.TotalReps += set.Reps
			}
		}
		if !hasWorkingSets {
			continue
		}
		if point.TotalReps > 0 {
			point.AverageWeight = point.TotalVolume / float64(point.TotalReps)
		}
		points = append(points, point)
	}

	// ListAll comes back date ascending already, keep the guarantee local
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points, nil
}

// WeeklyVolume buckets all sessions into ISO weeks and sums working-set
// volume per bucket, overall and per muscle group, week keys ascending.
func (a *Analyzer) WeeklyVolume(ctx context.Context, userID string) (_ []WeekVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.weeklyvolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := a.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*WeekVolume)
	groupCache := make(map[string]string)
	for _, session := range all {
		week, err := ISOWeekKey(session.Date)
		if err != nil {
			return nil, err
		}
		bucket, ok := buckets[week]
		if !ok {
			bucket = &WeekVolume{
				Week:          week,
				ByMuscleGroup: make(map[string]float64),
			}
			buckets[week] = bucket
		}

		for _, ex := range session.Exercises {
			bucket.ExerciseCount++
			group, err := a.muscleGroupOf(ctx, userID, ex.Name, groupCache)
			if err != nil {
				return nil, err
			}
			for _, set := range ex.Sets {
				if set.IsWarmup {
					continue
				}
				bucket.TotalVolume += set.Volume()
				bucket.ByMuscleGroup[group] += set.Volume()
			}
		}
	}

	weekVolumes := make([]WeekVolume, 0, len(buckets))
	for _, bucket := range buckets {
		weekVolumes = append(weekVolumes, *bucket)
	}
	sort.Slice(weekVolumes, func(i, j int) bool {
		return weekVolumes[i].Week < weekVolumes[j].Week
	})

	return weekVolumes, nil
}

// GetSummary totals the full history: sessions, working sets, volume and
// the distinct exercise names ever logged.
func (a *Analyzer) GetSummary(ctx context.Context, userID string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := a.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	seen := make(map[string]string) // lowercased -> first seen spelling
	for _, session := range all {
		// a session can end up empty after its last exercise is deleted
		if len(session.Exercises) == 0 {
			continue
		}
		summary.TotalSessions++
		for _, ex := range session.Exercises {
			key := strings.ToLower(ex.Name)
			if _, ok := seen[key]; !ok {
				seen[key] = ex.Name
			}
			for _, set := range ex.Sets {
				if set.IsWarmup {
					continue
				}
				summary.TotalSets++
				summary.TotalVolume += set.Volume()
			}
		}
	}

	summary.ExerciseCount = len(seen)
	summary.Exercises = make([]string, 0, len(seen))
	for _, name := range seen {
		summary.Exercises = append(summary.Exercises, name)
	}
	sort.Strings(summary.Exercises)

	return summary, nil
}

// muscleGroupOf resolves one exercise name, memoizing within a single
// request via cache (keyed by lowercased name).
func (a *Analyzer) muscleGroupOf(
	ctx context.Context,
	userID, exerciseName string,
	cache map[string]string,
) (string, error) {
	key := strings.ToLower(exerciseName)
	if group, ok := cache[key]; ok {
		return group, nil
	}

	group := MuscleGroupOther
	if a.lookup != nil {
		resolved, found, err := a.lookup.Lookup(ctx, userID, exerciseName)
		if err != nil {
			return "", err
		}
		if found {
			group = resolved
		}
	}

	cache[key] = group
	return group, nil
}
