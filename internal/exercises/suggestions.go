package exercises

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"go.opentelemetry.io/otel/attribute"
)

const (
	suggestionsKeyPrefix = "liftlog-exercise-suggestions||"
	suggestionsTTL       = 10 * time.Minute
)

//go:generate mockgen -source=$GOFILE -destination=suggestions_mocks_test.go -package=exercises_test

type entriesLister interface {
	List(ctx context.Context, userID string) ([]Entry, error)
}

// Suggestions serves the known exercise names of a user for typeahead,
// cached in redis with a short TTL and refreshed from the repo on miss.
type Suggestions struct {
	repo entriesLister
	rdb  *redis.Client
}

func NewSuggestions(repo entriesLister, rdb *redis.Client) *Suggestions {
	return &Suggestions{
		repo: repo,
		rdb:  rdb,
	}
}

func (s *Suggestions) Get(ctx context.Context, userID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercises.suggestions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	key := suggestionsKeyPrefix + userID
	cached, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var names []string
		if err := json.Unmarshal([]byte(cached), &names); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return names, nil
		}
		log.Warnf("corrupt suggestions cache for %s, refreshing", userID)
	} else if err != redis.Nil {
		// redis being down should not break suggestions
		log.Errorf("get suggestions from cache: %s", err)
	}

	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	namesJson, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("marshal names: %w", err)
	}
	if err := s.rdb.Set(ctx, key, namesJson, suggestionsTTL).Err(); err != nil {
		log.Errorf("cache suggestions: %s", err)
	}

	return names, nil
}

// Invalidate drops the cached names, called after the entry list changes.
func (s *Suggestions) Invalidate(ctx context.Context, userID string) {
	if err := s.rdb.Del(ctx, suggestionsKeyPrefix+userID).Err(); err != nil {
		log.Errorf("invalidate suggestions cache for %s: %s", userID, err)
	}
}
