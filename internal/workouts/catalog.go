package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	megabyte               = 1024 * 1024
	defaultCatalogCacheTTL = 10 * time.Minute
)

type exerciseSource interface {
	GetExercise(ctx context.Context, id int) (*Exercise, error)
	ListExercises(ctx context.Context, filter ExerciseFilter) ([]Exercise, error)
}

// ExerciseCatalog is a read-through cache in front of the exercises table.
// The catalog is effectively static, entries only expire.
type ExerciseCatalog struct {
	source   exerciseSource
	cache    *freecache.Cache
	cacheTTL int // seconds
}

func NewExerciseCatalog(source exerciseSource, cacheSizeMB int, cacheTTL time.Duration) *ExerciseCatalog {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 8
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCatalogCacheTTL
	}
	return &ExerciseCatalog{
		source:   source,
		cache:    freecache.NewCache(cacheSizeMB * megabyte),
		cacheTTL: int(cacheTTL.Seconds()),
	}
}

func (c *ExerciseCatalog) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.exercises.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	cacheKey := fmt.Sprintf("exercise::%d", id)
	exercise := &Exercise{}
	if c.fromCache(cacheKey, exercise) {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return exercise, nil
	}

	exercise, err = c.source.GetExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	c.toCache(cacheKey, exercise)

	return exercise, nil
}

func (c *ExerciseCatalog) List(ctx context.Context, filter ExerciseFilter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.exercises.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	cacheKey := fmt.Sprintf(
		"exercises::%s::%s::%s::%s",
		filter.Category, filter.MuscleGroup, filter.Difficulty, filter.Query,
	)
	var exercises []Exercise
	if c.fromCache(cacheKey, &exercises) {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return exercises, nil
	}

	exercises, err = c.source.ListExercises(ctx, filter)
	if err != nil {
		return nil, err
	}
	c.toCache(cacheKey, exercises)

	return exercises, nil
}

func (c *ExerciseCatalog) fromCache(key string, dst any) bool {
	cached, err := c.cache.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cached, dst); err != nil {
		log.Errorf("unmarshal cached [%s]: %s", key, err)
		c.cache.Del([]byte(key))
		return false
	}
	log.Tracef("exercise catalog cache hit: %s", key)
	return true
}

func (c *ExerciseCatalog) toCache(key string, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal [%s] for cache: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), valueBytes, c.cacheTTL); err != nil {
		log.Errorf("failed to write exercise catalog cache [%s]: %s", key, err)
	}
}
