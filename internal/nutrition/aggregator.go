package nutrition

import (
	"context"
	"fmt"
	"math"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type totalsStore interface {
	ListMeals(ctx context.Context, logID int) ([]MealLog, error)
	// UpdateTotals writes the totals onto the log owned by userID and returns the updated log,
	// ErrNutritionLogNotFound if there is no such log.
	UpdateTotals(ctx context.Context, userID, logID int, totals Totals) (*NutritionLog, error)
}

// SumMeals returns the element-wise sum over the meals. Decimal macros are rounded to one
// decimal place, the precision they are stored with.
func SumMeals(meals []MealLog) Totals {
	var totals Totals
	for _, m := range meals {
		totals.Calories += m.Calories
		totals.Protein += m.Protein
		totals.Carbs += m.Carbs
		totals.Fats += m.Fats
		totals.Fiber += m.Fiber
	}
	totals.Protein = round1(totals.Protein)
	totals.Carbs = round1(totals.Carbs)
	totals.Fats = round1(totals.Fats)
	totals.Fiber = round1(totals.Fiber)
	return totals
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Aggregator keeps the totals of a nutrition log equal to the sum of its meal logs.
// It never creates logs.
type Aggregator struct {
	store          totalsStore
	metricsManager *metrics.Manager
}

func NewAggregator(store totalsStore, metricsManager *metrics.Manager) *Aggregator {
	return &Aggregator{
		store:          store,
		metricsManager: metricsManager,
	}
}

// Recompute reads all meals of the log once and writes their sums back onto it.
// A log without meals ends up with zero totals.
func (a *Aggregator) Recompute(ctx context.Context, userID, logID int) (_ *NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.aggregator.recompute")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("nutrition_log.id", logID))

	meals, err := a.store.ListMeals(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("list meals of log %d: %w", logID, err)
	}

	totals := SumMeals(meals)
	nutritionLog, err := a.store.UpdateTotals(ctx, userID, logID, totals)
	if err != nil {
		return nil, fmt.Errorf("update totals of log %d: %w", logID, err)
	}

	a.metricsManager.CounterNutritionRecomputes.Inc()
	span.SetAttributes(
		attribute.Int("meals", len(meals)),
		attribute.Int("total_calories", totals.Calories),
	)

	return nutritionLog, nil
}
