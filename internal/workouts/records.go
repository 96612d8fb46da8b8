package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"go.opentelemetry.io/otel/attribute"
)

type RecordType string

// personal_records.value is NUMERIC(8,2), candidates are compared the way they are stored.
const recordScale = 2

const (
	RecordWeight   RecordType = "weight"
	RecordReps     RecordType = "reps"
	RecordDuration RecordType = "duration"
	RecordDistance RecordType = "distance"
)

// Direction declares which of two record values is the better one.
type Direction int

const (
	HigherIsBetter Direction = iota + 1
	LowerIsBetter
)

func (d Direction) Better(candidate, current float64) bool {
	switch d {
	case HigherIsBetter:
		return candidate > current
	case LowerIsBetter:
		return candidate < current
	}
	return false
}

type RecordPolicies map[RecordType]Direction

func DefaultRecordPolicies() RecordPolicies {
	return RecordPolicies{
		RecordWeight:   HigherIsBetter,
		RecordReps:     HigherIsBetter,
		RecordDuration: HigherIsBetter,
		RecordDistance: HigherIsBetter,
	}
}

type PersonalRecord struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	ExerciseID   int        `json:"exercise_id"`
	ExerciseName string     `json:"exercise_name,omitempty"`
	RecordType   RecordType `json:"record_type"`
	Value        float64    `json:"value"`
	Unit         string     `json:"unit"`
	Notes        string     `json:"notes"`
	AchievedAt   time.Time  `json:"achieved_at"`
}

type RecordOutcome string

const (
	RecordCreated   RecordOutcome = "created"
	RecordImproved  RecordOutcome = "improved"
	RecordUnchanged RecordOutcome = "unchanged"
)

type EvaluationResult struct {
	Outcome RecordOutcome   `json:"outcome"`
	Record  *PersonalRecord `json:"record"`
	// Previous is the value before an improvement, zero otherwise.
	Previous float64 `json:"previous,omitempty"`
}

// NewRecord reports whether an existing record was beaten. The very first
// value for a key creates the record but is not announced.
func (r EvaluationResult) NewRecord() bool {
	return r.Outcome == RecordImproved
}

type recordStore interface {
	GetRecord(ctx context.Context, userID, exerciseID int, recordType RecordType) (*PersonalRecord, error)
	// CreateRecord inserts the record unless the key already exists.
	// On conflict it returns created=false and the stored row.
	CreateRecord(ctx context.Context, record *PersonalRecord) (_ *PersonalRecord, created bool, err error)
	// ImproveRecord stores the candidate only if it is still better than the
	// stored value, it reports whether the row was updated.
	ImproveRecord(ctx context.Context, recordID int, candidate float64, direction Direction) (bool, error)
}

type RecordEvaluator struct {
	store    recordStore
	policies RecordPolicies
	now      func() time.Time
}

func NewRecordEvaluator(store recordStore, policies RecordPolicies) *RecordEvaluator {
	if policies == nil {
		policies = DefaultRecordPolicies()
	}
	return &RecordEvaluator{
		store:    store,
		policies: policies,
		now:      time.Now,
	}
}

func (e *RecordEvaluator) Evaluate(
	ctx context.Context,
	userID, exerciseID int,
	recordType RecordType,
	candidate float64,
	unit string,
) (_ EvaluationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.evaluate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("exercise.id", exerciseID),
		attribute.String("record.type", string(recordType)),
	)

	direction, ok := e.policies[recordType]
	if !ok {
		return EvaluationResult{}, fmt.Errorf("%w: %s", ErrUnknownRecordType, recordType)
	}
	candidate = pkg.RoundNumeric(candidate, recordScale)

	current, err := e.store.GetRecord(ctx, userID, exerciseID, recordType)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return EvaluationResult{}, fmt.Errorf("get record: %w", err)
	}

	if current == nil {
		created, wasCreated, err := e.store.CreateRecord(ctx, &PersonalRecord{
			UserID:     userID,
			ExerciseID: exerciseID,
			RecordType: recordType,
			Value:      candidate,
			Unit:       unit,
			AchievedAt: e.now(),
		})
		if err != nil {
			return EvaluationResult{}, fmt.Errorf("create record: %w", err)
		}
		if wasCreated {
			return EvaluationResult{Outcome: RecordCreated, Record: created}, nil
		}
		// lost the race, evaluate against the stored row
		current = created
	}

	if !direction.Better(candidate, current.Value) {
		return EvaluationResult{Outcome: RecordUnchanged, Record: current}, nil
	}

	improved, err := e.store.ImproveRecord(ctx, current.ID, candidate, direction)
	if err != nil {
		return EvaluationResult{}, fmt.Errorf("improve record %d: %w", current.ID, err)
	}
	if !improved {
		// a concurrent evaluation stored an even better value
		return EvaluationResult{Outcome: RecordUnchanged, Record: current}, nil
	}

	previous := current.Value
	updated := *current
	updated.Value = candidate
	updated.AchievedAt = e.now()

	return EvaluationResult{
		Outcome:  RecordImproved,
		Record:   &updated,
		Previous: previous,
	}, nil
}
