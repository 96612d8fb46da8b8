package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecordsRepo struct {
	db *pgxpool.Pool
}

func NewRecordsRepo(db *pgxpool.Pool) *RecordsRepo {
	return &RecordsRepo{
		db: db,
	}
}

const recordColumns = `
	pr.id, pr.user_id, pr.exercise_id, e.name, pr.record_type, pr.value, pr.unit, pr.notes, pr.achieved_at`

func scanRecord(row pgx.Row, pr *PersonalRecord) error {
	return row.Scan(
		&pr.ID, &pr.UserID, &pr.ExerciseID, &pr.ExerciseName, &pr.RecordType, &pr.Value, &pr.Unit,
		&pr.Notes, &pr.AchievedAt,
	)
}

func (r *RecordsRepo) GetRecord(ctx context.Context, userID, exerciseID int, recordType RecordType) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	record := &PersonalRecord{}
	row := r.db.QueryRow(ctx, `
		SELECT `+recordColumns+`
		FROM personal_records pr
		JOIN exercises e ON e.id = pr.exercise_id
		WHERE pr.user_id = $1 AND pr.exercise_id = $2 AND pr.record_type = $3
	`, userID, exerciseID, string(recordType))
	if err := scanRecord(row, record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func (r *RecordsRepo) CreateRecord(ctx context.Context, record *PersonalRecord) (_ *PersonalRecord, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO personal_records (user_id, exercise_id, record_type, value, unit, notes, achieved_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id, exercise_id, record_type) DO NOTHING
			RETURNING id, exercise_id
		)
		SELECT inserted.id, e.name
		FROM inserted
		JOIN exercises e ON e.id = inserted.exercise_id
	`,
		record.UserID, record.ExerciseID, string(record.RecordType), record.Value, record.Unit,
		record.Notes, record.AchievedAt,
	).Scan(&record.ID, &record.ExerciseName)
	if err == nil {
		return record, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, pkg.AsValidationError(err)
	}

	// conflict, someone else created the record first
	stored, err := r.GetRecord(ctx, record.UserID, record.ExerciseID, record.RecordType)
	if err != nil {
		return nil, false, fmt.Errorf("re-read record after conflict: %w", err)
	}
	return stored, false, nil
}

func (r *RecordsRepo) ImproveRecord(ctx context.Context, recordID int, candidate float64, direction Direction) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.improve")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var query string
	switch direction {
	case HigherIsBetter:
		query = `UPDATE personal_records SET value = $2, achieved_at = now() WHERE id = $1 AND value < $2`
	case LowerIsBetter:
		query = `UPDATE personal_records SET value = $2, achieved_at = now() WHERE id = $1 AND value > $2`
	default:
		return false, fmt.Errorf("unsupported record direction: %d", direction)
	}

	tag, err := r.db.Exec(ctx, query, recordID, candidate)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RecordsRepo) ListRecords(ctx context.Context, userID int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+recordColumns+`
		FROM personal_records pr
		JOIN exercises e ON e.id = pr.exercise_id
		WHERE pr.user_id = $1
		ORDER BY pr.achieved_at DESC, pr.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PersonalRecord
	for rows.Next() {
		var pr PersonalRecord
		if err := scanRecord(rows, &pr); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, pr)
	}

	return records, rows.Err()
}
