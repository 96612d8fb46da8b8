package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const profileColumns = `
	id, user_id, date_of_birth, gender, height, current_weight, activity_level, bio, created_at, updated_at`

func scanProfile(row pgx.Row, p *Profile) error {
	var gender *string
	if err := row.Scan(
		&p.ID, &p.UserID, &p.DateOfBirth, &gender, &p.Height, &p.CurrentWeight, &p.ActivityLevel, &p.Bio,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return err
	}
	if gender != nil {
		g := Gender(*gender)
		p.Gender = &g
	}
	return nil
}

func (r *Repo) GetProfile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.profile.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	profile := &Profile{}
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID)
	if err := scanProfile(row, profile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, profile *Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.profile.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var gender *string
	if profile.Gender != nil {
		g := string(*profile.Gender)
		gender = &g
	}

	updated := &Profile{}
	row := r.db.QueryRow(ctx, `
		UPDATE user_profiles
		SET date_of_birth = $2, gender = $3, height = $4, current_weight = $5, activity_level = $6, bio = $7,
			updated_at = now()
		WHERE user_id = $1
		RETURNING `+profileColumns,
		profile.UserID, profile.DateOfBirth, gender, profile.Height, profile.CurrentWeight,
		string(profile.ActivityLevel), profile.Bio,
	)
	if err := scanProfile(row, updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, pkg.AsValidationError(err)
	}
	return updated, nil
}

const goalColumns = `
	id, user_id, goal_type, title, description, target_weight, target_date, status, progress_percentage,
	created_at, updated_at, completed_at`

func scanGoal(row pgx.Row, g *Goal) error {
	return row.Scan(
		&g.ID, &g.UserID, &g.GoalType, &g.Title, &g.Description, &g.TargetWeight, &g.TargetDate, &g.Status,
		&g.ProgressPercentage, &g.CreatedAt, &g.UpdatedAt, &g.CompletedAt,
	)
}

// ListGoals returns the goals of the user, newest first. An empty status matches all.
func (r *Repo) ListGoals(ctx context.Context, userID int, status GoalStatus) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.goals.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, id DESC
	`, userID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := scanGoal(rows, &g); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (r *Repo) GetGoal(ctx context.Context, userID, goalID int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.goals.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	goal := &Goal{}
	row := r.db.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err := scanGoal(row, goal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (r *Repo) CreateGoal(ctx context.Context, goal *Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.goals.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO goals (user_id, goal_type, title, description, target_weight, target_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, progress_percentage, created_at, updated_at
	`,
		goal.UserID, string(goal.GoalType), goal.Title, goal.Description, goal.TargetWeight, goal.TargetDate,
		string(goal.Status),
	).Scan(&goal.ID, &goal.ProgressPercentage, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return nil, pkg.AsValidationError(err)
	}
	return goal, nil
}

func (r *Repo) UpdateGoal(ctx context.Context, goal *Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.goals.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	updated := &Goal{}
	row := r.db.QueryRow(ctx, `
		UPDATE goals
		SET status = $3, progress_percentage = $4, completed_at = $5, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+goalColumns,
		goal.ID, goal.UserID, string(goal.Status), goal.ProgressPercentage, goal.CompletedAt,
	)
	if err := scanGoal(row, updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return updated, nil
}

const progressColumns = `
	id, user_id, date, weight, body_fat_percentage, muscle_mass, waist, chest, arms, legs, notes, created_at`

// ListProgress returns the progress logs of the user, latest date first. limit <= 0 returns all.
func (r *Repo) ListProgress(ctx context.Context, userID, limit int) (_ []ProgressLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.progress.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var limitArg *int
	if limit > 0 {
		limitArg = &limit
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+progressColumns+`
		FROM progress_logs
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`, userID, limitArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []ProgressLog
	for rows.Next() {
		var l ProgressLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Date, &l.Weight, &l.BodyFatPercentage, &l.MuscleMass, &l.Waist, &l.Chest,
			&l.Arms, &l.Legs, &l.Notes, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

// CreateProgressLog stores the entry and, when it carries a weight, copies it onto the profile
// in the same transaction.
func (r *Repo) CreateProgressLog(ctx context.Context, progressLog *ProgressLog) (_ *ProgressLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.progress.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO progress_logs
			(user_id, date, weight, body_fat_percentage, muscle_mass, waist, chest, arms, legs, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING id, created_at
	`,
		progressLog.UserID, progressLog.Date, progressLog.Weight, progressLog.BodyFatPercentage,
		progressLog.MuscleMass, progressLog.Waist, progressLog.Chest, progressLog.Arms, progressLog.Legs,
		progressLog.Notes,
	).Scan(&progressLog.ID, &progressLog.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgressLogExists
		}
		return nil, fmt.Errorf("insert progress log: %w", pkg.AsValidationError(err))
	}

	if progressLog.Weight != nil {
		if _, err = tx.Exec(ctx, `
			UPDATE user_profiles SET current_weight = $2, updated_at = now() WHERE user_id = $1
		`, progressLog.UserID, *progressLog.Weight); err != nil {
			return nil, fmt.Errorf("update profile weight: %w", err)
		}
	}

	return progressLog, nil
}

// ListAchievements returns the achievements of the user, latest first. limit <= 0 returns all.
func (r *Repo) ListAchievements(ctx context.Context, userID, limit int) (_ []Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.achievements.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var limitArg *int
	if limit > 0 {
		limitArg = &limit
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, achievement_type, title, description, icon, earned_at
		FROM achievements
		WHERE user_id = $1
		ORDER BY earned_at DESC, id DESC
		LIMIT $2
	`, userID, limitArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.AchievementType, &a.Title, &a.Description, &a.Icon, &a.EarnedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}

// AwardAchievement stores the achievement unless the user already holds one with the same type and title.
// It reports whether a new row was created.
func (r *Repo) AwardAchievement(ctx context.Context, achievement *Achievement) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.achievements.award")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO achievements (user_id, achievement_type, title, description, icon)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, achievement_type, title) DO NOTHING
		RETURNING id, earned_at
	`,
		achievement.UserID, string(achievement.AchievementType), achievement.Title, achievement.Description,
		achievement.Icon,
	).Scan(&achievement.ID, &achievement.EarnedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SessionsBetween returns the workout sessions of the user scheduled within [from, to].
func (r *Repo) SessionsBetween(ctx context.Context, userID int, from, to time.Time) (_ []SessionSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.core.sessions.between")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT scheduled_date, status, calories_burned
		FROM workout_sessions
		WHERE user_id = $1 AND scheduled_date BETWEEN $2 AND $3
		ORDER BY scheduled_date DESC, id DESC
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.ScheduledDate, &s.Status, &s.CaloriesBurned); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
