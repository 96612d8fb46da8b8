package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS user_profiles (
	id             SERIAL PRIMARY KEY,
	user_id        INT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
	date_of_birth  DATE,
	gender         TEXT CHECK (gender IN ('M', 'F', 'O')),
	height         NUMERIC(5,2),
	current_weight NUMERIC(5,2),
	activity_level TEXT NOT NULL DEFAULT 'moderate',
	bio            TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS goals (
	id                  SERIAL PRIMARY KEY,
	user_id             INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	goal_type           TEXT NOT NULL,
	title               TEXT NOT NULL,
	description         TEXT NOT NULL DEFAULT '',
	target_weight       NUMERIC(5,2),
	target_date         DATE,
	status              TEXT NOT NULL DEFAULT 'active',
	progress_percentage INT NOT NULL DEFAULT 0 CHECK (progress_percentage BETWEEN 0 AND 100),
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	completed_at        TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS progress_logs (
	id                  SERIAL PRIMARY KEY,
	user_id             INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	date                DATE NOT NULL,
	weight              NUMERIC(5,2),
	body_fat_percentage NUMERIC(4,1),
	muscle_mass         NUMERIC(5,2),
	waist               NUMERIC(5,1),
	chest               NUMERIC(5,1),
	arms                NUMERIC(5,1),
	legs                NUMERIC(5,1),
	notes               TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, date)
);

CREATE TABLE IF NOT EXISTS achievements (
	id               SERIAL PRIMARY KEY,
	user_id          INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	achievement_type TEXT NOT NULL,
	title            TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	icon             TEXT NOT NULL DEFAULT '🏆',
	earned_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, achievement_type, title)
);

CREATE TABLE IF NOT EXISTS exercises (
	id                  SERIAL PRIMARY KEY,
	name                TEXT NOT NULL,
	description         TEXT NOT NULL DEFAULT '',
	category            TEXT NOT NULL,
	muscle_group        TEXT NOT NULL,
	difficulty          TEXT NOT NULL DEFAULT 'beginner',
	video_url           TEXT NOT NULL DEFAULT '',
	instructions        TEXT NOT NULL DEFAULT '',
	tips                TEXT NOT NULL DEFAULT '',
	equipment_needed    TEXT NOT NULL DEFAULT '',
	calories_per_minute NUMERIC(5,2) NOT NULL DEFAULT 5.0,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workouts (
	id                 SERIAL PRIMARY KEY,
	creator_id         INT REFERENCES users(id) ON DELETE CASCADE,
	name               TEXT NOT NULL,
	description        TEXT NOT NULL DEFAULT '',
	difficulty         TEXT NOT NULL,
	goal               TEXT NOT NULL,
	duration           INT NOT NULL,
	estimated_calories INT NOT NULL,
	is_public          BOOLEAN NOT NULL DEFAULT TRUE,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_exercises (
	id          SERIAL PRIMARY KEY,
	workout_id  INT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	exercise_id INT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
	position    INT NOT NULL DEFAULT 0,
	sets        INT NOT NULL DEFAULT 3,
	reps        INT,
	duration    INT,
	rest_time   INT NOT NULL DEFAULT 60,
	notes       TEXT NOT NULL DEFAULT '',
	UNIQUE (workout_id, exercise_id, position)
);

CREATE TABLE IF NOT EXISTS workout_sessions (
	id                SERIAL PRIMARY KEY,
	user_id           INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	workout_id        INT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	scheduled_date    DATE NOT NULL,
	started_at        TIMESTAMPTZ,
	completed_at      TIMESTAMPTZ,
	status            TEXT NOT NULL DEFAULT 'planned'
		CHECK (status IN ('planned', 'in_progress', 'completed', 'skipped')),
	duration_minutes  INT,
	calories_burned   INT,
	difficulty_rating INT CHECK (difficulty_rating BETWEEN 1 AND 5),
	notes             TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercise_logs (
	id               SERIAL PRIMARY KEY,
	session_id       INT NOT NULL REFERENCES workout_sessions(id) ON DELETE CASCADE,
	exercise_id      INT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
	sets_completed   INT NOT NULL DEFAULT 0,
	reps_completed   INT,
	weight_used      NUMERIC(6,2),
	duration_seconds INT,
	notes            TEXT NOT NULL DEFAULT '',
	completed        BOOLEAN NOT NULL DEFAULT FALSE,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (session_id, exercise_id)
);

CREATE TABLE IF NOT EXISTS personal_records (
	id          SERIAL PRIMARY KEY,
	user_id     INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	exercise_id INT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
	record_type TEXT NOT NULL,
	value       NUMERIC(8,2) NOT NULL,
	unit        TEXT NOT NULL,
	notes       TEXT NOT NULL DEFAULT '',
	achieved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, exercise_id, record_type)
);

CREATE TABLE IF NOT EXISTS recipes (
	id             SERIAL PRIMARY KEY,
	creator_id     INT REFERENCES users(id) ON DELETE CASCADE,
	name           TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	meal_type      TEXT NOT NULL,
	difficulty     TEXT NOT NULL DEFAULT 'easy',
	calories       INT NOT NULL,
	protein        NUMERIC(6,1) NOT NULL,
	carbs          NUMERIC(6,1) NOT NULL,
	fats           NUMERIC(6,1) NOT NULL,
	fiber          NUMERIC(5,1),
	servings       INT NOT NULL DEFAULT 1,
	prep_time      INT NOT NULL,
	cook_time      INT NOT NULL,
	ingredients    TEXT NOT NULL DEFAULT '',
	instructions   TEXT NOT NULL DEFAULT '',
	is_vegetarian  BOOLEAN NOT NULL DEFAULT FALSE,
	is_vegan       BOOLEAN NOT NULL DEFAULT FALSE,
	is_gluten_free BOOLEAN NOT NULL DEFAULT FALSE,
	is_dairy_free  BOOLEAN NOT NULL DEFAULT FALSE,
	is_public      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS meal_plans (
	id             SERIAL PRIMARY KEY,
	creator_id     INT REFERENCES users(id) ON DELETE CASCADE,
	name           TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	plan_type      TEXT NOT NULL,
	duration_days  INT NOT NULL DEFAULT 7 CHECK (duration_days > 0),
	daily_calories INT NOT NULL,
	daily_protein  NUMERIC(6,1) NOT NULL,
	daily_carbs    NUMERIC(6,1) NOT NULL,
	daily_fats     NUMERIC(6,1) NOT NULL,
	is_public      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS meal_plan_days (
	id           SERIAL PRIMARY KEY,
	meal_plan_id INT NOT NULL REFERENCES meal_plans(id) ON DELETE CASCADE,
	day_number   INT NOT NULL,
	notes        TEXT NOT NULL DEFAULT '',
	UNIQUE (meal_plan_id, day_number)
);

CREATE TABLE IF NOT EXISTS meal_plan_recipes (
	id               SERIAL PRIMARY KEY,
	meal_plan_day_id INT NOT NULL REFERENCES meal_plan_days(id) ON DELETE CASCADE,
	recipe_id        INT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
	meal_time        TEXT NOT NULL,
	servings         NUMERIC(4,1) NOT NULL DEFAULT 1.0,
	notes            TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS nutrition_logs (
	id             SERIAL PRIMARY KEY,
	user_id        INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	date           DATE NOT NULL,
	total_calories INT NOT NULL DEFAULT 0,
	total_protein  NUMERIC(7,1) NOT NULL DEFAULT 0,
	total_carbs    NUMERIC(7,1) NOT NULL DEFAULT 0,
	total_fats     NUMERIC(7,1) NOT NULL DEFAULT 0,
	total_fiber    NUMERIC(6,1) NOT NULL DEFAULT 0,
	water_intake   NUMERIC(4,1) NOT NULL DEFAULT 0,
	notes          TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, date)
);

CREATE TABLE IF NOT EXISTS meal_logs (
	id               SERIAL PRIMARY KEY,
	nutrition_log_id INT NOT NULL REFERENCES nutrition_logs(id) ON DELETE CASCADE,
	recipe_id        INT REFERENCES recipes(id) ON DELETE CASCADE,
	meal_type        TEXT NOT NULL,
	meal_name        TEXT NOT NULL,
	calories         INT NOT NULL,
	protein          NUMERIC(6,1) NOT NULL,
	carbs            NUMERIC(6,1) NOT NULL,
	fats             NUMERIC(6,1) NOT NULL,
	fiber            NUMERIC(5,1) NOT NULL DEFAULT 0,
	servings         NUMERIC(4,1) NOT NULL DEFAULT 1.0,
	time             TIME,
	notes            TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS food_items (
	id            SERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	category      TEXT NOT NULL,
	brand         TEXT NOT NULL DEFAULT '',
	serving_size  TEXT NOT NULL,
	calories      INT NOT NULL,
	protein       NUMERIC(6,1) NOT NULL,
	carbs         NUMERIC(6,1) NOT NULL,
	fats          NUMERIC(6,1) NOT NULL,
	fiber         NUMERIC(5,1),
	is_vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
	is_vegan      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_goals_user_status ON goals(user_id, status);
CREATE INDEX IF NOT EXISTS idx_workout_sessions_user_date ON workout_sessions(user_id, scheduled_date DESC);
CREATE INDEX IF NOT EXISTS idx_exercise_logs_exercise ON exercise_logs(exercise_id);
CREATE INDEX IF NOT EXISTS idx_meal_logs_nutrition_log ON meal_logs(nutrition_log_id);
CREATE INDEX IF NOT EXISTS idx_nutrition_logs_user_date ON nutrition_logs(user_id, date DESC);
CREATE INDEX IF NOT EXISTS idx_food_items_category ON food_items(category);
`

// Migrate ensures all tables exist and the exercise catalog is not empty.
// Safe to call on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema applied")

	seeded, err := SeedExercises(ctx, pool)
	if err != nil {
		return fmt.Errorf("seed exercises: %w", err)
	}
	if seeded > 0 {
		log.Infof("exercise catalog was empty, seeded %d starter exercises", seeded)
	}
	return nil
}
