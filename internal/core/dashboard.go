package core

import (
	"math"
	"time"
)

const dashboardWindowDays = 7

type DashboardStats struct {
	WorkoutsCompleted int `json:"workouts_completed"`
	WorkoutsPlanned   int `json:"workouts_planned"`
	WorkoutPercentage int `json:"workout_percentage"`
	CaloriesBurned    int `json:"calories_burned"`
	ActiveDays        int `json:"active_days"`
}

type Dashboard struct {
	Stats              DashboardStats `json:"stats"`
	ActiveGoals        []Goal         `json:"active_goals"`
	RecentProgress     []ProgressLog  `json:"recent_progress"`
	RecentAchievements []Achievement  `json:"recent_achievements"`
}

// ComputeDashboardStats summarizes the sessions of the dashboard window. Every session counts as
// planned; calories and active days come from completed sessions only.
func ComputeDashboardStats(sessions []SessionSummary) DashboardStats {
	stats := DashboardStats{WorkoutsPlanned: len(sessions)}
	activeDays := make(map[time.Time]struct{})
	for _, s := range sessions {
		if s.Status != "completed" {
			continue
		}
		stats.WorkoutsCompleted++
		if s.CaloriesBurned != nil {
			stats.CaloriesBurned += *s.CaloriesBurned
		}
		activeDays[s.ScheduledDate] = struct{}{}
	}
	stats.ActiveDays = len(activeDays)
	if stats.WorkoutsPlanned > 0 {
		pct := float64(stats.WorkoutsCompleted) * 100 / float64(stats.WorkoutsPlanned)
		stats.WorkoutPercentage = int(math.Round(pct))
	}
	return stats
}
