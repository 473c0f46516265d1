// ABOUTME: Leaderboard entry model for ranking users by point totals.
package models

// LeaderboardEntry is one user's position on the leaderboard.
type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	TotalPoints      int    `json:"total_points"`
	MetricsCompleted int    `json:"metrics_completed"`
}
