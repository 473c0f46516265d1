// ABOUTME: Leaderboard ranking over user point totals.
// ABOUTME: Competition ranking: ties share a rank, the next rank skips past them.
package leaderboard

import (
	"sort"

	"github.com/harperreed/stride/internal/models"
)

// Rank orders entries by total points descending and assigns ranks.
// Ties on points are broken by metrics completed, then username; entries
// that tie on both points and completions share a rank. The input slice
// is not modified.
func Rank(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	ranked := make([]models.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalPoints != ranked[j].TotalPoints {
			return ranked[i].TotalPoints > ranked[j].TotalPoints
		}
		if ranked[i].MetricsCompleted != ranked[j].MetricsCompleted {
			return ranked[i].MetricsCompleted > ranked[j].MetricsCompleted
		}
		return ranked[i].Username < ranked[j].Username
	})

	for i := range ranked {
		if i > 0 &&
			ranked[i].TotalPoints == ranked[i-1].TotalPoints &&
			ranked[i].MetricsCompleted == ranked[i-1].MetricsCompleted {
			ranked[i].Rank = ranked[i-1].Rank
			continue
		}
		ranked[i].Rank = i + 1
	}

	return ranked
}

// FromDailyTotals builds unranked entries from daily totals, resolving
// display names through the names map (user ID is the fallback).
func FromDailyTotals(totals []models.DailyTotal, names map[string]string) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(totals))
	for _, t := range totals {
		name := names[t.UserID]
		if name == "" {
			name = t.UserID
		}
		entries = append(entries, models.LeaderboardEntry{
			UserID:           t.UserID,
			Username:         name,
			TotalPoints:      t.TotalPoints,
			MetricsCompleted: t.MetricsCompleted,
		})
	}
	return entries
}
