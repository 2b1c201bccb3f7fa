package service

import (
	"sort"

	"arcade-scoreboard/internal/model"
)

// Leaderboard returns ranked entries, highest score first. With a gameID it
// ranks by that game's high score among users who have played it; with an
// empty gameID it ranks by total score among users who have played anything.
// Ties keep the users' original insertion order (stable sort). limit <= 0
// falls back to the configured default. An empty board is not an error.
func (s *Scoreboard) Leaderboard(gameID string, limit int) []model.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = s.defaultLimit
	}

	entries := []model.LeaderboardEntry{}
	for _, username := range s.store.Usernames() {
		user, ok := s.store.Lookup(username)
		if !ok {
			continue
		}

		if gameID != "" {
			rec, ok := user.Games[gameID]
			if !ok || rec.GamesPlayed == 0 {
				continue
			}
			entries = append(entries, model.LeaderboardEntry{
				Username:    username,
				Score:       rec.HighScore,
				GamesPlayed: rec.GamesPlayed,
			})
			continue
		}

		totalGames := user.TotalGamesPlayed()
		if totalGames == 0 {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			Username:     username,
			Score:        user.TotalScore,
			GamesPlayed:  totalGames,
			Achievements: len(user.Achievements),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// GlobalStats aggregates across every user: counts, score totals, the most
// popular game, and per-user averages. Averages are 0 with no users.
func (s *Scoreboard) GlobalStats() model.GlobalStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := model.GlobalStats{TotalUsers: len(s.store.Users)}

	popularity := make(map[string]int)
	for _, username := range s.store.Usernames() {
		user, ok := s.store.Lookup(username)
		if !ok {
			continue
		}
		stats.TotalScore += user.TotalScore
		for id, rec := range user.Games {
			stats.TotalGamesPlayed += rec.GamesPlayed
			popularity[id] += rec.GamesPlayed
		}
	}

	stats.MostPopularGame = mostPopular(popularity, s.registry.IDs())

	if stats.TotalUsers > 0 {
		stats.AvgScorePerUser = float64(stats.TotalScore) / float64(stats.TotalUsers)
		stats.AvgGamesPerUser = float64(stats.TotalGamesPlayed) / float64(stats.TotalUsers)
	}

	return stats
}

// mostPopular picks the game id with the highest summed play count. Ties go
// to the first maximum in registry order; ad-hoc ids are considered after
// the registry, sorted.
func mostPopular(popularity map[string]int, registryIDs []string) string {
	registered := make(map[string]bool, len(registryIDs))
	order := make([]string, 0, len(popularity))
	for _, id := range registryIDs {
		registered[id] = true
		order = append(order, id)
	}

	var extras []string
	for id := range popularity {
		if !registered[id] {
			extras = append(extras, id)
		}
	}
	sort.Strings(extras)
	order = append(order, extras...)

	best := ""
	maxPlayed := 0
	for _, id := range order {
		if popularity[id] > maxPlayed {
			maxPlayed = popularity[id]
			best = id
		}
	}
	return best
}
