package service

import (
	"sort"
	"time"

	"arcade-scoreboard/internal/model"
)

// UserStats derives the full profile for a user, computed on demand from
// the store. The second return value is false if the user has never
// recorded a session.
func (s *Scoreboard) UserStats(username string) (*model.UserStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.Lookup(username)
	if !ok {
		return nil, false
	}

	stats := &model.UserStats{
		Username:          username,
		TotalScore:        user.TotalScore,
		TotalGames:        user.TotalGamesPlayed(),
		TotalPlaytime:     user.TotalPlaytime,
		AchievementsCount: len(user.Achievements),
		GamesPlayed:       user.DistinctGamesPlayed(),
		FavoriteGame:      s.favoriteGame(user),
		RecentActivity:    s.recentActivity(user, s.activityDays),
		GameStats:         make(map[string]model.GameStats),
	}

	for _, id := range s.gameOrder(user) {
		rec := user.Games[id]
		if rec == nil || rec.GamesPlayed == 0 {
			continue
		}
		gs := model.GameStats{
			Name:         s.registry.DisplayName(id),
			GamesPlayed:  rec.GamesPlayed,
			HighScore:    rec.HighScore,
			AverageScore: float64(rec.TotalScore) / float64(rec.GamesPlayed),
		}
		if last := rec.LastSession(); last != nil {
			ts := last.Timestamp
			gs.LastPlayed = &ts
		}
		stats.GameStats[id] = gs
	}

	return stats, true
}

// favoriteGame returns the id of the game with the most plays. Ties go to
// the first maximum in registry order; empty string if nothing was played.
func (s *Scoreboard) favoriteGame(user *model.User) string {
	favorite := ""
	maxPlayed := 0
	for _, id := range s.gameOrder(user) {
		rec := user.Games[id]
		if rec != nil && rec.GamesPlayed > maxPlayed {
			maxPlayed = rec.GamesPlayed
			favorite = id
		}
	}
	return favorite
}

// recentActivity collects all sessions within the window across all games,
// annotated with the game display name, newest first.
func (s *Scoreboard) recentActivity(user *model.User, days int) []model.ActivityEntry {
	cutoff := s.now().AddDate(0, 0, -days)

	entries := []model.ActivityEntry{}
	for _, id := range s.gameOrder(user) {
		rec := user.Games[id]
		if rec == nil {
			continue
		}
		name := s.registry.DisplayName(id)
		for _, sess := range rec.Sessions {
			if sess.Timestamp.Before(cutoff) {
				continue
			}
			entries = append(entries, model.ActivityEntry{
				Game:  name,
				Score: sess.Score,
				Date:  sess.Timestamp,
				Won:   sess.Won,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

// gameOrder returns the user's game ids in derivation order: the registry
// order first, then any ad-hoc ids sorted for determinism.
func (s *Scoreboard) gameOrder(user *model.User) []string {
	ids := s.registry.IDs()
	registered := make(map[string]bool, len(ids))
	for _, id := range ids {
		registered[id] = true
	}

	var extras []string
	for id := range user.Games {
		if !registered[id] {
			extras = append(extras, id)
		}
	}
	sort.Strings(extras)

	return append(ids, extras...)
}

// LastPlayedAt returns the timestamp of the user's most recent session for
// one game, if any.
func (s *Scoreboard) LastPlayedAt(username, gameID string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.store.Lookup(username)
	if !ok {
		return time.Time{}, false
	}
	rec, ok := user.Games[gameID]
	if !ok {
		return time.Time{}, false
	}
	last := rec.LastSession()
	if last == nil {
		return time.Time{}, false
	}
	return last.Timestamp, true
}
