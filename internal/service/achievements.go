package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"arcade-scoreboard/internal/model"
)

// Achievement thresholds.
const (
	veteranGames   = 10
	highScoreMark  = 1000
	explorerGames  = 3
	dedicatedGames = 50
	masterScore    = 10000
)

// snapshot is the state an achievement predicate sees: the post-update user
// and game record plus the session that was just appended. Predicates are
// pure functions of this snapshot; they capture no live state.
type snapshot struct {
	user    *model.User
	game    *model.GameRecord
	session model.Session
}

// descriptor is one achievement as data: a stable id, display strings, and
// a predicate over the snapshot.
type descriptor struct {
	id          string
	name        string
	description string
	satisfied   func(snap snapshot) bool
}

// descriptors builds the fixed achievement table for one recorded session.
// Per-game ids embed the game id, so each game carries its own first-play,
// veteran, and high-scorer milestones; the last three are global.
func descriptors(gameID, gameName string) []descriptor {
	return []descriptor{
		{
			id:          fmt.Sprintf("first_%s", gameID),
			name:        fmt.Sprintf("First %s Game", gameName),
			description: fmt.Sprintf("Played your first game of %s", gameName),
			satisfied: func(snap snapshot) bool {
				return snap.game.GamesPlayed == 1
			},
		},
		{
			id:          fmt.Sprintf("%s_veteran", gameID),
			name:        fmt.Sprintf("%s Veteran", gameName),
			description: fmt.Sprintf("Played %d games of %s", veteranGames, gameName),
			satisfied: func(snap snapshot) bool {
				return snap.game.GamesPlayed >= veteranGames
			},
		},
		{
			id:          fmt.Sprintf("%s_high_scorer", gameID),
			name:        fmt.Sprintf("%s High Scorer", gameName),
			description: fmt.Sprintf("Achieved a score of %d+ in %s", highScoreMark, gameName),
			satisfied: func(snap snapshot) bool {
				return snap.session.Score >= highScoreMark
			},
		},
		{
			id:          "game_explorer",
			name:        "🎮 Game Explorer",
			description: fmt.Sprintf("Played at least %d different games", explorerGames),
			satisfied: func(snap snapshot) bool {
				return snap.user.DistinctGamesPlayed() >= explorerGames
			},
		},
		{
			id:          "dedicated_player",
			name:        "🏆 Dedicated Player",
			description: fmt.Sprintf("Played %d games total across all games", dedicatedGames),
			satisfied: func(snap snapshot) bool {
				return snap.user.TotalGamesPlayed() >= dedicatedGames
			},
		},
		{
			id:          "score_master",
			name:        "⭐ Score Master",
			description: fmt.Sprintf("Achieved a total score of %d across all games", masterScore),
			satisfied: func(snap snapshot) bool {
				return snap.user.TotalScore >= masterScore
			},
		},
	}
}

// evaluateAchievements runs every descriptor against the post-update state
// and grants the ones newly satisfied. Already-unlocked ids are skipped, so
// unlocking is idempotent. A predicate that panics is treated as
// not-satisfied; one broken achievement never blocks recording.
func (s *Scoreboard) evaluateAchievements(user *model.User, gameID string, rec *model.GameRecord, session model.Session) []model.Achievement {
	snap := snapshot{user: user, game: rec, session: session}

	var unlocked []model.Achievement
	for _, d := range descriptors(gameID, s.registry.DisplayName(gameID)) {
		if user.HasAchievement(d.id) {
			continue
		}
		if !evaluate(d, snap) {
			continue
		}
		if user.GrantAchievement(d.id) {
			unlocked = append(unlocked, model.Achievement{
				ID:          d.id,
				Name:        d.name,
				Description: d.description,
			})
		}
	}
	return unlocked
}

// evaluate runs a single predicate, converting a panic into not-satisfied.
func evaluate(d descriptor, snap snapshot) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			log.Warn().
				Str("achievement", d.id).
				Interface("panic", r).
				Msg("Achievement predicate failed, skipping")
		}
	}()
	return d.satisfied(snap)
}
