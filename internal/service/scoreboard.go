// Package service implements the scoreboard business logic: session
// recording, achievement evaluation, statistics, and leaderboards.
package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"arcade-scoreboard/internal/game"
	"arcade-scoreboard/internal/model"
)

// Repository persists the scoreboard store. Implementations are file-based
// today but the service only depends on load/save semantics.
type Repository interface {
	Load() *model.Store
	Save(store *model.Store) error
}

// Scoreboard owns the in-memory store and derives all read models from it.
// It is constructed once at process start; there is no ambient singleton.
type Scoreboard struct {
	registry     *game.Registry
	repo         Repository
	defaultLimit int
	activityDays int

	mu    sync.Mutex
	store *model.Store

	now   func() time.Time
	newID func() string
}

// New creates a Scoreboard backed by repo, loading the persisted store
// immediately. defaultLimit caps leaderboards when the caller passes no
// limit; activityDays is the recent-activity window.
func New(registry *game.Registry, repo Repository, defaultLimit, activityDays int) *Scoreboard {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	if activityDays <= 0 {
		activityDays = 7
	}
	return &Scoreboard{
		registry:     registry,
		repo:         repo,
		defaultLimit: defaultLimit,
		activityDays: activityDays,
		store:        repo.Load(),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// SessionResult carries the outcome of one completed game session.
type SessionResult struct {
	Score    int
	Duration int // seconds
	Won      bool
	Details  map[string]any
}

// RecordSession appends a session for (username, gameID), updates the user
// and game aggregates, evaluates achievements, and persists the store.
//
// The username is expected to be non-empty; callers apply their own fallback
// (see tracker.Tracker). An unknown gameID is accepted and a record is
// created for it on the fly.
//
// Returns the achievements newly unlocked by this session and whether the
// store was persisted. A failed save keeps the in-memory update; the next
// successful save will include it.
func (s *Scoreboard) RecordSession(username, gameID string, result SessionResult) ([]model.Achievement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	user, ok := s.store.Lookup(username)
	if !ok {
		user = model.NewUser(now, s.registry.IDs())
		s.store.Put(username, user)
	}

	rec := user.Game(gameID)

	session := model.Session{
		ID:        s.newID(),
		Timestamp: now,
		Score:     result.Score,
		Duration:  result.Duration,
		Won:       result.Won,
		Details:   result.Details,
	}

	rec.Append(session)
	user.TotalScore += session.Score
	user.TotalPlaytime += session.Duration
	user.LastPlayed = now

	unlocked := s.evaluateAchievements(user, gameID, rec, session)
	for _, a := range unlocked {
		log.Info().
			Str("user", username).
			Str("achievement", a.ID).
			Msg("Achievement unlocked")
	}

	saved := true
	if err := s.repo.Save(s.store); err != nil {
		saved = false
		log.Error().Err(err).
			Str("user", username).
			Str("game", gameID).
			Msg("Failed to persist scoreboard")
	}

	return unlocked, saved
}
