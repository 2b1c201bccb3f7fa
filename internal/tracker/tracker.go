// Package tracker is the thin boundary the game loops call: start a session
// when play begins, end it with the final score. Duration is measured here
// so games never report playtime themselves.
package tracker

import (
	"errors"
	"strings"
	"time"

	"arcade-scoreboard/internal/model"
	"arcade-scoreboard/internal/service"
)

// GuestUsername is recorded when a game supplies no username.
const GuestUsername = "Guest"

var (
	ErrNoActiveSession = errors.New("no active session")
	ErrSessionActive   = errors.New("a session is already active")
)

// Tracker tracks one in-flight game session at a time.
type Tracker struct {
	board *service.Scoreboard

	username string
	gameID   string
	started  time.Time
	active   bool

	now func() time.Time
}

// New creates a Tracker recording into board.
func New(board *service.Scoreboard) *Tracker {
	return &Tracker{board: board, now: time.Now}
}

// Start begins tracking a session. An empty or whitespace username falls
// back to GuestUsername.
func (t *Tracker) Start(username, gameID string) error {
	if t.active {
		return ErrSessionActive
	}
	if strings.TrimSpace(username) == "" {
		username = GuestUsername
	}
	t.username = username
	t.gameID = gameID
	t.started = t.now()
	t.active = true
	return nil
}

// Active reports whether a session is being tracked.
func (t *Tracker) Active() bool {
	return t.active
}

// End records the tracked session with the elapsed wall-clock duration and
// returns the achievements it unlocked plus the persistence status.
func (t *Tracker) End(score int, won bool, details map[string]any) ([]model.Achievement, bool, error) {
	if !t.active {
		return nil, false, ErrNoActiveSession
	}

	duration := int(t.now().Sub(t.started).Seconds())
	if duration < 0 {
		duration = 0
	}

	unlocked, saved := t.board.RecordSession(t.username, t.gameID, service.SessionResult{
		Score:    score,
		Duration: duration,
		Won:      won,
		Details:  details,
	})

	t.username = ""
	t.gameID = ""
	t.active = false

	return unlocked, saved, nil
}

// QuickStats returns the per-game stats line games show before play.
func (t *Tracker) QuickStats(username, gameID string) (model.GameStats, bool) {
	stats, ok := t.board.UserStats(username)
	if !ok {
		return model.GameStats{}, false
	}
	gs, ok := stats.GameStats[gameID]
	return gs, ok
}
