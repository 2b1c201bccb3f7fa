package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStats_AbsentUser(t *testing.T) {
	board := newTestBoard(&memRepo{})

	stats, ok := board.UserStats("nobody")
	assert.False(t, ok)
	assert.Nil(t, stats)
}

func TestUserStats_Overview(t *testing.T) {
	board := newTestBoard(&memRepo{})

	board.RecordSession("alice", "snake", SessionResult{Score: 100, Duration: 60})
	board.RecordSession("alice", "snake", SessionResult{Score: 200, Duration: 30})
	board.RecordSession("alice", "tetris", SessionResult{Score: 50, Duration: 10})

	stats, ok := board.UserStats("alice")
	require.True(t, ok)

	assert.Equal(t, "alice", stats.Username)
	assert.Equal(t, 350, stats.TotalScore)
	assert.Equal(t, 3, stats.TotalGames)
	assert.Equal(t, 100, stats.TotalPlaytime)
	assert.Equal(t, 2, stats.GamesPlayed)
	assert.Equal(t, 2, stats.AchievementsCount) // first_snake, first_tetris
}

func TestUserStats_FavoriteGame(t *testing.T) {
	board := newTestBoard(&memRepo{})

	for i := 0; i < 3; i++ {
		board.RecordSession("alice", "hangman", SessionResult{Score: 10})
	}
	for i := 0; i < 5; i++ {
		board.RecordSession("alice", "tetris", SessionResult{Score: 10})
	}

	stats, ok := board.UserStats("alice")
	require.True(t, ok)
	assert.Equal(t, "tetris", stats.FavoriteGame)
}

func TestUserStats_FavoriteGameTieByRegistryOrder(t *testing.T) {
	board := newTestBoard(&memRepo{})

	// tetris recorded first, but snake precedes tetris in the registry.
	board.RecordSession("alice", "tetris", SessionResult{Score: 10})
	board.RecordSession("alice", "snake", SessionResult{Score: 10})

	stats, _ := board.UserStats("alice")
	assert.Equal(t, "snake", stats.FavoriteGame)
}

func TestUserStats_PerGame(t *testing.T) {
	board := newTestBoard(&memRepo{})

	board.RecordSession("alice", "pong", SessionResult{Score: 10})
	board.RecordSession("alice", "pong", SessionResult{Score: 15})

	stats, _ := board.UserStats("alice")
	require.Contains(t, stats.GameStats, "pong")
	assert.Len(t, stats.GameStats, 1, "only games with plays appear")

	gs := stats.GameStats["pong"]
	assert.Equal(t, "🏓 Pong", gs.Name)
	assert.Equal(t, 2, gs.GamesPlayed)
	assert.Equal(t, 15, gs.HighScore)
	assert.InDelta(t, 12.5, gs.AverageScore, 1e-9)
	require.NotNil(t, gs.LastPlayed)

	user, _ := board.store.Lookup("alice")
	last := user.Games["pong"].LastSession()
	assert.True(t, gs.LastPlayed.Equal(last.Timestamp))
}

func TestUserStats_RecentActivityWindow(t *testing.T) {
	board := newTestBoard(&memRepo{})
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	// One stale session well outside the 7-day window, then two fresh ones.
	board.now = func() time.Time { return base.AddDate(0, 0, -10) }
	board.RecordSession("alice", "snake", SessionResult{Score: 1})

	board.now = func() time.Time { return base.Add(-time.Hour) }
	board.RecordSession("alice", "tetris", SessionResult{Score: 2})

	board.now = func() time.Time { return base }
	board.RecordSession("alice", "pong", SessionResult{Score: 3, Won: true})

	stats, _ := board.UserStats("alice")
	require.Len(t, stats.RecentActivity, 2)

	// Newest first, annotated with display names.
	assert.Equal(t, "🏓 Pong", stats.RecentActivity[0].Game)
	assert.Equal(t, 3, stats.RecentActivity[0].Score)
	assert.True(t, stats.RecentActivity[0].Won)
	assert.Equal(t, "🧱 Tetris", stats.RecentActivity[1].Game)
}

func TestLastPlayedAt(t *testing.T) {
	board := newTestBoard(&memRepo{})

	_, ok := board.LastPlayedAt("alice", "snake")
	assert.False(t, ok)

	board.RecordSession("alice", "snake", SessionResult{Score: 5})

	ts, ok := board.LastPlayedAt("alice", "snake")
	require.True(t, ok)
	assert.False(t, ts.IsZero())

	_, ok = board.LastPlayedAt("alice", "tetris")
	assert.False(t, ok, "initialized but unplayed game has no last-played time")
}
