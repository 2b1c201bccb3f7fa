package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcade-scoreboard/internal/model"
)

func TestAchievements_FirstPlay(t *testing.T) {
	board := newTestBoard(&memRepo{})

	unlocked, _ := board.RecordSession("alice", "snake", SessionResult{Score: 1})
	assert.Equal(t, []string{"first_snake"}, unlockedIDs(unlocked))

	unlocked, _ = board.RecordSession("alice", "snake", SessionResult{Score: 1})
	assert.Empty(t, unlocked, "first-play never unlocks twice")
}

func TestAchievements_VeteranExactlyOnceAtTenth(t *testing.T) {
	board := newTestBoard(&memRepo{})

	for i := 1; i <= 15; i++ {
		unlocked, _ := board.RecordSession("alice", "hangman", SessionResult{Score: 10})
		ids := unlockedIDs(unlocked)
		if i == 10 {
			assert.Contains(t, ids, "hangman_veteran", "session %d", i)
		} else {
			assert.NotContains(t, ids, "hangman_veteran", "session %d", i)
		}
	}

	user, _ := board.store.Lookup("alice")
	count := 0
	for _, id := range user.Achievements {
		if id == "hangman_veteran" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAchievements_MultiUnlockInOneCall(t *testing.T) {
	board := newTestBoard(&memRepo{})

	unlocked, _ := board.RecordSession("alice", "breakout", SessionResult{
		Score: 1000, Duration: 0, Won: true, Details: map[string]any{},
	})
	ids := unlockedIDs(unlocked)
	assert.Contains(t, ids, "first_breakout")
	assert.Contains(t, ids, "breakout_high_scorer")
	assert.NotContains(t, ids, "game_explorer")
}

func TestAchievements_GameExplorerOnThirdDistinctGame(t *testing.T) {
	board := newTestBoard(&memRepo{})

	unlocked, _ := board.RecordSession("alice", "snake", SessionResult{Score: 1})
	assert.NotContains(t, unlockedIDs(unlocked), "game_explorer")

	unlocked, _ = board.RecordSession("alice", "pong", SessionResult{Score: 1})
	assert.NotContains(t, unlockedIDs(unlocked), "game_explorer")

	unlocked, _ = board.RecordSession("alice", "hangman", SessionResult{Score: 1000, Won: true})
	ids := unlockedIDs(unlocked)
	assert.Contains(t, ids, "first_hangman")
	assert.Contains(t, ids, "hangman_high_scorer")
	assert.Contains(t, ids, "game_explorer")
}

func TestAchievements_DedicatedPlayer(t *testing.T) {
	board := newTestBoard(&memRepo{})

	for i := 1; i <= 49; i++ {
		unlocked, _ := board.RecordSession("alice", "pong", SessionResult{Score: 1})
		assert.NotContains(t, unlockedIDs(unlocked), "dedicated_player", "session %d", i)
	}
	unlocked, _ := board.RecordSession("alice", "snake", SessionResult{Score: 1})
	assert.Contains(t, unlockedIDs(unlocked), "dedicated_player")
}

func TestAchievements_ScoreMaster(t *testing.T) {
	board := newTestBoard(&memRepo{})

	unlocked, _ := board.RecordSession("alice", "tetris", SessionResult{Score: 9999})
	assert.NotContains(t, unlockedIDs(unlocked), "score_master")

	unlocked, _ = board.RecordSession("alice", "tetris", SessionResult{Score: 1})
	assert.Contains(t, unlockedIDs(unlocked), "score_master")
}

func TestAchievements_DisplayMetadata(t *testing.T) {
	board := newTestBoard(&memRepo{})

	unlocked, _ := board.RecordSession("alice", "tetris", SessionResult{Score: 1})
	require.Len(t, unlocked, 1)
	assert.Equal(t, "first_tetris", unlocked[0].ID)
	assert.Equal(t, "First 🧱 Tetris Game", unlocked[0].Name)
	assert.NotEmpty(t, unlocked[0].Description)
}

func TestEvaluate_PanicTreatedAsNotSatisfied(t *testing.T) {
	d := descriptor{
		id: "broken",
		satisfied: func(snap snapshot) bool {
			panic("boom")
		},
	}

	assert.False(t, evaluate(d, snapshot{}))
}

func TestEvaluateAchievements_SkipsAlreadyUnlocked(t *testing.T) {
	board := newTestBoard(&memRepo{})

	user := model.NewUser(board.now(), board.registry.IDs())
	board.store.Put("alice", user)
	user.GrantAchievement("first_snake")

	rec := user.Game("snake")
	sess := model.Session{Score: 5}
	rec.Append(sess)

	unlocked := board.evaluateAchievements(user, "snake", rec, sess)
	assert.Empty(t, unlocked)
	assert.Equal(t, []string{"first_snake"}, user.Achievements)
}
