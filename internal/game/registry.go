// Package game defines the static registry of known games and their display
// metadata. The registry is read-only after construction and is never
// persisted; the store references games by id only.
package game

// Config holds display metadata for one known game.
type Config struct {
	ID           string
	Name         string
	ScoreType    string
	HigherBetter bool
	Stats        []string
}

// Registry maps game ids to their configs, preserving registration order.
// Registration order is the tie-break order for favorite-game and
// most-popular-game derivations.
type Registry struct {
	configs map[string]Config
	ids     []string
}

// NewRegistry builds a registry from the given configs. A duplicate id
// replaces the earlier config but keeps its original position.
func NewRegistry(configs ...Config) *Registry {
	r := &Registry{configs: make(map[string]Config, len(configs))}
	for _, cfg := range configs {
		if _, ok := r.configs[cfg.ID]; !ok {
			r.ids = append(r.ids, cfg.ID)
		}
		r.configs[cfg.ID] = cfg
	}
	return r
}

// Get retrieves a game config by id.
func (r *Registry) Get(id string) (Config, bool) {
	cfg, ok := r.configs[id]
	return cfg, ok
}

// IDs returns all game ids in registration order. The returned slice is a
// copy.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Count returns the number of registered games.
func (r *Registry) Count() int {
	return len(r.ids)
}

// DisplayName returns the display name for a game id, falling back to the
// raw id for games recorded outside the registry.
func (r *Registry) DisplayName(id string) string {
	if cfg, ok := r.configs[id]; ok {
		return cfg.Name
	}
	return id
}

// Default returns the registry of the nine games shipped with the
// collection.
func Default() *Registry {
	return NewRegistry(
		Config{
			ID: "snake", Name: "🐍 Snake",
			ScoreType: "points", HigherBetter: true,
			Stats: []string{"high_score", "games_played", "average_score"},
		},
		Config{
			ID: "tictactoe", Name: "⭕ Tic-Tac-Toe",
			ScoreType: "wins", HigherBetter: true,
			Stats: []string{"wins", "losses", "ties", "win_rate"},
		},
		Config{
			ID: "number_guessing", Name: "🔢 Number Guessing",
			ScoreType: "score", HigherBetter: true,
			Stats: []string{"high_score", "games_won", "average_attempts", "win_rate"},
		},
		Config{
			ID: "rock_paper_scissors", Name: "🪨📄✂️ Rock Paper Scissors",
			ScoreType: "wins", HigherBetter: true,
			Stats: []string{"wins", "losses", "ties", "win_rate", "streak"},
		},
		Config{
			ID: "hangman", Name: "🎯 Hangman",
			ScoreType: "score", HigherBetter: true,
			Stats: []string{"high_score", "words_guessed", "win_rate", "average_wrong_guesses"},
		},
		Config{
			ID: "memory_match", Name: "🧠 Memory Match",
			ScoreType: "score", HigherBetter: true,
			Stats: []string{"high_score", "best_time", "perfect_games", "average_attempts"},
		},
		Config{
			ID: "breakout", Name: "🎮 Breakout",
			ScoreType: "score", HigherBetter: true,
			Stats: []string{"high_score", "levels_completed", "total_bricks_broken"},
		},
		Config{
			ID: "pong", Name: "🏓 Pong",
			ScoreType: "points", HigherBetter: true,
			Stats: []string{"high_score", "games_won", "win_rate"},
		},
		Config{
			ID: "tetris", Name: "🧱 Tetris",
			ScoreType: "points", HigherBetter: true,
			Stats: []string{"high_score", "lines_cleared", "level_reached"},
		},
	)
}
