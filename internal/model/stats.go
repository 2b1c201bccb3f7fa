package model

import "time"

// Achievement describes an unlockable milestone. The set of achievements is
// fixed in code; only unlocked ids are persisted, on the User.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GameStats is the derived per-game view for one user.
type GameStats struct {
	Name         string     `json:"name"`
	GamesPlayed  int        `json:"games_played"`
	HighScore    int        `json:"high_score"`
	AverageScore float64    `json:"average_score"`
	LastPlayed   *time.Time `json:"last_played,omitempty"`
}

// ActivityEntry is one recent session, annotated with the game display name.
type ActivityEntry struct {
	Game  string    `json:"game"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
	Won   bool      `json:"won"`
}

// UserStats is the full derived profile for one user.
type UserStats struct {
	Username          string               `json:"username"`
	TotalScore        int                  `json:"total_score"`
	TotalGames        int                  `json:"total_games"`
	TotalPlaytime     int                  `json:"total_playtime"`
	AchievementsCount int                  `json:"achievements_count"`
	GamesPlayed       int                  `json:"games_played"` // distinct games
	FavoriteGame      string               `json:"favorite_game,omitempty"`
	RecentActivity    []ActivityEntry      `json:"recent_activity"`
	GameStats         map[string]GameStats `json:"game_stats"`
}

// LeaderboardEntry is one ranked row. Achievements is only populated in
// global mode.
type LeaderboardEntry struct {
	Username     string `json:"username"`
	Score        int    `json:"score"`
	GamesPlayed  int    `json:"games_played"`
	Achievements int    `json:"achievements,omitempty"`
}

// GlobalStats aggregates across every user in the store.
type GlobalStats struct {
	TotalUsers       int     `json:"total_users"`
	TotalGamesPlayed int     `json:"total_games_played"`
	TotalScore       int     `json:"total_score"`
	MostPopularGame  string  `json:"most_popular_game,omitempty"`
	AvgScorePerUser  float64 `json:"avg_score_per_user"`
	AvgGamesPerUser  float64 `json:"avg_games_per_user"`
}
