// Package model defines the persisted data model for the arcade scoreboard.
package model

import (
	"sort"
	"time"
)

// Session is one completed play of a single game, immutable once appended.
type Session struct {
	ID        string         `json:"id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Score     int            `json:"score"`
	Duration  int            `json:"duration"` // seconds
	Won       bool           `json:"won"`
	Details   map[string]any `json:"details,omitempty"`
}

// GameRecord aggregates all sessions a user has played for one game.
//
// Invariants maintained by Append: GamesPlayed == len(Sessions),
// TotalScore == sum of session scores, HighScore == max session score.
type GameRecord struct {
	GamesPlayed int       `json:"games_played"`
	TotalScore  int       `json:"total_score"`
	HighScore   int       `json:"high_score"`
	Sessions    []Session `json:"sessions"`
}

// Append records a session and updates the aggregates.
func (g *GameRecord) Append(s Session) {
	g.Sessions = append(g.Sessions, s)
	g.GamesPlayed++
	g.TotalScore += s.Score
	if s.Score > g.HighScore {
		g.HighScore = s.Score
	}
}

// LastSession returns the most recent session, or nil if none recorded.
func (g *GameRecord) LastSession() *Session {
	if len(g.Sessions) == 0 {
		return nil
	}
	return &g.Sessions[len(g.Sessions)-1]
}

// User holds one player's full history across all games.
type User struct {
	Created       time.Time              `json:"created"`
	LastPlayed    time.Time              `json:"last_played"`
	TotalPlaytime int                    `json:"total_playtime"` // seconds
	TotalScore    int                    `json:"total_score"`
	Achievements  []string               `json:"achievements"`
	Games         map[string]*GameRecord `json:"games"`
}

// NewUser creates a user with empty records for the given game ids.
func NewUser(now time.Time, gameIDs []string) *User {
	u := &User{
		Created:      now,
		LastPlayed:   now,
		Achievements: []string{},
		Games:        make(map[string]*GameRecord, len(gameIDs)),
	}
	for _, id := range gameIDs {
		u.Games[id] = &GameRecord{Sessions: []Session{}}
	}
	return u
}

// Game returns the record for a game id, creating an empty one if the id is
// unknown. Unregistered game ids are accepted, never rejected.
func (u *User) Game(id string) *GameRecord {
	if u.Games == nil {
		u.Games = make(map[string]*GameRecord)
	}
	rec, ok := u.Games[id]
	if !ok {
		rec = &GameRecord{Sessions: []Session{}}
		u.Games[id] = rec
	}
	return rec
}

// HasAchievement reports whether the achievement id is already unlocked.
func (u *User) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// GrantAchievement appends the id if not already unlocked.
// Returns true if the id was newly added.
func (u *User) GrantAchievement(id string) bool {
	if u.HasAchievement(id) {
		return false
	}
	u.Achievements = append(u.Achievements, id)
	return true
}

// TotalGamesPlayed sums GamesPlayed across all games.
func (u *User) TotalGamesPlayed() int {
	total := 0
	for _, rec := range u.Games {
		total += rec.GamesPlayed
	}
	return total
}

// DistinctGamesPlayed counts games with at least one recorded session.
func (u *User) DistinctGamesPlayed() int {
	count := 0
	for _, rec := range u.Games {
		if rec.GamesPlayed > 0 {
			count++
		}
	}
	return count
}

// Store is the root persisted object: all users plus the last write time.
// User iteration order is tracked separately because JSON objects carry no
// order; it is rebuilt sorted by username on load and appended on creation.
type Store struct {
	Users       map[string]*User `json:"users"`
	LastUpdated time.Time        `json:"last_updated"`

	order []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{Users: make(map[string]*User)}
}

// Lookup returns the user for a username, if present. Usernames are
// case-sensitive; no normalization is applied.
func (s *Store) Lookup(username string) (*User, bool) {
	u, ok := s.Users[username]
	return u, ok
}

// Put registers a user under the given username, preserving insertion order
// for leaderboard tie-breaks.
func (s *Store) Put(username string, u *User) {
	if s.Users == nil {
		s.Users = make(map[string]*User)
	}
	if _, ok := s.Users[username]; !ok {
		s.order = append(s.order, username)
	}
	s.Users[username] = u
}

// Usernames returns usernames in insertion order.
func (s *Store) Usernames() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Normalize repairs a store after unmarshaling: nil maps become empty and
// iteration order is rebuilt deterministically (sorted by username).
func (s *Store) Normalize() {
	if s.Users == nil {
		s.Users = make(map[string]*User)
	}
	s.order = s.order[:0]
	for username := range s.Users {
		s.order = append(s.order, username)
	}
	sort.Strings(s.order)
	for _, u := range s.Users {
		if u.Achievements == nil {
			u.Achievements = []string{}
		}
		if u.Games == nil {
			u.Games = make(map[string]*GameRecord)
		}
		for _, rec := range u.Games {
			if rec.Sessions == nil {
				rec.Sessions = []Session{}
			}
		}
	}
}
