// Package main is the entry point for the scoreboard CLI. It wires the
// store, registry, and service together and exposes the query operations
// the individual games also use in-process.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"arcade-scoreboard/internal/config"
	"arcade-scoreboard/internal/game"
	"arcade-scoreboard/internal/repository"
	"arcade-scoreboard/internal/service"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	registry := game.Default()
	repo := repository.NewFileStore(cfg.Store.Path, cfg.Store.Indent)
	board := service.New(registry, repo, cfg.Leaderboard.Limit, cfg.Activity.WindowDays)

	log.Debug().
		Str("store", cfg.Store.Path).
		Int("games", registry.Count()).
		Msg("Scoreboard loaded")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "profile":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		printProfile(board, os.Args[2])

	case "top":
		gameID := ""
		if len(os.Args) > 2 {
			gameID = os.Args[2]
		}
		printLeaderboard(board, registry, gameID, cfg.Leaderboard.Limit)

	case "global":
		printGlobal(board, registry)

	case "record":
		if len(os.Args) < 5 {
			usage()
			os.Exit(2)
		}
		score, err := strconv.Atoi(os.Args[4])
		if err != nil {
			log.Fatal().Str("score", os.Args[4]).Msg("Score must be an integer")
		}
		unlocked, saved := board.RecordSession(os.Args[2], os.Args[3], service.SessionResult{Score: score})
		if !saved {
			fmt.Println("warning: session recorded but not persisted")
		}
		fmt.Printf("Recorded: %s scored %d in %s\n", os.Args[2], score, os.Args[3])
		for _, a := range unlocked {
			fmt.Printf("🏆 ACHIEVEMENT UNLOCKED: %s\n   %s\n", a.Name, a.Description)
		}

	default:
		usage()
		os.Exit(2)
	}
}

func printProfile(board *service.Scoreboard, username string) {
	stats, ok := board.UserStats(username)
	if !ok {
		fmt.Printf("User %q not found.\n", username)
		return
	}

	fmt.Printf("PLAYER PROFILE: %s\n", stats.Username)
	fmt.Printf("  Total Score:     %d\n", stats.TotalScore)
	fmt.Printf("  Games Played:    %d\n", stats.TotalGames)
	fmt.Printf("  Different Games: %d\n", stats.GamesPlayed)
	fmt.Printf("  Achievements:    %d\n", stats.AchievementsCount)
	if stats.FavoriteGame != "" {
		fmt.Printf("  Favorite Game:   %s\n", stats.FavoriteGame)
	}
	if stats.TotalPlaytime > 0 {
		fmt.Printf("  Total Playtime:  %dh %dm\n", stats.TotalPlaytime/3600, stats.TotalPlaytime%3600/60)
	}
	for id, gs := range stats.GameStats {
		fmt.Printf("  %s (%s): %d played, high %d, avg %.1f\n",
			gs.Name, id, gs.GamesPlayed, gs.HighScore, gs.AverageScore)
	}
	for _, act := range stats.RecentActivity {
		fmt.Printf("  recent: %s score %d (%s)\n", act.Game, act.Score, act.Date.Format("01/02 15:04"))
	}
}

func printLeaderboard(board *service.Scoreboard, registry *game.Registry, gameID string, limit int) {
	if gameID != "" {
		fmt.Printf("%s LEADERBOARD\n", registry.DisplayName(gameID))
	} else {
		fmt.Println("OVERALL LEADERBOARD")
	}

	entries := board.Leaderboard(gameID, limit)
	if len(entries) == 0 {
		fmt.Println("  No scores recorded yet.")
		return
	}
	for i, e := range entries {
		if gameID != "" {
			fmt.Printf("  %2d. %-15s %8d pts (%d games)\n", i+1, e.Username, e.Score, e.GamesPlayed)
		} else {
			fmt.Printf("  %2d. %-15s %8d pts (%d games, %d achievements)\n",
				i+1, e.Username, e.Score, e.GamesPlayed, e.Achievements)
		}
	}
}

func printGlobal(board *service.Scoreboard, registry *game.Registry) {
	stats := board.GlobalStats()
	fmt.Println("GLOBAL STATISTICS")
	fmt.Printf("  Total Players:      %d\n", stats.TotalUsers)
	fmt.Printf("  Total Games Played: %d\n", stats.TotalGamesPlayed)
	fmt.Printf("  Total Score Earned: %d\n", stats.TotalScore)
	if stats.MostPopularGame != "" {
		fmt.Printf("  Most Popular Game:  %s\n", registry.DisplayName(stats.MostPopularGame))
	}
	if stats.TotalUsers > 0 {
		fmt.Printf("  Avg Score/Player:   %.1f\n", stats.AvgScorePerUser)
		fmt.Printf("  Avg Games/Player:   %.1f\n", stats.AvgGamesPerUser)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: scoreboard <command>

commands:
  profile <user>               show a player profile
  top [game]                   show the overall or per-game leaderboard
  global                       show global statistics
  record <user> <game> <score> record a completed session`)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
