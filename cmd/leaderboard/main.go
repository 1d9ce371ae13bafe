// Package main - CLI du classement
//
// Usage:
//
//	go run ./cmd/leaderboard show 2022
//	go run ./cmd/leaderboard fetch 2022
//	go run ./cmd/leaderboard history 2022
package main

import (
	"os"

	"github.com/MassBabyGeek/advent-leaderboard/cmd/leaderboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
