package model

import "time"

// DayCell cellule d'un jour dans le tableau du classement
type DayCell struct {
	Day         int    `json:"day"`
	First       bool   `json:"first"`
	Second      bool   `json:"second"`
	ElapsedTime string `json:"elapsedTime,omitempty"`
}

// LeaderboardEntry ligne du classement telle qu'exposée par l'API
type LeaderboardEntry struct {
	MemberID      int       `json:"memberId"`
	Name          string    `json:"name"`
	Position      int       `json:"position"`
	Stars         int       `json:"stars"`
	CompletedDays int       `json:"completedDays"`
	TotalTime     string    `json:"totalTime"`
	AverageTime   string    `json:"averageTime"`
	Days          []DayCell `json:"days"`
}

// Leaderboard classement complet d'une année
type Leaderboard struct {
	Year        int                `json:"year"`
	BoardID     int                `json:"boardId"`
	ContestOver bool               `json:"contestOver"`
	FetchedAt   time.Time          `json:"fetchedAt"`
	Entries     []LeaderboardEntry `json:"entries"`
}

// NewLeaderboardEntry construit la ligne d'affichage d'un membre classé
func NewLeaderboardEntry(m *Member) LeaderboardEntry {
	days := make([]DayCell, 0, len(m.Results))
	for _, r := range m.Results {
		days = append(days, DayCell{
			Day:         r.Day,
			First:       r.HasFirst(),
			Second:      r.HasSecond(),
			ElapsedTime: r.ElapsedTime(),
		})
	}

	return LeaderboardEntry{
		MemberID:      m.ID,
		Name:          m.Name,
		Position:      m.Position,
		Stars:         m.Stars(),
		CompletedDays: m.CompletedDays(),
		TotalTime:     m.TotalTimeString(),
		AverageTime:   m.AverageTimeString(),
		Days:          days,
	}
}
