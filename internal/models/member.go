package model

import (
	"fmt"

	"github.com/MassBabyGeek/advent-leaderboard/internal/utils"
)

// Member représente le classement d'un participant.
// Toutes les métriques sont recalculées depuis Results à chaque appel.
type Member struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Results  []Result `json:"results"`
	Position int      `json:"position"`
}

// DisplayName retourne le nom affiché, avec un nom de substitution si absent
func DisplayName(id int, name string) string {
	if name == "" {
		return fmt.Sprintf("User #%d", id)
	}
	return name
}

// Stars nombre total d'étoiles (max 50)
func (m *Member) Stars() int {
	stars := 0
	for _, r := range m.Results {
		if r.HasFirst() {
			stars++
		}
		if r.HasSecond() {
			stars++
		}
	}
	return stars
}

// CompletedDays nombre de jours avec la deuxième étoile (étoiles d'or)
func (m *Member) CompletedDays() int {
	count := 0
	for _, r := range m.Results {
		if r.HasSecond() {
			count++
		}
	}
	return count
}

// SumCompletedDays somme des numéros de jours complétés
func (m *Member) SumCompletedDays() int {
	sum := 0
	for _, r := range m.Results {
		if r.HasSecond() {
			sum += r.Day
		}
	}
	return sum
}

// ParticipatingDays nombre de jours avec au moins la première étoile
func (m *Member) ParticipatingDays() int {
	count := 0
	for _, r := range m.Results {
		if r.HasFirst() {
			count++
		}
	}
	return count
}

// TotalTime somme des deltas des jours complétés, en secondes
func (m *Member) TotalTime() int64 {
	var total int64
	for _, r := range m.Results {
		if delta, ok := r.Delta(); ok {
			total += delta
		}
	}
	return total
}

// AverageTime temps total divisé par le nombre de jours de participation.
// Le numérateur ne compte que les jours complétés, le dénominateur tous les jours commencés.
func (m *Member) AverageTime() float64 {
	if m.Stars() == 0 {
		return 0
	}
	days := m.ParticipatingDays()
	if days == 0 {
		return 0
	}
	return float64(m.TotalTime()) / float64(days)
}

// TotalTimeString temps total au format D:HH:MM:SS
func (m *Member) TotalTimeString() string {
	return utils.FormatElapsed(float64(m.TotalTime()))
}

// AverageTimeString temps moyen au format D:HH:MM:SS.mmm
func (m *Member) AverageTimeString() string {
	return utils.FormatElapsedMillis(m.AverageTime())
}

// CompareMembers compare deux membres: -1 si a est moins bien classé que b,
// 0 en cas d'égalité parfaite, 1 si a est mieux classé.
// Critères: étoiles, jours complétés, somme des jours complétés, puis temps total (plus petit = mieux).
func CompareMembers(a, b *Member) int {
	if c := compareInt(a.Stars(), b.Stars()); c != 0 {
		return c
	}
	if c := compareInt(a.CompletedDays(), b.CompletedDays()); c != 0 {
		return c
	}
	if c := compareInt(a.SumCompletedDays(), b.SumCompletedDays()); c != 0 {
		return c
	}
	// temps inversé
	ta, tb := a.TotalTime(), b.TotalTime()
	switch {
	case ta > tb:
		return -1
	case ta < tb:
		return 1
	}
	return 0
}

// Equal égalité sur les quatre critères de classement
func (m *Member) Equal(other *Member) bool {
	return CompareMembers(m, other) == 0
}

// Less indique si m est strictement moins bien classé que other
func (m *Member) Less(other *Member) bool {
	return CompareMembers(m, other) < 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
