package model

import "github.com/MassBabyGeek/advent-leaderboard/internal/utils"

// Result représente les deux étapes d'un jour pour un participant
type Result struct {
	Day      int    `json:"day"`
	FirstTS  *int64 `json:"firstTs,omitempty"`  // première étoile (epoch secondes)
	SecondTS *int64 `json:"secondTs,omitempty"` // deuxième étoile, jamais sans la première
}

// NewResult crée un résultat vide pour un jour donné
func NewResult(day int) Result {
	return Result{Day: day}
}

// HasFirst indique si la première étoile du jour est obtenue
func (r Result) HasFirst() bool {
	return r.FirstTS != nil
}

// HasSecond indique si la deuxième étoile du jour est obtenue
func (r Result) HasSecond() bool {
	return r.SecondTS != nil
}

// Delta retourne le temps écoulé entre les deux étoiles
func (r Result) Delta() (int64, bool) {
	if r.SecondTS == nil || r.FirstTS == nil {
		return 0, false
	}
	return *r.SecondTS - *r.FirstTS, true
}

// ElapsedTime retourne le delta au format D:HH:MM:SS, vide sans deuxième étoile
func (r Result) ElapsedTime() string {
	delta, ok := r.Delta()
	if !ok {
		return ""
	}
	return utils.FormatElapsed(float64(delta))
}

// Timestamp helper pour construire un *int64
func Timestamp(ts int64) *int64 {
	return &ts
}
