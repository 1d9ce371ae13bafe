package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	model "github.com/MassBabyGeek/advent-leaderboard/internal/models"
	"github.com/MassBabyGeek/advent-leaderboard/internal/services"
	"github.com/MassBabyGeek/advent-leaderboard/internal/utils"
	"github.com/gorilla/mux"
)

// LeaderboardProvider source des classements calculés
type LeaderboardProvider interface {
	Get(ctx context.Context, year int, forceRefresh bool) (*model.Leaderboard, error)
}

// Handler regroupe les handlers HTTP du classement
type Handler struct {
	leaderboards LeaderboardProvider
	years        []int
	latestYear   int
}

// New crée les handlers pour les années configurées (triées)
func New(leaderboards LeaderboardProvider, years []int) *Handler {
	h := &Handler{leaderboards: leaderboards, years: years}
	if len(years) > 0 {
		h.latestYear = years[len(years)-1]
	}
	return h
}

// HealthCheck indique que le service répond
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// Robots interdit l'indexation du classement
func Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nDisallow: /\n"))
}

// yearFromRequest lit {year} ou retombe sur la dernière année configurée
func (h *Handler) yearFromRequest(r *http.Request) (int, error) {
	raw, ok := mux.Vars(r)["year"]
	if !ok {
		return h.latestYear, nil
	}
	return strconv.Atoi(raw)
}

// statusFor traduit une erreur de service en code HTTP
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUnknownBoard):
		return http.StatusNotFound, "unknown leaderboard year"
	case errors.Is(err, services.ErrNoData):
		return http.StatusServiceUnavailable, "leaderboard data unavailable"
	default:
		return http.StatusInternalServerError, "could not build leaderboard"
	}
}
