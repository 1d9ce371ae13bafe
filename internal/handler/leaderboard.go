package handler

import (
	"net/http"

	"github.com/MassBabyGeek/advent-leaderboard/internal/logger"
	"github.com/MassBabyGeek/advent-leaderboard/internal/utils"
)

// GetLeaderboard classement JSON d'une année
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.serveLeaderboard(w, r, false)
}

// RefreshLeaderboard force la récupération du snapshot puis renvoie le classement
func (h *Handler) RefreshLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.serveLeaderboard(w, r, true)
}

func (h *Handler) serveLeaderboard(w http.ResponseWriter, r *http.Request, force bool) {
	year, err := h.yearFromRequest(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid year")
		return
	}

	board, err := h.leaderboards.Get(r.Context(), year, force)
	if err != nil {
		status, msg := statusFor(err)
		utils.Error(w, status, msg, err)
		return
	}

	if force {
		logger.Info("Leaderboard %d refreshed (%d members)", year, len(board.Entries))
	}
	utils.Success(w, board)
}
