package middleware

import (
	"net/http"
	"strings"

	"github.com/MassBabyGeek/advent-leaderboard/internal/logger"
	"github.com/MassBabyGeek/advent-leaderboard/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth protège les routes d'administration.
// Le token du header Authorization est comparé au hash bcrypt configuré; sans hash, les routes sont fermées.
func AdminAuth(tokenHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenHash == "" {
				utils.ErrorSimple(w, http.StatusForbidden, "admin routes are disabled")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
			if token == "" {
				utils.ErrorSimple(w, http.StatusUnauthorized, "missing authorization token")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
				logger.Warning("Invalid admin token from %s", r.RemoteAddr)
				utils.ErrorSimple(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
