package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/MassBabyGeek/advent-leaderboard/internal/logger"
	model "github.com/MassBabyGeek/advent-leaderboard/internal/models"
	"github.com/MassBabyGeek/advent-leaderboard/internal/utils"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"fetchedAt": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}
		return t.UTC().Format("2006-01-02 15:04:05 MST")
	},
}).ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Board *model.Leaderboard
	Years []int
	Days  []int
}

func dayNumbers() []int {
	days := make([]int, utils.NumberOfDays)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// RootHandler affiche le classement HTML ("/" = dernière année configurée)
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	year, err := h.yearFromRequest(r)
	if err != nil {
		pageError(w, http.StatusBadRequest, "invalid year", err)
		return
	}

	board, err := h.leaderboards.Get(r.Context(), year, false)
	if err != nil {
		status, msg := statusFor(err)
		pageError(w, status, msg, err)
		return
	}

	var buf bytes.Buffer
	data := pageData{Board: board, Years: h.years, Days: dayNumbers()}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		pageError(w, http.StatusInternalServerError, "could not render leaderboard", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// pageError réponse texte des pages HTML, la cause est seulement loggée
func pageError(w http.ResponseWriter, status int, msg string, err error) {
	logger.Error("[%d] %s: %v", status, msg, err)
	http.Error(w, msg, status)
}
