package api

import (
	"net/http"

	"github.com/MassBabyGeek/advent-leaderboard/internal/handler"
	"github.com/MassBabyGeek/advent-leaderboard/internal/logger"
	"github.com/MassBabyGeek/advent-leaderboard/internal/middleware"
	"github.com/gorilla/mux"
)

// RouterConfig dépendances du routeur
type RouterConfig struct {
	Leaderboards   handler.LeaderboardProvider
	Years          []int
	AdminTokenHash string
	CORSOrigins    []string
}

func SetupRouter(cfg RouterConfig) http.Handler {
	h := handler.New(cfg.Leaderboards, cfg.Years)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.LoggerMiddleware)

	// Pages
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/{year:[0-9]{4}}", h.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/robots.txt", handler.Robots).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	// API
	apiRoutes := r.PathPrefix("/api").Subrouter()
	apiRoutes.HandleFunc("/leaderboard/{year:[0-9]{4}}", h.GetLeaderboard).Methods(http.MethodGet)

	adminRoutes := apiRoutes.PathPrefix("/").Subrouter()
	adminRoutes.Use(middleware.AdminAuth(cfg.AdminTokenHash))
	adminRoutes.HandleFunc("/leaderboard/{year:[0-9]{4}}/refresh", h.RefreshLeaderboard).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		logger.StatusColor(http.StatusNotFound).Printf("[404] %s %s (route non trouvée)\n", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return middleware.CORSMiddleware(cfg.CORSOrigins)(r)
}
