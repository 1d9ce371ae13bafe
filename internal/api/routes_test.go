package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	model "github.com/MassBabyGeek/advent-leaderboard/internal/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type staticProvider struct{}

func (staticProvider) Get(ctx context.Context, year int, forceRefresh bool) (*model.Leaderboard, error) {
	return &model.Leaderboard{Year: year, Entries: []model.LeaderboardEntry{}}, nil
}

func TestSetupRouter(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	router := SetupRouter(RouterConfig{
		Leaderboards:   staticProvider{},
		Years:          []int{2022},
		AdminTokenHash: string(hash),
		CORSOrigins:    []string{"*"},
	})

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"root", http.MethodGet, "/", "", http.StatusOK},
		{"year page", http.MethodGet, "/2022", "", http.StatusOK},
		{"robots", http.MethodGet, "/robots.txt", "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"api", http.MethodGet, "/api/leaderboard/2022", "", http.StatusOK},
		{"refresh without token", http.MethodPost, "/api/leaderboard/2022/refresh", "", http.StatusUnauthorized},
		{"refresh with token", http.MethodPost, "/api/leaderboard/2022/refresh", "Bearer secret", http.StatusOK},
		{"not found", http.MethodGet, "/nope/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNotFound {
				assert.Equal(t, "Route not found\n", rec.Body.String())
			}
			if tt.want != http.StatusNotFound {
				assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			}
		})
	}
}
