package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/MassBabyGeek/advent-leaderboard/internal/snapshot"
)

// ErrUnexpectedContentType le site a renvoyé autre chose que du JSON (cookie expiré le plus souvent)
var ErrUnexpectedContentType = errors.New("unable to fetch standings: unexpected content type")

// maxBodySize taille maximale acceptée pour un classement
const maxBodySize = 16 << 20

// AoCClient client HTTP du site du concours, authentifié par cookie de session
type AoCClient struct {
	baseURL       string
	sessionCookie string
	httpClient    *http.Client
}

// NewAoCClient crée un client
func NewAoCClient(baseURL, sessionCookie string) *AoCClient {
	return &AoCClient{
		baseURL:       baseURL,
		sessionCookie: sessionCookie,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

// LeaderboardURL URL du JSON d'un classement privé
func (c *AoCClient) LeaderboardURL(year, boardID int) string {
	return fmt.Sprintf("%s/%d/leaderboard/private/view/%d.json", c.baseURL, year, boardID)
}

// FetchLeaderboard récupère le classement privé d'une année
func (c *AoCClient) FetchLeaderboard(ctx context.Context, year, boardID int) (*snapshot.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LeaderboardURL(year, boardID), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.sessionCookie})
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedContentType, resp.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return snapshot.Decode(body)
}
