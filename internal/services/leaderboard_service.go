package services

import (
	"context"
	"time"

	model "github.com/MassBabyGeek/advent-leaderboard/internal/models"
	"github.com/MassBabyGeek/advent-leaderboard/internal/ranking"
	"github.com/MassBabyGeek/advent-leaderboard/internal/utils"
)

// LeaderboardService recalcule le classement à chaque appel
type LeaderboardService struct {
	snapshots *SnapshotService
	now       func() time.Time
}

// NewLeaderboardService crée le service
func NewLeaderboardService(snapshots *SnapshotService) *LeaderboardService {
	return &LeaderboardService{snapshots: snapshots, now: time.Now}
}

// Members membres classés d'une année
func (s *LeaderboardService) Members(ctx context.Context, year int, forceRefresh bool) ([]*model.Member, *model.Leaderboard, error) {
	snap, err := s.snapshots.Get(ctx, year, forceRefresh)
	if err != nil {
		return nil, nil, err
	}

	members := ranking.BuildLeaderboard(snap, year)
	boardID, _ := s.snapshots.BoardID(year)

	board := &model.Leaderboard{
		Year:        year,
		BoardID:     boardID,
		ContestOver: utils.IsContestOver(year, s.now()),
		FetchedAt:   snap.FetchedAt(),
		Entries:     make([]model.LeaderboardEntry, 0, len(members)),
	}
	for _, m := range members {
		board.Entries = append(board.Entries, model.NewLeaderboardEntry(m))
	}

	return members, board, nil
}

// Get classement d'une année prêt pour l'API
func (s *LeaderboardService) Get(ctx context.Context, year int, forceRefresh bool) (*model.Leaderboard, error) {
	_, board, err := s.Members(ctx, year, forceRefresh)
	return board, err
}
