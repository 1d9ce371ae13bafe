package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_Get(t *testing.T) {
	svc, _ := newTestService(t, &fakeFetcher{}, nil)
	leaderboards := NewLeaderboardService(svc)
	leaderboards.now = func() time.Time { return time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC) }

	board, err := leaderboards.Get(context.Background(), 2022, false)
	require.NoError(t, err)

	assert.Equal(t, 2022, board.Year)
	assert.Equal(t, 1505617, board.BoardID)
	assert.True(t, board.ContestOver)
	require.Len(t, board.Entries, 1)

	entry := board.Entries[0]
	assert.Equal(t, "alice", entry.Name)
	assert.Equal(t, 1, entry.Position)
	assert.Equal(t, 2, entry.Stars)
	assert.Equal(t, "0:00:01:00", entry.TotalTime)
	assert.Len(t, entry.Days, 25)
	assert.Equal(t, "0:00:01:00", entry.Days[0].ElapsedTime)
}

func TestLeaderboardService_UnknownYear(t *testing.T) {
	svc, _ := newTestService(t, &fakeFetcher{}, nil)

	_, err := NewLeaderboardService(svc).Get(context.Background(), 1999, false)
	assert.ErrorIs(t, err, ErrUnknownBoard)
}
