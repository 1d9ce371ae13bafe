package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	model "github.com/MassBabyGeek/advent-leaderboard/internal/models"
	"github.com/MassBabyGeek/advent-leaderboard/internal/scanner"
	"github.com/MassBabyGeek/advent-leaderboard/internal/snapshot"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSnapshotNotFound aucun snapshot archivé pour cette année
var ErrSnapshotNotFound = errors.New("archived snapshot not found")

const schema = `
	CREATE TABLE IF NOT EXISTS leaderboard_snapshots (
		id           UUID PRIMARY KEY,
		year         INTEGER NOT NULL,
		board_id     INTEGER NOT NULL,
		fetched_at   TIMESTAMPTZ NOT NULL,
		member_count INTEGER NOT NULL,
		payload      JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS leaderboard_snapshots_year_idx
		ON leaderboard_snapshots (year, fetched_at DESC);
`

// SnapshotRepository archive des snapshots dans Postgres
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository crée le repository
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// EnsureSchema crée la table si besoin
func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Save archive un snapshot récupéré
func (r *SnapshotRepository) Save(ctx context.Context, year, boardID int, snap *snapshot.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO leaderboard_snapshots (id, year, board_id, fetched_at, member_count, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New().String(), year, boardID, snap.FetchedAt(), len(snap.Members), payload)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest dernier snapshot archivé d'une année
func (r *SnapshotRepository) Latest(ctx context.Context, year int) (*model.ArchivedSnapshot, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id::text, year, board_id, fetched_at, member_count, payload, created_at
		FROM leaderboard_snapshots
		WHERE year = $1
		ORDER BY fetched_at DESC
		LIMIT 1
	`, year)

	archived, err := scanner.ScanArchivedSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return archived, nil
}
