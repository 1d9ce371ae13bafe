package app

import (
	"context"
	"fmt"

	"github.com/MassBabyGeek/advent-leaderboard/internal/config"
	"github.com/MassBabyGeek/advent-leaderboard/internal/database"
	"github.com/MassBabyGeek/advent-leaderboard/internal/logger"
	"github.com/MassBabyGeek/advent-leaderboard/internal/services"
	"github.com/MassBabyGeek/advent-leaderboard/internal/snapshot"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App dépendances partagées par le serveur et la CLI
type App struct {
	Config       *config.Config
	Pool         *pgxpool.Pool
	Repository   *database.SnapshotRepository
	Snapshots    *services.SnapshotService
	Leaderboards *services.LeaderboardService
}

// New construit les services. L'archive Postgres n'est ouverte que si DB_HOST est défini.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	var archive services.Archive
	if cfg.DatabaseEnabled() {
		pool, err := database.ConnectPostgres(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}

		repo := database.NewSnapshotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}

		a.Pool = pool
		a.Repository = repo
		archive = repo
	} else {
		logger.Info("DB_HOST not set, snapshot archive disabled")
	}

	cache := snapshot.NewDiskCache(cfg.CacheDir, cfg.CacheTTL)
	client := services.NewAoCClient(cfg.AoCBaseURL, cfg.SessionCookie)

	a.Snapshots = services.NewSnapshotService(cfg.Boards, cache, client, archive)
	a.Leaderboards = services.NewLeaderboardService(a.Snapshots)
	return a, nil
}

// Close libère la connexion à la base
func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}

// LoggerConfig configuration du logger issue de la configuration applicative
func LoggerConfig(cfg *config.Config, service string) logger.Config {
	return logger.Config{
		Level:         cfg.LogLevel,
		Format:        cfg.LogFormat,
		FileEnabled:   cfg.LogFile,
		FilePath:      cfg.LogDir,
		RotationSize:  cfg.LogRotateMB,
		RetentionDays: cfg.LogRetention,
		ServiceName:   service,
	}
}
