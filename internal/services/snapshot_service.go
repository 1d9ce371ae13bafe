package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MassBabyGeek/advent-leaderboard/internal/logger"
	"github.com/MassBabyGeek/advent-leaderboard/internal/snapshot"
	"golang.org/x/sync/singleflight"
)

// fetchTimeout durée maximale d'une récupération partagée
const fetchTimeout = 30 * time.Second

var (
	// ErrUnknownBoard aucune année configurée
	ErrUnknownBoard = errors.New("no leaderboard configured for this year")

	// ErrNoData ni le site ni le cache n'ont de données
	ErrNoData = errors.New("no leaderboard data available")
)

// Fetcher source distante des snapshots
type Fetcher interface {
	FetchLeaderboard(ctx context.Context, year, boardID int) (*snapshot.Snapshot, error)
}

// Archive historique des snapshots récupérés
type Archive interface {
	Save(ctx context.Context, year, boardID int, snap *snapshot.Snapshot) error
}

// SnapshotService fournit un snapshot frais: cache disque, puis site distant, puis cache périmé
type SnapshotService struct {
	boards  map[int]int
	cache   *snapshot.DiskCache
	fetcher Fetcher
	archive Archive
	now     func() time.Time

	// une seule récupération par année à la fois
	sf singleflight.Group
}

// NewSnapshotService crée le service. archive peut être nil.
func NewSnapshotService(boards map[int]int, cache *snapshot.DiskCache, fetcher Fetcher, archive Archive) *SnapshotService {
	return &SnapshotService{
		boards:  boards,
		cache:   cache,
		fetcher: fetcher,
		archive: archive,
		now:     time.Now,
	}
}

// BoardID identifiant du classement d'une année
func (s *SnapshotService) BoardID(year int) (int, bool) {
	id, ok := s.boards[year]
	return id, ok
}

// Get retourne le snapshot d'une année. forceRefresh ignore le cache frais.
func (s *SnapshotService) Get(ctx context.Context, year int, forceRefresh bool) (*snapshot.Snapshot, error) {
	boardID, ok := s.BoardID(year)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBoard, year)
	}

	if !forceRefresh {
		cached, err := s.cache.Load(year, s.now(), false)
		if err != nil {
			logger.Warning("Cache read failed for %d: %v", year, err)
		}
		if cached != nil {
			logger.Debug("Using cached data for %d", year)
			return cached, nil
		}
	}

	v, err, _ := s.sf.Do(strconv.Itoa(year), func() (interface{}, error) {
		// partagé par tous les appelants: ne dépend pas de l'annulation du premier
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		return s.refresh(fetchCtx, year, boardID)
	})
	if err == nil {
		return v.(*snapshot.Snapshot), nil
	}

	stale, cacheErr := s.cache.Load(year, s.now(), true)
	if cacheErr == nil && stale != nil {
		logger.Warning("Fetch failed for %d, serving stale cache: %v", year, err)
		return stale, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNoData, err)
}

func (s *SnapshotService) refresh(ctx context.Context, year, boardID int) (*snapshot.Snapshot, error) {
	logger.Info("Retrieving leaderboard %d for %d", boardID, year)

	snap, err := s.fetcher.FetchLeaderboard(ctx, year, boardID)
	if err != nil {
		return nil, err
	}
	snap.Stamp(s.now())

	if err := s.cache.Store(year, snap); err != nil {
		logger.Warning("Cache write failed for %d: %v", year, err)
	}

	if s.archive != nil {
		if err := s.archive.Save(ctx, year, boardID, snap); err != nil {
			logger.Warning("Archive failed for %d: %v", year, err)
		}
	}

	logger.Success("Leaderboard %d refreshed (%d members)", year, len(snap.Members))
	return snap, nil
}
