package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultCacheTTL durée de fraîcheur du cache disque
const DefaultCacheTTL = 900 * time.Second

// DiskCache cache JSON sur disque, un fichier par année
type DiskCache struct {
	Dir string
	TTL time.Duration
}

// NewDiskCache crée un cache dans dir
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &DiskCache{Dir: dir, TTL: ttl}
}

// Path chemin du fichier de cache d'une année
func (c *DiskCache) Path(year int) string {
	return filepath.Join(c.Dir, strconv.Itoa(year)+".json")
}

// Load retourne le snapshot en cache s'il est encore frais à l'instant now.
// Avec forced, l'âge du fichier est ignoré. Un fichier absent ou corrompu retourne nil.
func (c *DiskCache) Load(year int, now time.Time, forced bool) (*Snapshot, error) {
	data, err := os.ReadFile(c.Path(year))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache: %w", err)
	}

	snap, err := Decode(data)
	if err != nil {
		// cache corrompu = absent
		return nil, nil
	}

	if forced || now.Sub(snap.FetchedAt()) < c.TTL {
		return snap, nil
	}
	return nil, nil
}

// Store écrit le snapshot de manière atomique (fichier temporaire puis renommage)
func (c *DiskCache) Store(year int, snap *Snapshot) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(c.Dir, strconv.Itoa(year)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.Path(year)); err != nil {
		return fmt.Errorf("rename cache: %w", err)
	}
	return nil
}
