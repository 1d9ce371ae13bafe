package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskCache_Load(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile("testdata/2022.json")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2022.json"), data, 0644))

	cache := NewDiskCache(dir, 0)

	tests := []struct {
		name   string
		year   int
		now    time.Time
		forced bool
		hit    bool
	}{
		{"missing year", 1, time.Now(), false, false},
		{"stale", 2022, time.Now(), false, false},
		{"stale but forced", 2022, time.Now(), true, true},
		{"fresh", 2022, time.Unix(124, 0), false, true},
		{"just expired", 2022, time.Unix(124+900, 0), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := cache.Load(tt.year, tt.now, tt.forced)
			require.NoError(t, err)
			if tt.hit {
				assert.NotNil(t, snap)
			} else {
				assert.Nil(t, snap)
			}
		})
	}
}

func TestDiskCache_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2021.json"), []byte("{not json"), 0644))

	snap, err := NewDiskCache(dir, time.Minute).Load(2021, time.Now(), true)
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestDiskCache_StoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	cache := NewDiskCache(dir, time.Minute)

	snap := loadFixture(t)
	now := time.Now()
	snap.Stamp(now)
	require.NoError(t, cache.Store(2022, snap))

	loaded, err := cache.Load(2022, now.Add(30*time.Second), false)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Len(t, loaded.Members, 2)

	entries, skipped := loaded.Entries()
	assert.Empty(t, skipped)
	assert.Len(t, entries, 2)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
