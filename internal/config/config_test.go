package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoards(t *testing.T) {
	boards, err := ParseBoards(DefaultBoards)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2020: 642101, 2021: 642101, 2022: 1505617}, boards)

	boards, err = ParseBoards(" 2023 : 1 , ")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2023: 1}, boards)

	_, err = ParseBoards("2022")
	assert.Error(t, err)
	_, err = ParseBoards("abc:1")
	assert.Error(t, err)
	_, err = ParseBoards("2022:abc")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("BOARDS", "2019:1,2023:2")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("AOC_BASE_URL", "http://localhost:9000/")
	t.Setenv("DB_HOST", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []int{2019, 2023}, cfg.Years())
	assert.Equal(t, 2023, cfg.LatestYear())
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "http://localhost:9000", cfg.AoCBaseURL)
	assert.False(t, cfg.DatabaseEnabled())
}

func TestLoadConfig_InvalidTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLatestYear_NoBoards(t *testing.T) {
	assert.Equal(t, 0, (&Config{}).LatestYear())
}
