package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBoards classements privés suivis par défaut (année -> identifiant)
const DefaultBoards = "2020:642101,2021:642101,2022:1505617"

// Config configuration de l'application, chargée depuis .env puis l'environnement
type Config struct {
	Port           string
	CacheDir       string
	CacheTTL       time.Duration
	SessionCookie  string
	AoCBaseURL     string
	Boards         map[int]int
	AdminTokenHash string
	CORSOrigins    []string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	LogLevel     string
	LogFormat    string
	LogFile      bool
	LogDir       string
	LogRotateMB  int
	LogRetention int
}

// LoadConfig charge la configuration
func LoadConfig() (*Config, error) {
	// .env optionnel
	_ = godotenv.Load()

	boards, err := ParseBoards(getEnv("BOARDS", DefaultBoards))
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		CacheDir:       getEnv("CACHE_DIR", "cache"),
		CacheTTL:       ttl,
		SessionCookie:  getEnv("SESSION_COOKIE", ""),
		AoCBaseURL:     strings.TrimRight(getEnv("AOC_BASE_URL", "https://adventofcode.com"), "/"),
		Boards:         boards,
		AdminTokenHash: getEnv("ADMIN_TOKEN_HASH", ""),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),

		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "leaderboard"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "leaderboard"),

		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "pretty"),
		LogFile:      getEnv("LOG_FILE_ENABLED", "false") == "true",
		LogDir:       getEnv("LOG_DIR", "logs"),
		LogRotateMB:  getEnvInt("LOG_ROTATION_MB", 50),
		LogRetention: getEnvInt("LOG_RETENTION_DAYS", 14),
	}

	return cfg, nil
}

// DatabaseEnabled indique si l'archive Postgres est configurée
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// Years années configurées, triées
func (c *Config) Years() []int {
	years := make([]int, 0, len(c.Boards))
	for year := range c.Boards {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// LatestYear dernière année configurée, 0 si aucune
func (c *Config) LatestYear() int {
	years := c.Years()
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1]
}

// ParseBoards parse "2021:642101,2022:1505617"
func ParseBoards(raw string) (map[int]int, error) {
	boards := make(map[int]int)
	for _, item := range splitList(raw) {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid board %q, expected year:id", item)
		}
		year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid board year %q: %w", parts[0], err)
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid board id %q: %w", parts[1], err)
		}
		boards[year] = id
	}
	return boards, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}
