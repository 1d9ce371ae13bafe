package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config configuration du logger
type Config struct {
	Level         string // debug, info, warn, error
	Format        string // json, pretty
	FileEnabled   bool
	FilePath      string // dossier des logs
	RotationSize  int    // MB
	RetentionDays int
	ServiceName   string
}

// Init initialise le logger global
func Init(cfg Config) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var writers []io.Writer
	if cfg.Format == "pretty" {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		})
	} else {
		writers = append(writers, os.Stderr)
	}

	if cfg.FileEnabled {
		if err := os.MkdirAll(cfg.FilePath, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.FilePath, "app.log"),
			MaxSize:    cfg.RotationSize,
			MaxAge:     cfg.RetentionDays,
			MaxBackups: 10,
			Compress:   true,
		})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger()

	return nil
}

// Info log une information générale
func Info(message string, args ...interface{}) {
	log.Info().Msgf(message, args...)
}

// Success log un succès
func Success(message string, args ...interface{}) {
	log.Info().Bool("success", true).Msgf("✓ "+message, args...)
}

// Warning log un avertissement
func Warning(message string, args ...interface{}) {
	log.Warn().Msgf(message, args...)
}

// Error log une erreur
func Error(message string, args ...interface{}) {
	log.Error().Msgf(message, args...)
}

// Debug log un message de debug
func Debug(message string, args ...interface{}) {
	log.Debug().Msgf(message, args...)
}

// Request log une requête HTTP avec sa durée
func Request(requestID, method, path string, statusCode int, duration time.Duration) {
	event := log.Info()
	if statusCode >= 500 {
		event = log.Error()
	} else if statusCode >= 400 {
		event = log.Warn()
	}

	event.
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", statusCode).
		Str("duration", formatDuration(duration)).
		Msg("request")
}

// StatusColor couleur associée à un code HTTP, pour l'affichage terminal
func StatusColor(statusCode int) *color.Color {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return color.New(color.FgGreen)
	case statusCode >= 300 && statusCode < 400:
		return color.New(color.FgCyan)
	case statusCode >= 400 && statusCode < 500:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgRed)
}

func formatDuration(duration time.Duration) string {
	if duration < time.Millisecond {
		return fmt.Sprintf("%dµs", duration.Microseconds())
	} else if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", duration.Seconds())
}
