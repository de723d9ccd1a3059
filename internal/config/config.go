package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const appDirName = ".lifetrack"

// Config is the runtime configuration for the lifetrack binary.
type Config struct {
	DBPath      string        `env:"LIFETRACK_DB"`
	EnvFile     string        `env:"LIFETRACK_ENV_FILE" env-default:".env"`
	LogUseCases bool          `env:"LIFETRACK_LOG_USE_CASES" env-default:"false"`
	LogLevel    string        `env:"LIFETRACK_LOG_LEVEL" env-default:"info"`
	SessionTTL  time.Duration `env:"LIFETRACK_SESSION_TTL" env-default:"720h"`
	TrendMonths int           `env:"LIFETRACK_TREND_MONTHS" env-default:"6"`
	HeatmapDays int           `env:"LIFETRACK_HEATMAP_DAYS" env-default:"30"`
	SessionFile string        `env:"LIFETRACK_SESSION_FILE"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	dir := appDir()
	return Config{
		DBPath:      filepath.Join(dir, "lifetrack.db"),
		EnvFile:     ".env",
		LogLevel:    "info",
		SessionTTL:  720 * time.Hour,
		TrendMonths: 6,
		HeatmapDays: 30,
		SessionFile: filepath.Join(dir, "session"),
	}
}

// Load preloads the dotenv file (if any) and reads the environment.
// Variables already set in the process environment win over the file.
func Load() (Config, error) {
	envFile := os.Getenv("LIFETRACK_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	def := DefaultConfig()
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = def.SessionFile
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.SessionFile = expandHome(cfg.SessionFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no command could work with.
func (c Config) Validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("LIFETRACK_SESSION_TTL must be positive (got %s)", c.SessionTTL)
	}
	if c.TrendMonths < 1 {
		return fmt.Errorf("LIFETRACK_TREND_MONTHS must be at least 1 (got %d)", c.TrendMonths)
	}
	if c.HeatmapDays < 1 {
		return fmt.Errorf("LIFETRACK_HEATMAP_DAYS must be at least 1 (got %d)", c.HeatmapDays)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level; Validate guarantees it parses.
func (c Config) SlogLevel() slog.Level {
	lvl, _ := ParseLevel(c.LogLevel)
	return lvl
}

func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LIFETRACK_LOG_LEVEL: unknown level %q", s)
	}
	return lvl, nil
}

func appDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, appDirName)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
