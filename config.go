package wordsearch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"crosswarped.com/wordsearch/pkg/filler"
	"crosswarped.com/wordsearch/pkg/primitives"
)

// Config holds settings shared by the CLI and the cloud function.
type Config struct {
	ProjectID       string `yaml:"project_id"       env:"GCP_PROJECT_ID"`
	CredentialsFile string `yaml:"credentials_file" env:"WORDSEARCH_CREDENTIALS_FILE"`
	// WordsTable is the fully qualified BigQuery table (project.dataset.table) themed words live in.
	WordsTable     string `yaml:"words_table"      env:"WORDSEARCH_WORDS_TABLE"`
	ThemeWordLimit int    `yaml:"theme_word_limit" env:"WORDSEARCH_THEME_WORD_LIMIT" env-default:"12"`

	GeminiRegion string `yaml:"gemini_region" env:"GCP_REGION"             env-default:"europe-west1"`
	GeminiModel  string `yaml:"gemini_model"  env:"WORDSEARCH_GEMINI_MODEL" env-default:"gemini-2.5-flash"`

	DefaultGridSize   int    `yaml:"default_grid_size"  env:"WORDSEARCH_DEFAULT_GRID_SIZE"  env-default:"15"`
	MaxGridSize       int    `yaml:"max_grid_size"      env:"WORDSEARCH_MAX_GRID_SIZE"      env-default:"30"`
	DefaultAttempts   int    `yaml:"default_attempts"   env:"WORDSEARCH_DEFAULT_ATTEMPTS"   env-default:"200"`
	DefaultDifficulty string `yaml:"default_difficulty" env:"WORDSEARCH_DEFAULT_DIFFICULTY" env-default:"medium"`
	Letters           string `yaml:"letters"            env:"WORDSEARCH_LETTERS"            env-default:"portuguese"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LoadConfig reads configuration from an optional YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). An empty path reads ENV + defaults only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the defaults are usable together.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxGridSize <= 0 {
		errs = append(errs, fmt.Errorf("max_grid_size must be positive, got %d", c.MaxGridSize))
	}
	if c.DefaultGridSize <= 0 || c.DefaultGridSize > c.MaxGridSize {
		errs = append(errs, fmt.Errorf("default_grid_size must be in [1, %d], got %d", c.MaxGridSize, c.DefaultGridSize))
	}
	if c.DefaultAttempts <= 0 {
		errs = append(errs, fmt.Errorf("default_attempts must be positive, got %d", c.DefaultAttempts))
	}
	if c.ThemeWordLimit <= 0 {
		errs = append(errs, fmt.Errorf("theme_word_limit must be positive, got %d", c.ThemeWordLimit))
	}
	if _, err := primitives.ParseDifficulty(c.DefaultDifficulty); err != nil {
		errs = append(errs, fmt.Errorf("default_difficulty: %w", err))
	}
	if _, err := filler.ForLanguage(c.Letters); err != nil {
		errs = append(errs, fmt.Errorf("letters: %w", err))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
