package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/thywilljoshua/pdflayout/internal/ai"
	"github.com/thywilljoshua/pdflayout/internal/extract"
	"github.com/thywilljoshua/pdflayout/internal/layout"
	"github.com/thywilljoshua/pdflayout/internal/render"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Engine    string       `yaml:"engine"`
	Workers   int          `yaml:"workers"`
	PageBreak string       `yaml:"page_break"`
	Format    string       `yaml:"format"`
	Log       LogConfig    `yaml:"log"`
	Gemini    GeminiConfig `yaml:"gemini"`
	Server    ServerConfig `yaml:"server"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
	// APIKey only comes from the environment.
	APIKey string `yaml:"-"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Default() Config {
	return Config{
		Engine:    extract.DefaultEngine,
		Workers:   1,
		PageBreak: layout.DefaultPageBreak,
		Format:    render.FormatText,
		Log:       LogConfig{Level: "info"},
		Gemini:    GeminiConfig{Model: ai.DefaultModel},
		Server: ServerConfig{
			Addr:           ":8080",
			MaxUploadBytes: 32 << 20,
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load layers defaults, the YAML file at path (skipped when empty), a .env
// file in the working directory if present, and the process environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("PDFLAYOUT_ENGINE"); v != "" {
		c.Engine = v
	}
	if v := os.Getenv("PDFLAYOUT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PDFLAYOUT_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PDFLAYOUT_WORKERS=%q", ErrInvalidConfig, v)
		}
		c.Workers = n
	}
	return nil
}

func (c Config) Validate() error {
	if !slices.Contains(extract.EngineNames(), strings.ToLower(c.Engine)) {
		return fmt.Errorf("%w: engine %q (want one of %s)", ErrInvalidConfig, c.Engine, strings.Join(extract.EngineNames(), ", "))
	}
	if !slices.Contains(render.Formats, c.Format) {
		return fmt.Errorf("%w: format %q (want one of %s)", ErrInvalidConfig, c.Format, strings.Join(render.Formats, ", "))
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: server.max_upload_bytes must be positive", ErrInvalidConfig)
	}
	return nil
}
