// Package config loads tour settings from defaults, a .env file, an optional YAML
// file and TOUR_* environment variables, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Notes formats understood by `tour notes`.
const (
	NotesMarkdown = "markdown"
	NotesHTML     = "html"
)

// Environment variable names.
const (
	EnvFile        = "TOUR_CONFIG"
	EnvEnv         = "TOUR_ENV"
	EnvDebug       = "TOUR_DEBUG"
	EnvColor       = "TOUR_COLOR"
	EnvLessons     = "TOUR_LESSONS"
	EnvNotesFormat = "TOUR_NOTES_FORMAT"
)

// ErrInvalidNotesFormat is returned when the notes format is neither markdown nor html.
var ErrInvalidNotesFormat = errors.New("config: invalid notes format")

// Config holds the runner's settings.
type Config struct {
	Env         string   `yaml:"env"`
	Debug       bool     `yaml:"debug"`
	Color       bool     `yaml:"color"`
	Lessons     []string `yaml:"lessons"`
	NotesFormat string   `yaml:"notes_format"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Env:         "local",
		NotesFormat: NotesMarkdown,
	}
}

// Load reads ./.env if present, then the YAML file at path (or $TOUR_CONFIG when path
// is empty), then applies TOUR_* overrides. Variables already set in the process
// environment win over .env entries.
func Load(path string) (Config, error) {
	return load(path, ".env", os.Getenv)
}

func load(path, dotenv string, getenv func(string) string) (Config, error) {
	fileVars, err := readDotEnv(dotenv)
	if err != nil {
		return Config{}, err
	}
	lookup := func(k string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return fileVars[k]
	}

	cfg := Default()

	if path == "" {
		path = lookup(EnvFile)
	}
	if path != "" {
		if err := readYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that have a fixed set of values.
func (c Config) Validate() error {
	switch c.NotesFormat {
	case NotesMarkdown, NotesHTML:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidNotesFormat, c.NotesFormat, NotesMarkdown, NotesHTML)
	}
}

func readDotEnv(name string) (map[string]string, error) {
	if name == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", name, err)
	}
	return vars, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and leaves the defaults alone.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) string) error {
	if v := lookup(EnvEnv); v != "" {
		cfg.Env = v
	}
	if v := lookup(EnvNotesFormat); v != "" {
		cfg.NotesFormat = strings.ToLower(v)
	}
	if v := lookup(EnvLessons); v != "" {
		cfg.Lessons = splitList(v)
	}

	var err error
	if cfg.Debug, err = getenvBool(lookup, EnvDebug, cfg.Debug); err != nil {
		return err
	}
	if cfg.Color, err = getenvBool(lookup, EnvColor, cfg.Color); err != nil {
		return err
	}
	return nil
}

func getenvBool(lookup func(string) string, k string, def bool) (bool, error) {
	v := lookup(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("config: %s must be a boolean, got %q", k, v)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
