package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/bidirectional"
	"github.com/katalvlaran/gridpath/forwardchain"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/informed"
)

// Engine names accepted in the engine field.
const (
	EngineBidirectional   = bidirectional.EngineName
	EngineForwardChaining = forwardchain.EngineName
	EngineAStar           = informed.EngineName
)

// Environment variables that override file values.
const (
	EnvEngine    = "GRIDPATH_ENGINE"
	EnvLogLevel  = "GRIDPATH_LOG_LEVEL"
	EnvHeuristic = "GRIDPATH_HEURISTIC"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("scenario: invalid config")

// Config is one search scenario as written in a YAML file.
//
// Exactly one of Grid and GridText must be set. Start and Goal are [row, col].
// Empty order lists select the engine's default order.
type Config struct {
	Name          string   `yaml:"name"`
	Grid          [][]int  `yaml:"grid,omitempty"`
	GridText      string   `yaml:"grid_text,omitempty"`
	Start         []int    `yaml:"start"`
	Goal          []int    `yaml:"goal"`
	Engine        string   `yaml:"engine"`
	ForwardOrder  []string `yaml:"forward_order,omitempty"`
	BackwardOrder []string `yaml:"backward_order,omitempty"`
	Order         []string `yaml:"order,omitempty"`
	Heuristic     string   `yaml:"heuristic"`
	LogLevel      string   `yaml:"log_level"`
}

// Default returns a Config with engine, heuristic and log level filled in.
// Grid and endpoints are left empty.
func Default() Config {
	return Config{
		Engine:    EngineBidirectional,
		Heuristic: "manhattan",
		LogLevel:  "info",
	}
}

// Load reads the first scenario of a YAML file with priority env > file > defaults.
func Load(path string) (Config, error) {
	all, err := LoadAll(path)
	if err != nil {
		return Config{}, err
	}
	return all[0], nil
}

// LoadAll reads every YAML document of the file at path as a scenario.
// Each document starts from Default, then env overrides apply, then Validate.
func LoadAll(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	cfgs, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return cfgs, nil
}

// Decode parses one or more YAML documents into validated configs.
func Decode(data []byte) ([]Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var out []Config
	for i := 0; ; i++ {
		cfg := Default()
		if err := dec.Decode(&cfg); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		applyEnv(&cfg)
		if cfg.Name == "" {
			cfg.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("document %d (%s): %w", i, cfg.Name, err)
		}
		out = append(out, cfg)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidConfig)
	}
	return out, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvEngine); v != "" {
		cfg.Engine = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvHeuristic); v != "" {
		cfg.Heuristic = v
	}
}

// Validate checks field values without building the grid.
func (c Config) Validate() error {
	switch c.Engine {
	case EngineBidirectional, EngineForwardChaining, EngineAStar:
	default:
		return fmt.Errorf("%w: engine %q (want %s, %s or %s)",
			ErrInvalidConfig, c.Engine, EngineBidirectional, EngineForwardChaining, EngineAStar)
	}
	if _, err := informed.ParseHeuristic(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case len(c.Grid) == 0 && strings.TrimSpace(c.GridText) == "":
		return fmt.Errorf("%w: one of grid or grid_text is required", ErrInvalidConfig)
	case len(c.Grid) > 0 && c.GridText != "":
		return fmt.Errorf("%w: grid and grid_text are mutually exclusive", ErrInvalidConfig)
	}
	if len(c.Start) != 2 {
		return fmt.Errorf("%w: start must be [row, col], got %v", ErrInvalidConfig, c.Start)
	}
	if len(c.Goal) != 2 {
		return fmt.Errorf("%w: goal must be [row, col], got %v", ErrInvalidConfig, c.Goal)
	}
	for field, names := range map[string][]string{
		"forward_order":  c.ForwardOrder,
		"backward_order": c.BackwardOrder,
		"order":          c.Order,
	} {
		if len(names) == 0 {
			continue
		}
		if _, err := gridgraph.ParseOrder(names); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, field, err)
		}
	}
	return nil
}

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
