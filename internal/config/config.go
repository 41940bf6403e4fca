package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/jxsim/internal/model"
)

// DefaultPath is where the CLI looks for the config file.
const DefaultPath = "config/jxsim.yaml"

// Config holds all configuration for the simulation CLI.
type Config struct {
	LogLevel string `yaml:"log_level" env:"JXSIM_LOG_LEVEL"`
	Language string `yaml:"language" env:"JXSIM_LANGUAGE"` // BCP 47 tag for number formatting

	Progression model.Progression `yaml:"progression"`
	Inventory   Inventory         `yaml:"inventory"`
	Sects       Sects             `yaml:"sects"`

	// Lessons run when the CLI gets no arguments, in order.
	Lessons []string `yaml:"lessons" env:"JXSIM_LESSONS" envSeparator:","`
}

// Inventory holds the starting bag of every hero.
type Inventory struct {
	StartingGold int32 `yaml:"starting_gold" env:"JXSIM_STARTING_GOLD"`
	Capacity     int   `yaml:"capacity" env:"JXSIM_INVENTORY_CAPACITY"`
}

// Sects holds specialization attributes used by the roster.
type Sects struct {
	InnerStrength int32 `yaml:"inner_strength"`
	SwordMastery  int32 `yaml:"sword_mastery"`
	Chi           int32 `yaml:"chi"`
	WarriorPower  int32 `yaml:"warrior_power"`
	MagePower     int32 `yaml:"mage_power"`
	Mana          int32 `yaml:"mana"`
	ArcherPower   int32 `yaml:"archer_power"`
	Arrows        int32 `yaml:"arrows"`
}

// DefaultSects returns the tutorial values for every specialization.
func DefaultSects() Sects {
	return Sects{
		InnerStrength: model.DefaultInnerStrength,
		SwordMastery:  model.DefaultSwordMastery,
		Chi:           model.DefaultChi,
		WarriorPower:  model.DefaultWarriorPower,
		MagePower:     model.DefaultMagePower,
		Mana:          model.DefaultMana,
		ArcherPower:   model.DefaultArcherPower,
		Arrows:        model.DefaultArrows,
	}
}

// DefaultLessons lists every lesson in teaching order.
func DefaultLessons() []string {
	return []string{"classes", "inheritance", "encapsulation", "polymorphism", "homework"}
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:    "info",
		Language:    "en",
		Progression: model.DefaultProgression(),
		Inventory: Inventory{
			StartingGold: model.DefaultStartingGold,
			Capacity:     model.DefaultCapacity,
		},
		Sects:   DefaultSects(),
		Lessons: DefaultLessons(),
	}
}

// Load loads config from a YAML file, then applies environment overrides.
// If the file doesn't exist, defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Validate checks values that would break the simulation.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: language %q: %v", ErrInvalid, c.Language, err)
	}
	if c.Inventory.StartingGold < 0 {
		return fmt.Errorf("%w: inventory.starting_gold %d is negative", ErrInvalid, c.Inventory.StartingGold)
	}
	if c.Inventory.Capacity < 1 {
		return fmt.Errorf("%w: inventory.capacity %d must be >= 1", ErrInvalid, c.Inventory.Capacity)
	}
	p := c.Progression
	if p.HealthPerLevel <= 0 || p.XPPerLevel <= 0 || p.RestPerLevel < 0 || p.StatPointsPerLevel < 0 {
		return fmt.Errorf("%w: progression %+v", ErrInvalid, p)
	}
	if max(p.HealthPerLevel, p.XPPerLevel, p.RestPerLevel, p.StatPointsPerLevel) > model.MaxPerLevel {
		return fmt.Errorf("%w: progression %+v exceeds %d per level", ErrInvalid, p, model.MaxPerLevel)
	}
	return nil
}
