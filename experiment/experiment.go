// Package experiment describes a full training run as data: board, wind,
// start and goal, learning parameters and seed. Configs load from YAML or
// come from the built-in examples.
package experiment

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sw965/windy/board"
	"github.com/sw965/windy/grid"
	windrand "github.com/sw965/windy/math/rand"
	"github.com/sw965/windy/sarsa"
	"github.com/sw965/windy/wind"
)

// Wind kinds accepted by Config.Wind.
const (
	WindSouth = "south"
	WindWest  = "west"
)

var (
	ErrUnknownWind  = errors.New("experiment: unknown wind kind")
	ErrBadParameter = errors.New("experiment: parameter out of range")
)

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p PositionConfig) position() grid.Position {
	return grid.Position{X: p.X, Y: p.Y}
}

type MoveConfig struct {
	DX     int    `yaml:"dx"`
	DY     int    `yaml:"dy"`
	Symbol string `yaml:"symbol"`
}

// Config is the whole configuration surface of one run. Zero-valued learning
// parameters are filled with the canonical defaults, so a minimal YAML file
// only needs the board, the wind and the two positions.
type Config struct {
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	Wind       string         `yaml:"wind"`
	WindSpeeds map[int]int    `yaml:"wind_speeds"`
	Start      PositionConfig `yaml:"start"`
	Goal       PositionConfig `yaml:"goal"`
	TotalSteps int            `yaml:"total_steps"`
	Alpha      float64        `yaml:"alpha"`
	Gamma      float64        `yaml:"gamma"`
	Epsilon    float64        `yaml:"epsilon"`
	Seed       int64          `yaml:"seed"`
	Moves      []MoveConfig   `yaml:"moves"`
}

// Load reads a Config from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("experiment: parsing %s: %w", path, err)
	}
	return c, nil
}

func (c Config) withDefaults() Config {
	if c.TotalSteps == 0 {
		c.TotalSteps = 25000
	}
	if c.Alpha == 0 {
		c.Alpha = 0.05
	}
	if c.Gamma == 0 {
		c.Gamma = 0.9
	}
	if c.Epsilon == 0 {
		c.Epsilon = 0.05
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	return c
}

func (c Config) validate() error {
	if c.Wind != WindSouth && c.Wind != WindWest {
		return fmt.Errorf("%w: %q", ErrUnknownWind, c.Wind)
	}
	if c.TotalSteps < 0 {
		return fmt.Errorf("%w: total_steps %d", ErrBadParameter, c.TotalSteps)
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("%w: alpha %v", ErrBadParameter, c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("%w: gamma %v", ErrBadParameter, c.Gamma)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("%w: epsilon %v", ErrBadParameter, c.Epsilon)
	}
	return nil
}

func (c Config) moveSymbols() sarsa.MoveSymbols {
	if len(c.Moves) == 0 {
		return sarsa.StandardMoveSymbols()
	}
	ms := make(sarsa.MoveSymbols, len(c.Moves))
	for i, m := range c.Moves {
		ms[i] = sarsa.MoveSymbol{Move: grid.Move{DX: m.DX, DY: m.DY}, Symbol: m.Symbol}
	}
	return ms
}

// Trainer builds a ready-to-run trainer, applying defaults and validating the
// parameter ranges. Board construction rejects degenerate sizes, trainer
// validation rejects off-board start/goal positions.
func (c Config) Trainer() (sarsa.Trainer, error) {
	c = c.withDefaults()
	if err := c.validate(); err != nil {
		return sarsa.Trainer{}, err
	}

	var blower wind.Blower
	switch c.Wind {
	case WindSouth:
		blower = wind.South{Speeds: c.WindSpeeds}
	case WindWest:
		blower = wind.West{Speeds: c.WindSpeeds}
	}

	b, err := board.New(c.Width, c.Height, blower)
	if err != nil {
		return sarsa.Trainer{}, err
	}

	trainer := sarsa.Trainer{
		Board:       b,
		Start:       c.Start.position(),
		Goal:        c.Goal.position(),
		TotalSteps:  c.TotalSteps,
		Alpha:       c.Alpha,
		Gamma:       c.Gamma,
		Epsilon:     c.Epsilon,
		MoveSymbols: c.moveSymbols(),
		Rand:        windrand.NewMt19937(c.Seed),
	}
	if err := trainer.Validate(); err != nil {
		return sarsa.Trainer{}, err
	}
	return trainer, nil
}
