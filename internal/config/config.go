// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snake-pwa/internal/snake"
)

// ErrInvalid is returned by Validate for configurations nothing can run with.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Speed   SpeedConfig   `yaml:"speed"`
	Input   InputConfig   `yaml:"input"`
	Render  RenderConfig  `yaml:"render"`
	History HistoryConfig `yaml:"history"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines the grid and scoring.
type GameConfig struct {
	Width           int  `yaml:"width"`
	Height          int  `yaml:"height"`
	StartX          int  `yaml:"start_x"`
	StartY          int  `yaml:"start_y"`
	PointsPerFood   int  `yaml:"points_per_food"`
	RecordOnRestart bool `yaml:"record_on_restart"`
}

// SpeedConfig defines the tick interval progression, in milliseconds.
type SpeedConfig struct {
	InitialMS int `yaml:"initial_ms"`
	StepMS    int `yaml:"step_ms"` // Decrease per food eaten
	MinMS     int `yaml:"min_ms"`
}

// InputConfig defines input handling.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Host units a swipe must exceed
}

// RenderConfig defines how the board is sized on pixel surfaces.
type RenderConfig struct {
	MaxSide int `yaml:"max_side"` // Largest board side in pixels, 0 for no limit
}

// HistoryConfig defines the recent score list.
type HistoryConfig struct {
	Key  string `yaml:"key"`
	Size int    `yaml:"size"`
}

// StorageConfig defines the SQLite database location.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the static asset server.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	Root            string `yaml:"root"`
	ShutdownTimeout int    `yaml:"shutdown_timeout_secs"`
}

// SSHConfig defines the SSH game server.
type SSHConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleTimeout int    `yaml:"idle_timeout_mins"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Terminal host log file
}

// Rules converts the game and speed sections into session rules.
func (c Config) Rules() snake.Rules {
	return snake.Rules{
		Width:           c.Game.Width,
		Height:          c.Game.Height,
		Origin:          snake.Cell{X: c.Game.StartX, Y: c.Game.StartY},
		InitialInterval: time.Duration(c.Speed.InitialMS) * time.Millisecond,
		IntervalStep:    time.Duration(c.Speed.StepMS) * time.Millisecond,
		MinInterval:     time.Duration(c.Speed.MinMS) * time.Millisecond,
		PointsPerFood:   c.Game.PointsPerFood,
		RecordOnRestart: c.Game.RecordOnRestart,
		SwipeThreshold:  c.Input.SwipeThreshold,
	}
}

// ShutdownGrace returns the server shutdown deadline.
func (c Config) ShutdownGrace() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}

// Validate reports settings the application cannot run with.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch {
	case c.History.Size < 1:
		return fmt.Errorf("%w: history size must be at least 1", ErrInvalid)
	case c.History.Key == "":
		return fmt.Errorf("%w: history key is empty", ErrInvalid)
	case c.Input.SwipeThreshold < 0:
		return fmt.Errorf("%w: negative swipe threshold", ErrInvalid)
	case c.Render.MaxSide < 0:
		return fmt.Errorf("%w: negative max side", ErrInvalid)
	case c.SSH.Port < 0 || c.SSH.Port > 65535:
		return fmt.Errorf("%w: ssh port %d out of range", ErrInvalid, c.SSH.Port)
	}
	return nil
}
