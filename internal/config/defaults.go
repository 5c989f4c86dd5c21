package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hard-coded configuration, used when even the embedded
// file cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			Width:           20,
			Height:          20,
			StartX:          5,
			StartY:          5,
			PointsPerFood:   10,
			RecordOnRestart: true,
		},
		Speed: SpeedConfig{
			InitialMS: 150,
			StepMS:    2,
			MinMS:     50,
		},
		Render: RenderConfig{
			MaxSide: 400,
		},
		History: HistoryConfig{
			Key:  "snake_last5_scores",
			Size: 5,
		},
		Storage: StorageConfig{
			Path: "~/.snake/snake.db",
		},
		Server: ServerConfig{
			Addr:            "0.0.0.0:3000",
			Root:            "web",
			ShutdownTimeout: 10,
		},
		SSH: SSHConfig{
			Host:        "0.0.0.0",
			Port:        2222,
			HostKeyPath: "",
			IdleTimeout: 30,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
	}
}
