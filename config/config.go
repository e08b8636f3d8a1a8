// Package config loads the engine settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Shaders  ShaderConfig   `yaml:"shaders"`
	Controls ControlsConfig `yaml:"controls"`
	Log      LogConfig      `yaml:"log"`

	// Profile is one of "", "cpu" or "mem"
	Profile string `yaml:"profile"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	FieldOfView float32    `yaml:"fov"` // degrees
	NearPlane   float32    `yaml:"near"`
	FarPlane    float32    `yaml:"far"`
}

type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
	ZoomSpeed        float32 `yaml:"zoom_speed"`
	RollSpeed        float32 `yaml:"roll_speed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  500,
			Height: 500,
			Title:  "Dark Nebula",
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 5},
			FieldOfView: 45,
			NearPlane:   0.1,
			FarPlane:    100,
		},
		Shaders: ShaderConfig{
			Vertex:   "resources/shaders/shader.vs",
			Fragment: "resources/shaders/shader.fs",
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.7,
			MoveSpeed:        5,
			ZoomSpeed:        1,
			RollSpeed:        1.5,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that would give a degenerate window or projection
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		return fmt.Errorf("camera fov %v must be between 0 and 180 degrees", c.Camera.FieldOfView)
	}
	if c.Camera.NearPlane <= 0 || c.Camera.NearPlane >= c.Camera.FarPlane {
		return fmt.Errorf("camera planes need 0 < near (%v) < far (%v)", c.Camera.NearPlane, c.Camera.FarPlane)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("vertex and fragment shaders are required")
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile mode %q", c.Profile)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

func (c Config) AspectRatio() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}
