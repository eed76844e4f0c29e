// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Profiler ProfilerConfig `yaml:"profiler"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// GraphicsConfig holds rendering settings.
type GraphicsConfig struct {
	VSync            bool `yaml:"vsync"`
	SoftwareRenderer bool `yaml:"software_renderer"`
}

// CameraConfig holds the initial orbit camera pose, its constraints, and
// input sensitivities. Nil bound fields leave that side unconstrained.
type CameraConfig struct {
	Distance float32    `yaml:"distance"`
	Pitch    float32    `yaml:"pitch"`
	Yaw      float32    `yaml:"yaw"`
	Target   [3]float32 `yaml:"target"`

	MinDistance *float32 `yaml:"min_distance"`
	MaxDistance *float32 `yaml:"max_distance"`
	MinYaw      *float32 `yaml:"min_yaw"`
	MaxYaw      *float32 `yaml:"max_yaw"`

	RotateSpeed float32 `yaml:"rotate_speed"`
	ZoomSpeed   float32 `yaml:"zoom_speed"`
}

// ProfilerConfig holds frame statistics settings.
type ProfilerConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	minDistance := float32(1.1)
	return &Config{
		Window: WindowConfig{
			Title:  "Orbit Cube",
			Width:  1280,
			Height: 720,
		},
		Graphics: GraphicsConfig{
			VSync:            true,
			SoftwareRenderer: false,
		},
		Camera: CameraConfig{
			Distance:    1.0,
			Pitch:       0.0,
			Yaw:         0.0,
			Target:      [3]float32{0, 0, 0},
			MinDistance: &minDistance,
			RotateSpeed: 0.005,
			ZoomSpeed:   0.1,
		},
		Profiler: ProfilerConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
