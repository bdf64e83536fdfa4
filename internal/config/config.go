// Package config handles surfgen configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Surface SurfaceConfig `yaml:"surface" toml:"surface"`
	Mesh    MeshConfig    `yaml:"mesh" toml:"mesh"`
	Export  ExportConfig  `yaml:"export" toml:"export"`
	Preview PreviewConfig `yaml:"preview" toml:"preview"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// SurfaceConfig selects what gets generated.
type SurfaceConfig struct {
	Kind         string `yaml:"kind" toml:"kind"`                 // Surface name, e.g. "Torus"
	Subdivisions int    `yaml:"subdivisions" toml:"subdivisions"` // Grid cells per axis
}

// MeshConfig holds generator tuning.
type MeshConfig struct {
	Workers int `yaml:"workers" toml:"workers"` // Goroutines sampling grid rows (1 = sequential)
}

// ExportConfig holds mesh file output settings.
type ExportConfig struct {
	Format string `yaml:"format" toml:"format"` // "obj" or "glb"
	Path   string `yaml:"path" toml:"path"`
}

// PreviewConfig holds PNG preview settings.
type PreviewConfig struct {
	Width  int     `yaml:"width" toml:"width"`
	Height int     `yaml:"height" toml:"height"`
	Yaw    float32 `yaml:"yaw" toml:"yaw"`     // radians
	Pitch  float32 `yaml:"pitch" toml:"pitch"` // radians
	Path   string  `yaml:"path" toml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
	Format  string `yaml:"format" toml:"format"` // "console" or "json"
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Surface: SurfaceConfig{
			Kind:         "Dini",
			Subdivisions: 25,
		},
		Mesh: MeshConfig{
			Workers: 1,
		},
		Export: ExportConfig{
			Format: "obj",
			Path:   "surface.obj",
		},
		Preview: PreviewConfig{
			Width:  800,
			Height: 600,
			Yaw:    0.6,
			Pitch:  0.5,
			Path:   "surface.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Format:  "console",
		},
	}
}
