package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagSurface      = flag.String("surface", "", "Surface kind (see 'surfgen list')")
	flagSubdivisions = flag.Int("subdivisions", 0, "Grid cells per axis (1-5000)")
	flagWorkers      = flag.Int("workers", 0, "Goroutines used to sample the grid")
	flagFormat       = flag.String("format", "", "Export format: obj or glb")
	flagOut          = flag.String("out", "", "Mesh output path")
	flagPNG          = flag.String("png", "", "Preview output path")
	flagWidth        = flag.Int("width", 0, "Preview width")
	flagHeight       = flag.Int("height", 0, "Preview height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSurface != "" {
		cfg.Surface.Kind = *flagSurface
	}
	if *flagSubdivisions != 0 {
		cfg.Surface.Subdivisions = *flagSubdivisions
	}
	if *flagWorkers > 0 {
		cfg.Mesh.Workers = *flagWorkers
	}
	if *flagFormat != "" {
		cfg.Export.Format = *flagFormat
	}
	if *flagOut != "" {
		cfg.Export.Path = *flagOut
	}
	if *flagPNG != "" {
		cfg.Preview.Path = *flagPNG
	}
	if *flagWidth > 0 {
		cfg.Preview.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Preview.Height = *flagHeight
	}
}
