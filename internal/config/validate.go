package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/parasurf/internal/export"
	"github.com/Faultbox/parasurf/pkg/mesh"
	"github.com/Faultbox/parasurf/pkg/surface"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if _, kerr := surface.ParseKind(c.Surface.Kind); kerr != nil {
		err = multierr.Append(err, fmt.Errorf("surface.kind: %w", kerr))
	}
	if s := c.Surface.Subdivisions; s < mesh.MinSubdivisions || s > mesh.MaxSubdivisions {
		err = multierr.Append(err, fmt.Errorf("surface.subdivisions: %w: %d (want %d..%d)",
			mesh.ErrInvalidResolution, s, mesh.MinSubdivisions, mesh.MaxSubdivisions))
	}
	if c.Mesh.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("mesh.workers: must not be negative, got %d", c.Mesh.Workers))
	}
	if _, ferr := export.ParseFormat(c.Export.Format); ferr != nil {
		err = multierr.Append(err, fmt.Errorf("export.format: %w", ferr))
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("preview: size must be positive, got %dx%d",
			c.Preview.Width, c.Preview.Height))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}

	return err
}

// SurfaceKind returns the configured surface kind.
func (c *Config) SurfaceKind() (surface.Kind, error) {
	return surface.ParseKind(c.Surface.Kind)
}

// ExportFormat returns the configured export format.
func (c *Config) ExportFormat() (export.Format, error) {
	return export.ParseFormat(c.Export.Format)
}
