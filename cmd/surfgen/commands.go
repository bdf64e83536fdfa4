package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/parasurf/internal/config"
	"github.com/Faultbox/parasurf/internal/export"
	"github.com/Faultbox/parasurf/internal/finalize"
	"github.com/Faultbox/parasurf/pkg/mesh"
	"github.com/Faultbox/parasurf/pkg/surface"
)

func cmdList(out io.Writer) error {
	fmt.Fprintf(out, "%-12s %-26s %s\n", "KIND", "U", "V")
	for _, k := range surface.Kinds() {
		b, err := surface.BoundsFor(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s %-26s %s\n", k,
			fmt.Sprintf("[%.4f, %.4f]", b.UMin, b.UMax),
			fmt.Sprintf("[%.4f, %.4f]", b.VMin, b.VMax))
	}
	return nil
}

func cmdBounds(out io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: surfgen bounds <kind>")
	}
	kind, err := surface.ParseKind(args[0])
	if err != nil {
		return err
	}
	b, err := surface.BoundsFor(kind)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %s\n", kind, b)
	return nil
}

// buildMesh generates and finalizes the configured surface.
func buildMesh(cfg *config.Config, log *zap.Logger) (*finalize.Mesh, error) {
	kind, err := cfg.SurfaceKind()
	if err != nil {
		return nil, err
	}

	gen := mesh.NewGenerator(
		mesh.WithWorkers(cfg.Mesh.Workers),
		mesh.WithLogger(log.Named("mesh")),
	)

	var result *finalize.Mesh
	start := time.Now()
	err = gen.Build(kind, cfg.Surface.Subdivisions, finalize.Sink(func(m *finalize.Mesh) error {
		result = m
		return nil
	}))
	if err != nil {
		return nil, err
	}

	log.Info("mesh ready",
		zap.Stringer("kind", kind),
		zap.Int("subdivisions", cfg.Surface.Subdivisions),
		zap.Int("vertices", len(result.Positions)),
		zap.Int("triangles", len(result.Indices)/3),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func cmdGenerate(cfg *config.Config, out io.Writer, log *zap.Logger) error {
	format, err := cfg.ExportFormat()
	if err != nil {
		return err
	}
	m, err := buildMesh(cfg, log)
	if err != nil {
		return err
	}

	path := cfg.Export.Path
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := export.Save(path, format, m); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s (%s, %d vertices, %d triangles)\n",
		path, format, len(m.Positions), len(m.Indices)/3)
	return nil
}

func cmdPreview(cfg *config.Config, out io.Writer, log *zap.Logger) error {
	m, err := buildMesh(cfg, log)
	if err != nil {
		return err
	}

	opts := export.DefaultPreviewOptions()
	opts.Width = cfg.Preview.Width
	opts.Height = cfg.Preview.Height
	opts.Yaw = cfg.Preview.Yaw
	opts.Pitch = cfg.Preview.Pitch

	path := cfg.Preview.Path
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := export.SavePNG(path, export.Render(m, opts)); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s (%dx%d)\n", path, opts.Width, opts.Height)
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
