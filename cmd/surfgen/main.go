// surfgen generates triangle meshes of parametric surfaces.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/parasurf/internal/config"
	"github.com/Faultbox/parasurf/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg, args, os.Stdout, logger.Named("surfgen")); err != nil {
		logger.Debug("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, out io.Writer, log *zap.Logger) error {
	command := args[0]
	rest := args[1:]

	switch command {
	case "list", "ls":
		return cmdList(out)
	case "bounds":
		return cmdBounds(out, rest)
	case "generate", "gen":
		return cmdGenerate(cfg, out, log)
	case "preview":
		return cmdPreview(cfg, out, log)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `surfgen - parametric surface mesh generator

Usage:
  surfgen [flags] <command> [args]

Commands:
  list                 List surface kinds and their parameter domains
  bounds <kind>        Show the parameter domain of one surface
  generate             Generate a mesh and write it as OBJ or binary glTF
  preview              Generate a mesh and render a PNG preview

Flags:
  -config <file>       Config file (.yaml or .toml)
  -surface <kind>      Surface kind
  -subdivisions <n>    Grid cells per axis (1-5000)
  -workers <n>         Goroutines used to sample the grid
  -format obj|glb      Export format
  -out <file>          Mesh output path
  -png <file>          Preview output path
  -width/-height <n>   Preview size
  -debug               Enable debug logging

Examples:
  surfgen list
  surfgen -surface torus -subdivisions 64 -out torus.obj generate
  surfgen -surface trefoil -format glb -out trefoil.glb generate
  surfgen -surface boy-surface -png boy.png preview`)
}
