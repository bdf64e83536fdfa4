// Package export writes finalized meshes to interchange files and renders
// quick previews of them.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/parasurf/internal/finalize"
)

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is a mesh file format.
type Format string

// Supported formats.
const (
	FormatOBJ Format = "obj"
	FormatGLB Format = "glb"
)

// ParseFormat resolves a format name or file extension (".obj", "gltf").
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "obj":
		return FormatOBJ, nil
	case "glb", "gltf":
		return FormatGLB, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Save writes m to path in the given format.
func Save(path string, format Format, m *finalize.Mesh) error {
	switch format {
	case FormatOBJ:
		return SaveOBJ(path, m)
	case FormatGLB:
		return SaveGLB(path, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
