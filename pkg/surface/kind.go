// Package surface evaluates closed-form parametric surfaces.
//
// Every surface kind maps a parameter pair (u, v) to a point in 3D space and
// owns a fixed rectangular domain over which the formula is sampled. Several
// domains start at 0.001 instead of 0 so the formula never hits its singular
// point (a logarithm or division by zero).
package surface

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for a kind with no registered domain.
var ErrUnknownKind = errors.New("unknown surface kind")

// Kind selects one of the built-in parametric surfaces.
type Kind int

// Surface kinds, in the order they are listed to users.
const (
	Dini Kind = iota
	Enneper
	Torus
	Figure8
	Flower
	BoySurface
	SpiralTorus
	Butterfly
	Trefoil

	numKinds
)

var kindNames = [numKinds]string{
	Dini:        "Dini",
	Enneper:     "Enneper",
	Torus:       "Torus",
	Figure8:     "Figure8",
	Flower:      "Flower",
	BoySurface:  "BoySurface",
	SpiralTorus: "SpiralTorus",
	Butterfly:   "Butterfly",
	Trefoil:     "Trefoil",
}

// String returns the surface name.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the built-in kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// Kinds returns all built-in kinds.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind looks a kind up by name. Matching ignores case, dashes,
// underscores and spaces, so "boy-surface" and "spiral torus" both resolve.
func ParseKind(name string) (Kind, error) {
	key := normalizeName(name)
	for k, n := range kindNames {
		if normalizeName(n) == key {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
