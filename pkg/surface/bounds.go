package surface

import (
	"fmt"
	"math"
)

// Bounds is the closed parameter rectangle [UMin,UMax] x [VMin,VMax] a
// surface is sampled over. Values are in radians unless the formula uses
// unitless parameters (Enneper u, Dini v).
type Bounds struct {
	UMin, UMax float32
	VMin, VMax float32
}

// nearZero replaces 0 as a lower bound where the formula is singular at 0.
const nearZero float32 = 0.001

var boundsTable = [numKinds]Bounds{
	Dini:        {0, float32(math.Pi * 4), nearZero, 2},
	Enneper:     {0, 1.15, float32(-math.Pi), float32(math.Pi)},
	Torus:       {nearZero, float32(math.Pi * 2), nearZero, float32(math.Pi * 2)},
	Figure8:     {nearZero, float32(math.Pi * 2), nearZero, float32(math.Pi * 2)},
	Flower:      {nearZero, float32(math.Pi * 2), nearZero, float32(math.Pi)},
	BoySurface:  {float32(math.Pi / -2), float32(math.Pi / 2), nearZero, float32(math.Pi)},
	SpiralTorus: {nearZero, float32(math.Pi * 2), nearZero, float32(math.Pi * 2)},
	Butterfly:   {nearZero, float32(math.Pi * 12), nearZero, float32(math.Pi * 2)},
	Trefoil:     {float32(-math.Pi), float32(math.Pi * 3), float32(-math.Pi), float32(math.Pi * 3)},
}

// BoundsFor returns the sampling domain registered for kind.
func BoundsFor(kind Kind) (Bounds, error) {
	if !kind.Valid() {
		return Bounds{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return boundsTable[kind], nil
}

// Contains reports whether (u, v) lies inside the closed rectangle.
func (b Bounds) Contains(u, v float32) bool {
	return u >= b.UMin && u <= b.UMax && v >= b.VMin && v <= b.VMax
}

func (b Bounds) String() string {
	return fmt.Sprintf("u [%g, %g]  v [%g, %g]", b.UMin, b.UMax, b.VMin, b.VMax)
}
