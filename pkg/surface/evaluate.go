package surface

import (
	"math"

	pmath "github.com/Faultbox/parasurf/pkg/math"
)

const (
	torusMajorRadius = 1.0
	torusMinorRadius = 0.5
	figure8Offset    = 2.77
	butterflyRadius  = 0.1
	trefoilRadius    = 1.0
)

type formula func(u, v float64) (x, y, z float64)

var formulas = [numKinds]formula{
	Dini:        dini,
	Enneper:     enneper,
	Torus:       torus,
	Figure8:     figure8,
	Flower:      flower,
	BoySurface:  boySurface,
	SpiralTorus: spiralTorus,
	Butterfly:   butterfly,
	Trefoil:     trefoil,
}

// Evaluate returns the point of surface kind at parameters (u, v).
//
// It is pure and never fails. Inside BoundsFor(kind) the result is finite for
// every kind except at the documented sharp edges (Butterfly where the 2D
// curve crosses x=0); outside the bounds NaN or Inf may come back and are
// passed through unchanged. An unknown kind yields (u, v, 0).
func Evaluate(kind Kind, u, v float32) pmath.Vec3 {
	if !kind.Valid() {
		return pmath.Vec3{X: u, Y: v}
	}
	x, y, z := formulas[kind](float64(u), float64(v))
	return pmath.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}
}

// dini is Dini's surface, a twisted pseudosphere. ln(tan(v/2)) diverges at v=0.
func dini(u, v float64) (x, y, z float64) {
	x = math.Cos(u) * math.Sin(v)
	y = math.Sin(u) * math.Sin(v)
	z = math.Cos(v) + math.Log(math.Tan(v/2)) + 0.2*u
	return
}

func enneper(u, v float64) (x, y, z float64) {
	x = u * (1 - u*u/3 + v*v) / 3
	y = v * (1 - v*v/3 + u*u) / 3
	z = (u*u - v*v) / 3
	return
}

func torus(u, v float64) (x, y, z float64) {
	const R, r = torusMajorRadius, torusMinorRadius
	x = R*math.Cos(u) + r*math.Cos(v)*math.Cos(u)
	y = R*math.Sin(u) + r*math.Cos(v)*math.Sin(u)
	z = r * math.Sin(v)
	return
}

// figure8 is the figure-8 immersion of the Klein bottle.
func figure8(u, v float64) (x, y, z float64) {
	half := u / 2
	ring := figure8Offset + math.Cos(half)*math.Sin(v) - math.Sin(half)*math.Sin(2*v)
	x = ring * math.Cos(u)
	y = ring * math.Sin(u)
	z = math.Sin(half)*math.Sin(v) + math.Cos(half)*math.Sin(2*v)
	return
}

func flower(u, v float64) (x, y, z float64) {
	q := 2 + math.Sin(7*u+5*v)
	x = q * math.Cos(u) * math.Sin(v)
	y = q * math.Sin(u) * math.Sin(v)
	z = q * math.Cos(v)
	return
}

func boySurface(u, v float64) (x, y, z float64) {
	cos2v := math.Pow(math.Cos(v), 2)
	denom := 2 - math.Sqrt2*math.Sin(3*u)*math.Sin(2*v)
	x = (math.Sqrt2*cos2v*math.Cos(2*u) + math.Cos(u)*math.Sin(2*v)) / denom
	y = (math.Sqrt2*cos2v*math.Sin(2*u) - math.Sin(u)*math.Sin(2*v)) / denom
	z = 3 * cos2v / denom
	return
}

func spiralTorus(u, v float64) (x, y, z float64) {
	twist := math.Sin(3*u) * math.Sin(u-3*v)
	x = math.Cos(v) * (5 - twist)
	y = math.Sin(v) * (5 - twist)
	z = -math.Cos(u-3*v) * math.Sin(3*u)
	return
}

// butterfly sweeps a small circle along Fay's butterfly curve. The tube
// orientation uses atan(y/x), not atan2, so it flips between quadrants and is
// undefined where the curve crosses x=0.
func butterfly(u, v float64) (x, y, z float64) {
	part := math.Exp(math.Cos(u)) - 2*math.Cos(4*u) - math.Pow(math.Sin(u/12), 5)
	curveX := math.Sin(u) * part
	curveY := math.Cos(u) * part
	angle := math.Atan(curveY / curveX)
	x = math.Sin(angle)*butterflyRadius*math.Sin(v) + curveX
	y = math.Cos(angle)*butterflyRadius*math.Sin(v) + curveY
	z = butterflyRadius * math.Cos(v)
	return
}

func trefoil(u, v float64) (x, y, z float64) {
	const r = trefoilRadius
	shifted := 2 + math.Cos(v+math.Pi*2/3)
	x = r * (math.Sin(u) + 2*math.Sin(2*u)) / shifted
	y = r / 2 * (math.Cos(u) - 2*math.Cos(2*u)) * (2 + math.Cos(v)) * shifted / 4
	z = r * math.Sin(3*u) / (2 + math.Cos(v))
	return
}
