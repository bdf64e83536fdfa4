package finalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pmath "github.com/Faultbox/parasurf/pkg/math"
	"github.com/Faultbox/parasurf/pkg/mesh"
	"github.com/Faultbox/parasurf/pkg/surface"
)

// unitQuad is a single grid cell in the XY plane with UV = XY, indexed the
// way the mesher indexes cells.
func unitQuad() *mesh.Buffers {
	return &mesh.Buffers{
		Kind:         surface.Enneper,
		Subdivisions: 1,
		Positions:    []pmath.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}},
		UVs:          []pmath.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		Indices:      []uint32{0, 2, 1, 1, 2, 3},
	}
}

func TestFinalizeQuad(t *testing.T) {
	m := Finalize(unitQuad())

	assert.Equal(t, "Enneper", m.Name)
	assert.Equal(t, Bounds{Min: pmath.Vec3{}, Max: pmath.Vec3{X: 1, Y: 1}}, m.Bounds)

	for i, n := range m.Normals {
		assert.Equal(t, pmath.Vec3{Z: -1}, n, "normal %d", i)
	}
	for i, tg := range m.Tangents {
		assert.InDelta(t, 1, tg[0], 1e-6, "tangent %d x", i)
		assert.InDelta(t, 0, tg[1], 1e-6, "tangent %d y", i)
		assert.InDelta(t, 0, tg[2], 1e-6, "tangent %d z", i)
		assert.Equal(t, float32(-1), tg[3], "tangent %d handedness", i)
	}
}

func TestFinalizeSharesBuffers(t *testing.T) {
	b := unitQuad()
	m := Finalize(b)

	assert.Same(t, &b.Positions[0], &m.Positions[0])
	assert.Same(t, &b.Indices[0], &m.Indices[0])
}

func TestTorusNormals(t *testing.T) {
	b, err := mesh.Generate(surface.Torus, 24)
	require.NoError(t, err)
	m := Finalize(b)

	require.Len(t, m.Normals, b.VertexCount())
	require.Len(t, m.Tangents, b.VertexCount())

	for i, n := range m.Normals {
		assert.InDelta(t, 1, n.Length(), 1e-4, "normal %d", i)

		uv := m.UVs[i]
		u, v := float64(uv.X), float64(uv.Y)
		outward := pmath.Vec3{
			X: float32(math.Cos(v) * math.Cos(u)),
			Y: float32(math.Cos(v) * math.Sin(u)),
			Z: float32(math.Sin(v)),
		}
		// The grid winding faces into the tube.
		assert.Less(t, n.Dot(outward), float32(-0.9), "normal %d", i)
	}

	for i, tg := range m.Tangents {
		dir := pmath.Vec3{X: tg[0], Y: tg[1], Z: tg[2]}
		assert.InDelta(t, 1, dir.Length(), 1e-4, "tangent %d", i)
		assert.InDelta(t, 0, dir.Dot(m.Normals[i]), 1e-4, "tangent %d not orthogonal", i)
		assert.Contains(t, []float32{-1, 1}, tg[3])
	}
}

func TestTorusBounds(t *testing.T) {
	b, err := mesh.Generate(surface.Torus, 64)
	require.NoError(t, err)
	bounds := Finalize(b).Bounds

	assert.InDelta(t, -1.5, bounds.Min.X, 0.01)
	assert.InDelta(t, 1.5, bounds.Max.X, 0.01)
	assert.InDelta(t, -1.5, bounds.Min.Y, 0.01)
	assert.InDelta(t, 1.5, bounds.Max.Y, 0.01)
	assert.InDelta(t, -0.5, bounds.Min.Z, 0.01)
	assert.InDelta(t, 0.5, bounds.Max.Z, 0.01)

	c := bounds.Center()
	assert.InDelta(t, 0, c.X, 0.01)
	assert.InDelta(t, 3, bounds.Size().X, 0.02)
}

func TestComputeBoundsSkipsNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	got := ComputeBounds([]pmath.Vec3{{X: nan, Y: 0, Z: 0}, {X: 1, Y: 2, Z: 3}, {X: -1, Y: 0, Z: 5}})

	assert.Equal(t, Bounds{Min: pmath.Vec3{X: -1, Y: 0, Z: 3}, Max: pmath.Vec3{X: 1, Y: 2, Z: 5}}, got)
	assert.Equal(t, Bounds{}, ComputeBounds(nil))
}

func TestNormalsFallback(t *testing.T) {
	// Degenerate triangle: all corners coincide.
	positions := []pmath.Vec3{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 5, Y: 5, Z: 5}}
	normals := ComputeNormals(positions, []uint32{0, 1, 2})

	for i, n := range normals {
		assert.Equal(t, pmath.Vec3{Y: 1}, n, "normal %d", i)
	}
}

func TestSink(t *testing.T) {
	var got *Mesh
	sink := Sink(func(m *Mesh) error {
		got = m
		return nil
	})

	require.NoError(t, mesh.NewGenerator().Build(surface.Trefoil, 8, sink))
	require.NotNil(t, got)
	assert.Equal(t, "Trefoil", got.Name)
	assert.Len(t, got.Normals, 81)
}
