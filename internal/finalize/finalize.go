// Package finalize derives the geometry attributes a renderer or collider
// needs from raw mesh buffers: bounding box, vertex normals and tangents.
package finalize

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/parasurf/pkg/math"
	"github.com/Faultbox/parasurf/pkg/mesh"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the edge lengths of the box.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh is a finalized mesh ready for export or upload.
type Mesh struct {
	Name      string
	Positions []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32
	Normals   []math.Vec3
	Tangents  [][4]float32 // xyz direction, w handedness (+1 or -1)
	Bounds    Bounds
}

// Finalize computes bounds, normals and tangents for b. The position, UV and
// index slices are shared with b, not copied.
func Finalize(b *mesh.Buffers) *Mesh {
	m := &Mesh{
		Name:      b.Kind.String(),
		Positions: b.Positions,
		UVs:       b.UVs,
		Indices:   b.Indices,
	}
	m.Bounds = ComputeBounds(m.Positions)
	m.Normals = ComputeNormals(m.Positions, m.Indices)
	m.Tangents = ComputeTangents(m.Positions, m.UVs, m.Normals, m.Indices)
	return m
}

// Sink returns a mesh.Sink that finalizes incoming buffers and passes the
// result to fn.
func Sink(fn func(m *Mesh) error) mesh.Sink {
	return mesh.SinkFunc(func(b *mesh.Buffers) error {
		return fn(Finalize(b))
	})
}

// ComputeBounds returns the bounding box of positions. Non-finite positions
// are skipped; an empty or fully non-finite input yields a zero box.
func ComputeBounds(positions []math.Vec3) Bounds {
	var b Bounds
	first := true
	for _, p := range positions {
		if !p.IsFinite() {
			continue
		}
		if first {
			b = Bounds{Min: p, Max: p}
			first = false
			continue
		}
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// ComputeNormals returns area-weighted vertex normals. Vertices that touch no
// triangle with usable area get (0, 1, 0).
func ComputeNormals(positions []math.Vec3, indices []uint32) []math.Vec3 {
	sums := make([]math.Vec3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		p0 := positions[i0]
		// Unnormalized cross product: length is twice the triangle area.
		face := positions[i1].Sub(p0).Cross(positions[i2].Sub(p0))
		if !face.IsFinite() {
			continue
		}
		sums[i0] = sums[i0].Add(face)
		sums[i1] = sums[i1].Add(face)
		sums[i2] = sums[i2].Add(face)
	}

	normals := make([]math.Vec3, len(positions))
	for i, s := range sums {
		normals[i] = normalizeOr(s, math.Vec3{Y: 1})
	}
	return normals
}

// ComputeTangents returns per-vertex tangents for tangent-space normal
// mapping, derived from how UVs change across each triangle.
func ComputeTangents(positions []math.Vec3, uvs []math.Vec2, normals []math.Vec3, indices []uint32) [][4]float32 {
	tan := make([]math.Vec3, len(positions))
	bitan := make([]math.Vec3, len(positions))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		e1 := positions[i1].Sub(positions[i0])
		e2 := positions[i2].Sub(positions[i0])
		d1 := uvs[i1].Sub(uvs[i0])
		d2 := uvs[i2].Sub(uvs[i0])

		denom := d1.Cross(d2)
		if denom == 0 || math32.IsNaN(denom) {
			continue // degenerate UV triangle
		}
		r := 1 / denom

		t := e1.Scale(d2.Y * r).Sub(e2.Scale(d1.Y * r))
		bt := e2.Scale(d1.X * r).Sub(e1.Scale(d2.X * r))
		if !t.IsFinite() || !bt.IsFinite() {
			continue
		}
		for _, v := range [3]uint32{i0, i1, i2} {
			tan[v] = tan[v].Add(t)
			bitan[v] = bitan[v].Add(bt)
		}
	}

	tangents := make([][4]float32, len(positions))
	for i := range positions {
		n := normals[i]

		// Gram-Schmidt: T = normalize(T - N*(N.T))
		t := tan[i].Sub(n.Scale(n.Dot(tan[i])))
		t = normalizeOr(t, perpendicular(n))

		w := float32(1)
		if n.Cross(t).Dot(bitan[i]) < 0 {
			w = -1
		}
		tangents[i] = [4]float32{t.X, t.Y, t.Z, w}
	}
	return tangents
}

// perpendicular returns some unit vector orthogonal to n.
func perpendicular(n math.Vec3) math.Vec3 {
	axis := math.Vec3{X: 1}
	if math32.Abs(n.X) > 0.9 {
		axis = math.Vec3{Y: 1}
	}
	return normalizeOr(axis.Sub(n.Scale(n.Dot(axis))), math.Vec3{X: 1})
}

func normalizeOr(v, fallback math.Vec3) math.Vec3 {
	l := math32.Sqrt(v.Dot(v))
	if l < 1e-12 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return fallback
	}
	return v.Scale(1 / l)
}
