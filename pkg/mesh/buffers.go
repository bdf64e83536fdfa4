// Package mesh turns a parametric surface into renderable buffers by
// sampling a uniform (u, v) grid and triangulating its cells.
package mesh

import (
	"github.com/Faultbox/parasurf/pkg/math"
	"github.com/Faultbox/parasurf/pkg/surface"
)

// Buffers holds one generated mesh. Positions and UVs are parallel and laid
// out row-major (x fastest); Indices holds consecutive triangle triples.
//
// A Buffers value is created fresh by every generation and never touched by
// the generator afterwards; the receiver owns it.
type Buffers struct {
	Kind         surface.Kind
	Subdivisions int

	Positions []math.Vec3
	UVs       []math.Vec2 // raw (u, v) samples, not normalized to [0,1]
	Indices   []uint32
}

// VertexCount returns the number of grid vertices.
func (b *Buffers) VertexCount() int {
	return len(b.Positions)
}

// TriangleCount returns the number of triangles.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (b *Buffers) Triangle(i int) (i0, i1, i2 uint32) {
	return b.Indices[i*3], b.Indices[i*3+1], b.Indices[i*3+2]
}

// VertexIndex returns the buffer slot of grid point (x, y).
func (b *Buffers) VertexIndex(x, y int) int {
	return x + y*(b.Subdivisions+1)
}

// Sink receives finished buffers. Implementations take ownership; the
// generator never reads or writes the buffers after Accept is called.
type Sink interface {
	Accept(b *Buffers) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(b *Buffers) error

// Accept calls f(b).
func (f SinkFunc) Accept(b *Buffers) error {
	return f(b)
}
