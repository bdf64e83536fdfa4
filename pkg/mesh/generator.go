package mesh

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/parasurf/pkg/math"
	"github.com/Faultbox/parasurf/pkg/surface"
)

// Resolution limits. The upper bound caps memory use, roughly 25M vertices.
const (
	MinSubdivisions     = 1
	MaxSubdivisions     = 5000
	DefaultSubdivisions = 25
)

// ErrInvalidResolution is returned when subdivisions is outside
// [MinSubdivisions, MaxSubdivisions].
var ErrInvalidResolution = errors.New("invalid resolution")

// Generator samples surfaces into Buffers. The zero value is not usable;
// create one with NewGenerator.
type Generator struct {
	workers int
	log     *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithWorkers spreads grid rows over n goroutines. n <= 1 runs on the
// calling goroutine.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = max(n, 1)
	}
}

// WithLogger sets the logger used for per-generation debug output.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGenerator creates a generator. Without options it is sequential and silent.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		workers: 1,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate samples kind over its domain on a (subdivisions+1)^2 vertex grid
// and triangulates every cell into two triangles.
func Generate(kind surface.Kind, subdivisions int) (*Buffers, error) {
	return NewGenerator().Generate(kind, subdivisions)
}

// Generate samples kind on a (subdivisions+1)^2 vertex grid. Nothing is
// allocated when the resolution or kind is rejected.
func (g *Generator) Generate(kind surface.Kind, subdivisions int) (*Buffers, error) {
	if subdivisions < MinSubdivisions || subdivisions > MaxSubdivisions {
		return nil, fmt.Errorf("%w: %d subdivisions (want %d..%d)",
			ErrInvalidResolution, subdivisions, MinSubdivisions, MaxSubdivisions)
	}
	bounds, err := surface.BoundsFor(kind)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	side := subdivisions + 1
	b := &Buffers{
		Kind:         kind,
		Subdivisions: subdivisions,
		Positions:    make([]math.Vec3, side*side),
		UVs:          make([]math.Vec2, side*side),
		Indices:      make([]uint32, subdivisions*subdivisions*6),
	}

	g.rows(side, func(y int) {
		sampleRow(b, bounds, y)
	})
	g.rows(subdivisions, func(cy int) {
		triangulateRow(b, cy)
	})

	g.log.Debug("surface mesh generated",
		zap.Stringer("kind", kind),
		zap.Int("subdivisions", subdivisions),
		zap.Int("vertices", b.VertexCount()),
		zap.Int("triangles", b.TriangleCount()),
		zap.Int("workers", g.workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return b, nil
}

// Build generates a mesh and hands it to sink. A rejected generation never
// reaches the sink.
func (g *Generator) Build(kind surface.Kind, subdivisions int, sink Sink) error {
	b, err := g.Generate(kind, subdivisions)
	if err != nil {
		return err
	}
	if err := sink.Accept(b); err != nil {
		return fmt.Errorf("mesh sink: %w", err)
	}
	return nil
}

// rows calls fn for every row in [0, n). Rows write disjoint buffer slots, so
// workers need no coordination beyond the final wait.
func (g *Generator) rows(n int, fn func(row int)) {
	workers := min(g.workers, n)
	if workers <= 1 {
		for row := range n {
			fn(row)
		}
		return
	}

	var eg errgroup.Group
	chunk := (n + workers - 1) / workers
	for first := 0; first < n; first += chunk {
		last := min(first+chunk, n)
		eg.Go(func() error {
			for row := first; row < last; row++ {
				fn(row)
			}
			return nil
		})
	}
	_ = eg.Wait()
}

// sampleRow evaluates grid row y. u and v come straight from the bounds at
// the grid edges.
func sampleRow(b *Buffers, bounds surface.Bounds, y int) {
	s := b.Subdivisions
	side := s + 1
	v := math.Lerp(bounds.VMin, bounds.VMax, float32(y)/float32(s))

	for x := range side {
		u := math.Lerp(bounds.UMin, bounds.UMax, float32(x)/float32(s))
		i := x + y*side
		b.Positions[i] = surface.Evaluate(b.Kind, u, v)
		b.UVs[i] = math.Vec2{X: u, Y: v}
	}
}

// triangulateRow emits the two triangles of every cell in row cy. Neighbour
// cells reference the same grid vertices, so there are no seams.
func triangulateRow(b *Buffers, cy int) {
	s := b.Subdivisions
	side := uint32(s + 1)

	for cx := range s {
		topLeft := uint32(cx) + uint32(cy)*side
		topRight := topLeft + 1
		bottomLeft := topLeft + side
		bottomRight := bottomLeft + 1

		o := (cx + cy*s) * 6
		b.Indices[o+0] = topLeft
		b.Indices[o+1] = bottomLeft
		b.Indices[o+2] = topRight

		b.Indices[o+3] = topRight
		b.Indices[o+4] = bottomLeft
		b.Indices[o+5] = bottomRight
	}
}
