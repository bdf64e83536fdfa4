package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sort"

	"golang.org/x/image/vector"

	"github.com/Faultbox/parasurf/internal/finalize"
	"github.com/Faultbox/parasurf/pkg/math"
)

// PreviewOptions controls the preview camera and canvas.
type PreviewOptions struct {
	Width, Height int
	Yaw, Pitch    float32 // radians, applied around Y then X
	Background    color.RGBA
	Base          color.RGBA // surface colour before shading
	Margin        float32    // fraction of the canvas left empty on each side
}

// DefaultPreviewOptions returns a three-quarter view on a dark background.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Width:      800,
		Height:     600,
		Yaw:        0.6,
		Pitch:      0.5,
		Background: color.RGBA{R: 24, G: 24, B: 28, A: 255},
		Base:       color.RGBA{R: 110, G: 170, B: 230, A: 255},
		Margin:     0.05,
	}
}

type projected struct {
	pts   [3]math.Vec2
	depth float32
	shade float32
}

// Render draws m with an orthographic camera and flat, two-sided shading.
// Triangles are painted back to front; those with a non-finite corner are
// skipped.
func Render(m *finalize.Mesh, opts PreviewOptions) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	if len(m.Indices) < 3 {
		return img
	}

	c := m.Bounds.Center()
	view := math.RotateX(opts.Pitch).Mul(math.RotateY(opts.Yaw)).Mul(math.Translate(-c.X, -c.Y, -c.Z))

	// Fit the bounding sphere into the smaller canvas side.
	radius := m.Bounds.Size().Length() / 2
	if radius == 0 {
		radius = 1
	}
	usable := float32(min(opts.Width, opts.Height)) * (1 - 2*opts.Margin)
	scale := usable / (2 * radius)
	cx, cy := float32(opts.Width)/2, float32(opts.Height)/2

	toScreen := func(p math.Vec3) math.Vec2 {
		return math.Vec2{X: cx + p.X*scale, Y: cy - p.Y*scale}
	}

	tris := make([]projected, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		p0 := view.TransformVec3(m.Positions[m.Indices[i]])
		p1 := view.TransformVec3(m.Positions[m.Indices[i+1]])
		p2 := view.TransformVec3(m.Positions[m.Indices[i+2]])
		if !p0.IsFinite() || !p1.IsFinite() || !p2.IsFinite() {
			continue
		}

		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		// Camera looks down -Z, light comes from the viewer.
		shade := n.Z
		if shade < 0 {
			shade = -shade
		}
		tris = append(tris, projected{
			pts:   [3]math.Vec2{toScreen(p0), toScreen(p1), toScreen(p2)},
			depth: (p0.Z + p1.Z + p2.Z) / 3,
			shade: 0.25 + 0.75*shade,
		})
	}

	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].depth < tris[j].depth
	})

	var ras vector.Rasterizer
	for _, t := range tris {
		fillTriangle(img, &ras, t.pts, shadeColor(opts.Base, t.shade))
	}
	return img
}

// fillTriangle rasterizes one triangle into its clipped bounding box.
func fillTriangle(dst *image.RGBA, ras *vector.Rasterizer, pts [3]math.Vec2, col color.RGBA) {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	box := image.Rect(int(minX), int(minY), int(maxX)+2, int(maxY)+2).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	ras.Reset(box.Dx(), box.Dy())
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	ras.MoveTo(pts[0].X-ox, pts[0].Y-oy)
	ras.LineTo(pts[1].X-ox, pts[1].Y-oy)
	ras.LineTo(pts[2].X-ox, pts[2].Y-oy)
	ras.ClosePath()
	ras.Draw(dst, box, image.NewUniform(col), image.Point{})
}

func shadeColor(base color.RGBA, k float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(base.R) * k),
		G: uint8(float32(base.G) * k),
		B: uint8(float32(base.B) * k),
		A: 255,
	}
}

// SavePNG encodes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
