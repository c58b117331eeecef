package mushaf

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/digitalkhatt/mushaf/shape"
)

// matrix is a 2D affine transformation in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// representing x' = a*x + b*y + c, y' = d*x + e*y + f.
type matrix struct {
	a, b, c float64
	d, e, f float64
}

func identity() matrix {
	return matrix{a: 1, e: 1}
}

// mul multiplies m * o, so o is applied first (in local coordinates).
func (m matrix) mul(o matrix) matrix {
	return matrix{
		a: m.a*o.a + m.b*o.d,
		b: m.a*o.b + m.b*o.e,
		c: m.a*o.c + m.b*o.f + m.c,
		d: m.d*o.a + m.e*o.d,
		e: m.d*o.b + m.e*o.e,
		f: m.d*o.c + m.e*o.f + m.f,
	}
}

func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}

// canvas paints filled outlines into a PixelBuffer through a mutable
// transform, mimicking an immediate-mode 2D canvas: translate and
// scale compose in local coordinates, resetMatrix restores identity.
type canvas struct {
	buf *PixelBuffer
	m   matrix
	ras vector.Rasterizer
}

func newCanvas(buf *PixelBuffer) *canvas {
	return &canvas{buf: buf, m: identity()}
}

func (c *canvas) resetMatrix() {
	c.m = identity()
}

func (c *canvas) translate(dx, dy float64) {
	c.m = c.m.mul(matrix{a: 1, e: 1, c: dx, f: dy})
}

func (c *canvas) scale(sx, sy float64) {
	c.m = c.m.mul(matrix{a: sx, e: sy})
}

// fill rasterizes the outline under the current transform and blends
// it into the buffer with the given color. The rasterizer accumulates
// signed coverage, so contours wound in opposite directions cut holes
// (ring frames rely on this).
func (c *canvas) fill(segs []shape.Segment, col RGBA) {
	if len(segs) == 0 || col.A <= 0 {
		return
	}

	// Device-space bounding box of the transformed control points.
	// Bezier curves stay inside their control hulls, so this bounds
	// the filled area.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	args := func(op shape.SegmentOp) int {
		switch op {
		case shape.SegmentOpQuadTo:
			return 2
		case shape.SegmentOpCubeTo:
			return 3
		default:
			return 1
		}
	}
	for _, s := range segs {
		for i := 0; i < args(s.Op); i++ {
			x, y := c.m.apply(s.Args[i].X, s.Args[i].Y)
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
	}

	x0 := int(math.Floor(minX))
	y0 := int(math.Floor(minY))
	x1 := int(math.Ceil(maxX)) + 1
	y1 := int(math.Ceil(maxY)) + 1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.buf.Width {
		x1 = c.buf.Width
	}
	if y1 > c.buf.Height {
		y1 = c.buf.Height
	}
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return
	}

	z := &c.ras
	z.Reset(w, h)
	open := false
	for _, s := range segs {
		switch s.Op {
		case shape.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := c.dev(s.Args[0], x0, y0)
			z.MoveTo(x, y)
			open = true
		case shape.SegmentOpLineTo:
			x, y := c.dev(s.Args[0], x0, y0)
			z.LineTo(x, y)
		case shape.SegmentOpQuadTo:
			cx, cy := c.dev(s.Args[0], x0, y0)
			x, y := c.dev(s.Args[1], x0, y0)
			z.QuadTo(cx, cy, x, y)
		case shape.SegmentOpCubeTo:
			c1x, c1y := c.dev(s.Args[0], x0, y0)
			c2x, c2y := c.dev(s.Args[1], x0, y0)
			x, y := c.dev(s.Args[2], x0, y0)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride:]
		for x := 0; x < w; x++ {
			if a := row[x]; a > 0 {
				c.buf.blend(x0+x, y0+y, col, float64(a)/255)
			}
		}
	}
}

// dev transforms a point to device space relative to the mask origin.
func (c *canvas) dev(p shape.Point, x0, y0 int) (float32, float32) {
	x, y := c.m.apply(p.X, p.Y)
	return float32(x - float64(x0)), float32(y - float64(y0))
}
