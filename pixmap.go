package mushaf

// PixelFormat identifies the channel ordering of a PixelBuffer.
type PixelFormat uint8

const (
	// FormatRGBA8888 stores pixels as R, G, B, A bytes.
	FormatRGBA8888 PixelFormat = iota

	// FormatBGRA8888 stores pixels as B, G, R, A bytes. Common on
	// little-endian hosts whose surfaces are ARGB words.
	FormatBGRA8888
)

// String returns the format name.
func (f PixelFormat) String() string {
	if f == FormatBGRA8888 {
		return "BGRA8888"
	}
	return "RGBA8888"
}

// PixelBuffer is a caller-owned pixel surface. The renderer writes
// into Pix and never retains the buffer between calls.
type PixelBuffer struct {
	// Pix holds the pixel data, 4 bytes per pixel in Format order.
	Pix []uint8

	// Width and Height are the surface dimensions in pixels.
	Width  int
	Height int

	// Stride is the distance in bytes between vertically adjacent
	// pixels. At least 4*Width.
	Stride int

	// Format is the channel ordering of Pix.
	Format PixelFormat
}

// NewPixelBuffer allocates a tightly packed buffer.
func NewPixelBuffer(width, height int, format PixelFormat) *PixelBuffer {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &PixelBuffer{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
		Stride: width * 4,
		Format: format,
	}
}

// valid reports whether the buffer can be drawn into.
func (b *PixelBuffer) valid() bool {
	if b == nil || b.Pix == nil || b.Width <= 0 || b.Height <= 0 {
		return false
	}
	if b.Stride < 4*b.Width {
		return false
	}
	return len(b.Pix) >= (b.Height-1)*b.Stride+4*b.Width
}

// Fill sets every pixel to c.
func (b *PixelBuffer) Fill(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	bl := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))
	if b.Format == FormatBGRA8888 {
		r, bl = bl, r
	}
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Stride:]
		for x := 0; x < b.Width; x++ {
			i := x * 4
			row[i+0] = r
			row[i+1] = g
			row[i+2] = bl
			row[i+3] = a
		}
	}
}

// At returns the color of pixel (x, y), honoring the channel order.
func (b *PixelBuffer) At(x, y int) RGBA {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Transparent
	}
	i := y*b.Stride + x*4
	c := RGBA{
		R: float64(b.Pix[i+0]) / 255,
		G: float64(b.Pix[i+1]) / 255,
		B: float64(b.Pix[i+2]) / 255,
		A: float64(b.Pix[i+3]) / 255,
	}
	if b.Format == FormatBGRA8888 {
		c.R, c.B = c.B, c.R
	}
	return c
}

// blend composites c over pixel (x, y) with the given coverage in
// [0, 1]. Colors are stored non-premultiplied.
func (b *PixelBuffer) blend(x, y int, c RGBA, coverage float64) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height || coverage <= 0 {
		return
	}
	a := c.A * coverage
	if a <= 0 {
		return
	}
	i := y*b.Stride + x*4
	ri, gi, bi := 0, 1, 2
	if b.Format == FormatBGRA8888 {
		ri, bi = 2, 0
	}
	inv := 1 - a
	dr := float64(b.Pix[i+ri]) / 255
	dg := float64(b.Pix[i+gi]) / 255
	db := float64(b.Pix[i+bi]) / 255
	da := float64(b.Pix[i+3]) / 255
	b.Pix[i+ri] = uint8(clamp255((c.R*a + dr*inv) * 255))
	b.Pix[i+gi] = uint8(clamp255((c.G*a + dg*inv) * 255))
	b.Pix[i+bi] = uint8(clamp255((c.B*a + db*inv) * 255))
	b.Pix[i+3] = uint8(clamp255((a + da*inv) * 255))
}
