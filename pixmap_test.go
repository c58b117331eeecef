package mushaf

import "testing"

func TestNewPixelBuffer(t *testing.T) {
	buf := NewPixelBuffer(3, 2, FormatRGBA8888)
	if buf == nil || !buf.valid() {
		t.Fatal("fresh buffer invalid")
	}
	if buf.Stride != 12 || len(buf.Pix) != 24 {
		t.Errorf("stride = %d, len = %d", buf.Stride, len(buf.Pix))
	}
	if NewPixelBuffer(0, 2, FormatRGBA8888) != nil {
		t.Error("zero width buffer allocated")
	}
}

func TestPixelBufferValid(t *testing.T) {
	var nilBuf *PixelBuffer
	if nilBuf.valid() {
		t.Error("nil buffer valid")
	}
	buf := NewPixelBuffer(4, 4, FormatRGBA8888)
	buf.Stride = 10 // less than 4*Width
	if buf.valid() {
		t.Error("undersized stride accepted")
	}
	buf = NewPixelBuffer(4, 4, FormatRGBA8888)
	buf.Pix = buf.Pix[:30]
	if buf.valid() {
		t.Error("short pixel slice accepted")
	}
}

func TestPixelBufferFillAt(t *testing.T) {
	for _, format := range []PixelFormat{FormatRGBA8888, FormatBGRA8888} {
		t.Run(format.String(), func(t *testing.T) {
			buf := NewPixelBuffer(2, 2, format)
			c := RGBAFromUint32(0x10203040)
			buf.Fill(c)
			got := buf.At(1, 1)
			for name, d := range map[string]float64{
				"R": got.R - c.R, "G": got.G - c.G, "B": got.B - c.B, "A": got.A - c.A,
			} {
				if d < -1.0/255 || d > 1.0/255 {
					t.Errorf("channel %s off by %v: At = %v, want %v", name, d, got, c)
				}
			}
		})
	}
}

func TestPixelBufferBGRAByteOrder(t *testing.T) {
	buf := NewPixelBuffer(1, 1, FormatBGRA8888)
	buf.Fill(RGB(1, 0, 0))
	// Red lands in the third byte of a BGRA pixel.
	if buf.Pix[0] != 0 || buf.Pix[2] != 255 {
		t.Errorf("pix = %v, want red in byte 2", buf.Pix[:4])
	}
}

func TestPixelBufferBlend(t *testing.T) {
	buf := NewPixelBuffer(1, 1, FormatRGBA8888)
	buf.Fill(White)

	buf.blend(0, 0, Black, 0.5)
	got := buf.At(0, 0)
	if got.R < 0.45 || got.R > 0.55 {
		t.Errorf("half-coverage blend R = %v, want about 0.5", got.R)
	}

	// Out-of-range coordinates and zero coverage are no-ops.
	buf.Fill(White)
	buf.blend(-1, 0, Black, 1)
	buf.blend(0, 5, Black, 1)
	buf.blend(0, 0, Black, 0)
	if buf.At(0, 0) != White {
		t.Error("no-op blend changed the pixel")
	}
}
