package mushaf

import (
	"math"
	"strings"
	"testing"
)

func TestMeasureText(t *testing.T) {
	r, err := newFakeRenderer(newFakeEngine())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	w, h, ok := r.MeasureText("ابج", 100)
	if !ok {
		t.Fatal("MeasureText not ok")
	}
	// Three 100 fu glyphs on a 1000 upem grid at 100 px.
	if math.Abs(w-30) > 1e-6 || h != 100 {
		t.Errorf("measure = (%v, %v), want (30, 100)", w, h)
	}

	w2, _, _ := r.MeasureText("ابج", 100)
	if w2 != w {
		t.Errorf("second measure = %v, want %v (idempotent)", w2, w)
	}

	// Width scales linearly with the em size.
	w3, _, _ := r.MeasureText("ابج", 200)
	if math.Abs(w3-2*w) > 1e-6 {
		t.Errorf("doubled size measure = %v, want %v", w3, 2*w)
	}

	if _, _, ok := r.MeasureText("", 100); ok {
		t.Error("MeasureText(empty) ok, want false")
	}
	if _, _, ok := r.MeasureText("ابج", 0); ok {
		t.Error("MeasureText(size 0) ok, want false")
	}
}

func TestDrawTextAutoSize(t *testing.T) {
	r, err := newFakeRenderer(newFakeEngine())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	buf := NewPixelBuffer(200, 120, FormatRGBA8888)
	cfg := DefaultTextConfig()
	cfg.BackgroundColor = White

	// Auto size fits the text to the measure exactly.
	got := r.DrawText(buf, "ابجد", cfg)
	if got != 200 {
		t.Errorf("auto-size width = %d, want 200", got)
	}
}

func TestDrawTextFixedSize(t *testing.T) {
	r, err := newFakeRenderer(newFakeEngine())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	buf := NewPixelBuffer(200, 120, FormatRGBA8888)
	cfg := DefaultTextConfig()
	cfg.BackgroundColor = White
	cfg.FontSize = 50

	// Four 100 fu glyphs at scale 0.05.
	if got := r.DrawText(buf, "ابجد", cfg); got != 20 {
		t.Errorf("fixed-size width = %d, want 20", got)
	}
}

func TestDrawTextJustified(t *testing.T) {
	r, err := newFakeRenderer(newFakeEngine())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	buf := NewPixelBuffer(200, 120, FormatRGBA8888)
	cfg := DefaultTextConfig()
	cfg.BackgroundColor = White
	cfg.FontSize = 50
	cfg.LineWidth = 150
	cfg.Justify = true

	if got := r.DrawText(buf, "اب جد", cfg); got != 150 {
		t.Errorf("justified width = %d, want 150", got)
	}
}

func TestDrawTextRejectsBadInput(t *testing.T) {
	r, err := newFakeRenderer(newFakeEngine())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	buf := NewPixelBuffer(200, 120, FormatRGBA8888)
	if got := r.DrawText(buf, "", DefaultTextConfig()); got != -1 {
		t.Errorf("empty text = %d, want -1", got)
	}
	if got := r.DrawText(nil, "اب", DefaultTextConfig()); got != -1 {
		t.Errorf("nil buffer = %d, want -1", got)
	}
}

func TestDrawTextDarkBackgroundAutoColor(t *testing.T) {
	r, err := newFakeRenderer(newFakeEngine())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	buf := NewPixelBuffer(200, 120, FormatRGBA8888)
	cfg := DefaultTextConfig()
	cfg.BackgroundColor = RGBAFromUint32(0x1E1E1EFF)
	cfg.FontSize = 50

	if got := r.DrawText(buf, "اب", cfg); got <= 0 {
		t.Fatalf("DrawText = %d", got)
	}
	minX, minY, maxX, maxY, ok := inkBounds(buf, cfg.BackgroundColor)
	if !ok {
		t.Fatal("no ink painted")
	}
	if c := buf.At((minX+maxX)/2, (minY+maxY)/2); c != White {
		t.Errorf("ink = %v, want white on dark background", c)
	}
}

func TestWrapWords(t *testing.T) {
	widthOf := func(w string) float64 { return float64(10 * len(w)) }

	t.Run("greedy fill", func(t *testing.T) {
		words := []string{"aa", "bb", "cc", "dd"}
		lines := wrapWords(words, widthOf, 5, 45)
		// 20 +5+20 = 45 fits, next word starts a new line.
		want := []string{"aa bb", "cc dd"}
		if len(lines) != len(want) {
			t.Fatalf("lines = %q, want %q", lines, want)
		}
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
			}
		}
	})

	t.Run("word integrity", func(t *testing.T) {
		words := []string{"aa", "bbb", "c", "ddddddd"}
		lines := wrapWords(words, widthOf, 5, 35)
		joined := strings.Join(lines, " ")
		if joined != strings.Join(words, " ") {
			t.Errorf("words damaged by wrapping: %q", joined)
		}
		for _, ln := range lines {
			for _, w := range strings.Fields(ln) {
				found := false
				for _, orig := range words {
					if w == orig {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("line word %q is not an original word", w)
				}
			}
		}
	})

	t.Run("over-wide word stands alone", func(t *testing.T) {
		words := []string{"aa", "ddddddd", "bb"}
		lines := wrapWords(words, widthOf, 5, 30)
		if len(lines) != 3 {
			t.Fatalf("lines = %q, want 3 lines", lines)
		}
		if lines[1] != "ddddddd" {
			t.Errorf("middle line = %q, want the over-wide word alone", lines[1])
		}
	})
}

func TestDrawWrappedText(t *testing.T) {
	r, err := newFakeRenderer(newFakeEngine())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	buf := NewPixelBuffer(200, 200, FormatRGBA8888)
	cfg := DefaultTextConfig()
	cfg.BackgroundColor = White
	cfg.FontSize = 100
	cfg.LineWidth = 100

	// 30 px words, 10 px spaces: two words per line.
	got := r.DrawWrappedText(buf, "ابج ابج ابج", cfg, 1)
	if got != 2 {
		t.Errorf("wrapped lines = %d, want 2", got)
	}

	cfg.FontSize = 0
	if got := r.DrawWrappedText(buf, "ابج", cfg, 1); got != -1 {
		t.Errorf("auto-size wrap = %d, want -1", got)
	}
}

func TestDrawMultilineText(t *testing.T) {
	r, err := newFakeRenderer(newFakeEngine())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	buf := NewPixelBuffer(200, 200, FormatRGBA8888)
	cfg := DefaultTextConfig()
	cfg.BackgroundColor = White
	cfg.FontSize = 20

	got := r.DrawMultilineText(buf, "اب\nجد\nهو", cfg, 1.5)
	if got != 3 {
		t.Fatalf("lines = %d, want 3", got)
	}

	// Three rows of ink at a 30 px pitch, baselines at 20/50/80.
	for i, baseline := range []int{20, 50, 80} {
		found := false
		for y := baseline - 12; y <= baseline && !found; y++ {
			for x := 0; x < buf.Width; x++ {
				if buf.At(x, y) != White {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("no ink for line %d around baseline %d", i, baseline)
		}
	}

	if got := r.DrawMultilineText(buf, "", cfg, 1); got != -1 {
		t.Errorf("empty text = %d, want -1", got)
	}
}
