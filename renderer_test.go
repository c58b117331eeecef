package mushaf

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, testCorpus()); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("New(nil font) = %v, want ErrEmptyFontData", err)
	}
	if _, err := New([]byte("not a font"), testCorpus()); err == nil {
		t.Error("New(garbage font) succeeded")
	}
	if _, err := New(goregular.TTF, []byte("one page")); err == nil {
		t.Error("New(bad corpus) succeeded")
	}
}

func TestNewWithRealFont(t *testing.T) {
	r, err := New(goregular.TTF, testCorpus())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	if got := r.PageCount(); got != 604 {
		t.Errorf("PageCount = %d, want 604", got)
	}
	// Go Regular carries nowhere near the lookup count of a tajweed
	// build.
	if r.TajweedCapable() {
		t.Error("TajweedCapable = true for Go Regular")
	}
}

func TestRendererClose(t *testing.T) {
	e := newFakeEngine()
	r, err := newFakeRenderer(e)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if !e.closed {
		t.Error("engine not closed with the renderer")
	}
}

func TestRendererUseAfterClose(t *testing.T) {
	r, err := newFakeRenderer(newFakeEngine())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Close()

	buf := NewPixelBuffer(40, 60, FormatRGBA8888)
	r.DrawPage(buf, 0, DefaultRenderConfig())
	for _, p := range buf.Pix {
		if p != 0 {
			t.Fatal("DrawPage wrote to the buffer after Close")
		}
	}
	if got := r.DrawText(buf, "اب", DefaultTextConfig()); got != -1 {
		t.Errorf("DrawText after Close = %d, want -1", got)
	}
	if _, _, ok := r.MeasureText("اب", 10); ok {
		t.Error("MeasureText ok after Close")
	}
}

func TestThresholdOptionIgnoresInvalid(t *testing.T) {
	e := newFakeEngine()
	e.lookups = DefaultTajweedLookupThreshold + 1

	r, err := New(nil, testCorpus(), WithEngine(e), WithTajweedLookupThreshold(0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()
	// A non-positive override keeps the default threshold.
	if !r.TajweedCapable() {
		t.Error("TajweedCapable = false, default threshold not kept")
	}
}
