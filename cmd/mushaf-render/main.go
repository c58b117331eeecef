// Command mushaf-render renders a mushaf page or a free-form line of
// text to an image file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/digitalkhatt/mushaf"
)

func main() {
	var (
		fontPath   = flag.String("font", "", "path to the mushaf font (ttf/otf)")
		corpusPath = flag.String("corpus", "", "path to the page corpus blob")
		page       = flag.Int("page", 0, "page index to render (0-based)")
		text       = flag.String("text", "", "render this text instead of a page")
		width      = flag.Int("width", 1080, "image width")
		height     = flag.Int("height", 1620, "image height")
		output     = flag.String("output", "page.png", "output file (.png or .ppm)")
		tajweed    = flag.Bool("tajweed", true, "tajweed coloring")
		justify    = flag.Bool("justify", true, "line justification")
		scale      = flag.Float64("scale", 1, "glyph size scale (0.5 to 2)")
		bg         = flag.String("bg", "", "background color as RRGGBB hex")
		fontSize   = flag.Int("fontsize", 0, "text font size in px (0 = auto)")
	)
	flag.Parse()

	if *fontPath == "" || *corpusPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	fontData, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("read font: %v", err)
	}
	corpusData, err := os.ReadFile(*corpusPath)
	if err != nil {
		log.Fatalf("read corpus: %v", err)
	}

	r, err := mushaf.New(fontData, corpusData)
	if err != nil {
		log.Fatalf("open renderer: %v", err)
	}
	defer r.Close()

	background, err := parseColor(*bg)
	if err != nil {
		log.Fatalf("parse -bg: %v", err)
	}

	buf := mushaf.NewPixelBuffer(*width, *height, mushaf.FormatRGBA8888)
	if *text != "" {
		cfg := mushaf.DefaultTextConfig()
		cfg.Tajweed = *tajweed
		cfg.Justify = *justify
		cfg.FontSize = *fontSize
		cfg.BackgroundColor = background
		if w := r.DrawText(buf, *text, cfg); w < 0 {
			log.Fatal("text rendering failed")
		}
	} else {
		if *page < 0 || *page >= r.PageCount() {
			log.Fatalf("page %d out of range 0..%d", *page, r.PageCount()-1)
		}
		cfg := mushaf.DefaultRenderConfig()
		cfg.Tajweed = *tajweed
		cfg.Justify = *justify
		cfg.FontScale = *scale
		cfg.BackgroundColor = background
		r.DrawPage(buf, *page, cfg)
	}

	if err := save(*output, buf); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("Wrote %s (%dx%d)\n", *output, *width, *height)
}

// parseColor turns an RRGGBB hex string into an opaque color. An empty
// string yields the zero value, which the renderer treats as default.
func parseColor(s string) (mushaf.RGBA, error) {
	if s == "" {
		return mushaf.RGBA{}, nil
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return mushaf.RGBA{}, fmt.Errorf("want RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return mushaf.RGBA{}, err
	}
	return mushaf.RGBAFromUint32(uint32(v)<<8 | 0xFF), nil
}

func save(path string, buf *mushaf.PixelBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".ppm") {
		return writePPM(f, buf)
	}
	img := &image.NRGBA{
		Pix:    buf.Pix,
		Stride: buf.Stride,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
	return png.Encode(f, img)
}

// writePPM emits a binary P6 image, dropping alpha.
func writePPM(f *os.File, buf *mushaf.PixelBuffer) error {
	if _, err := fmt.Fprintf(f, "P6\n%d %d\n255\n", buf.Width, buf.Height); err != nil {
		return err
	}
	row := make([]byte, buf.Width*3)
	for y := 0; y < buf.Height; y++ {
		src := buf.Pix[y*buf.Stride:]
		for x := 0; x < buf.Width; x++ {
			copy(row[x*3:], src[x*4:x*4+3])
		}
		if _, err := f.Write(row); err != nil {
			return err
		}
	}
	return nil
}
