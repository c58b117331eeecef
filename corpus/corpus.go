// Package corpus models the mushaf text as pages of classified lines.
//
// The corpus blob holds 604 pages separated by form-feed, with one line
// of Arabic text per layout row. Parse splits the blob, classifies each
// line (body text, surah header, bismillah) and assigns its
// justification mode. Line width fractions for the special pages (the
// circular opening spread and the tightly packed closing pages) come
// from WidthFraction.
package corpus

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PageCount is the number of pages the corpus blob must carry.
const PageCount = 604

// LinesPerPage is the layout grid height of a regular page.
const LinesPerPage = 15

// ErrEmptyCorpus is returned when the corpus blob is empty.
var ErrEmptyCorpus = errors.New("corpus: empty corpus data")

// PageCountError is returned when the corpus blob does not split into
// exactly PageCount pages.
type PageCountError struct {
	Got int
}

func (e *PageCountError) Error() string {
	return fmt.Sprintf("corpus: got %d pages, want %d", e.Got, PageCount)
}

// Role classifies a corpus line.
type Role uint8

const (
	// RoleBody is a regular line of scripture.
	RoleBody Role = iota

	// RoleSurahHeader is a surah title line, drawn inside a frame.
	RoleSurahHeader

	// RoleBismillah is the opening formula line.
	RoleBismillah
)

// String returns the role name for diagnostics.
func (r Role) String() string {
	switch r {
	case RoleSurahHeader:
		return "surah-header"
	case RoleBismillah:
		return "bismillah"
	default:
		return "body"
	}
}

// Justify selects how a line fills its measure.
type Justify uint8

const (
	// JustifyStretch fills the measure with kashida or space stretching.
	JustifyStretch Justify = iota

	// JustifyCenter centers the line without stretching.
	JustifyCenter
)

// Line is one classified corpus line.
type Line struct {
	// Text is the raw line text, without the trailing newline.
	Text string

	// Role is the line classification.
	Role Role

	// Justify is the line's justification mode.
	Justify Justify
}

// bismillah is the NFC form of the opening formula. Corpus lines are
// NFC-normalized before comparison so that mark-order variants of the
// same formula still match.
var bismillah = norm.NFC.String("بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ")

// surahHeaderPrefix begins every surah title line.
const surahHeaderPrefix = "سُورَة"

// Classify assigns the role and justification of a single line of text.
//
// The bismillah and surah headers are centered; everything else is body
// text stretched to the measure. The first-two-pages override of the
// circular layout is applied by Parse, not here.
func Classify(text string) (Role, Justify) {
	switch {
	case norm.NFC.String(text) == bismillah:
		return RoleBismillah, JustifyCenter
	case strings.HasPrefix(text, surahHeaderPrefix):
		return RoleSurahHeader, JustifyCenter
	default:
		return RoleBody, JustifyStretch
	}
}

// Parse splits the corpus blob into classified pages.
//
// Pages are separated by form-feed and lines by newline. The blob must
// contain exactly PageCount pages; empty lines are kept (they occupy a
// layout row) but reported through the package logger since they
// usually indicate a damaged corpus.
func Parse(data []byte) ([][]Line, error) {
	if len(data) == 0 {
		return nil, ErrEmptyCorpus
	}
	raw := strings.Split(string(data), "\f")
	// Tolerate a trailing separator after the last page.
	if n := len(raw); n == PageCount+1 && strings.TrimSpace(raw[n-1]) == "" {
		raw = raw[:n-1]
	}
	if len(raw) != PageCount {
		return nil, &PageCountError{Got: len(raw)}
	}

	pages := make([][]Line, PageCount)
	for pageIndex, pageText := range raw {
		pageText = strings.TrimPrefix(pageText, "\n")
		pageText = strings.TrimSuffix(pageText, "\n")
		lines := strings.Split(pageText, "\n")
		page := make([]Line, 0, len(lines))
		for lineIndex, text := range lines {
			if text == "" {
				logger().Warn("corpus: empty line",
					"page", pageIndex, "line", lineIndex)
			}
			role, just := Classify(text)
			// The opening spread is laid out as a circle: the first row
			// is the centered title, every following row is plain body
			// text whose width WidthFraction tapers to the disk.
			if pageIndex < circularPages {
				if lineIndex == 0 {
					just = JustifyCenter
				} else {
					role, just = RoleBody, JustifyStretch
				}
			}
			page = append(page, Line{Text: text, Role: role, Justify: just})
		}
		pages[pageIndex] = page
	}
	return pages, nil
}
