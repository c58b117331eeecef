// Package quran exposes the static Madina mushaf metadata: per-surah
// records and the (surah, ayah) location that begins each of the 604
// pages, together with pure lookup functions over those tables.
//
// The tables are compiled in (see tables.go) and never mutated. All
// lookups return a sentinel (-1 or ok=false) for out-of-range
// arguments instead of panicking.
package quran

// Corpus size constants. Verify() checks the compiled tables against them.
const (
	// PageCount is the number of pages in the mushaf.
	PageCount = 604

	// SurahCount is the number of surahs.
	SurahCount = 114

	// TotalAyahs is the number of ayahs across all surahs.
	TotalAyahs = 6236
)

// RevelationType classifies a surah as Meccan or Medinan.
type RevelationType uint8

const (
	// TypeMeccan marks a surah revealed before the Hijra.
	TypeMeccan RevelationType = iota

	// TypeMedinan marks a surah revealed after the Hijra.
	TypeMedinan
)

// String returns the conventional English name of the revelation type.
func (t RevelationType) String() string {
	if t == TypeMedinan {
		return "Medinan"
	}
	return "Meccan"
}

// Surah is one surah's static metadata.
type Surah struct {
	// Number is the surah number, 1..114.
	Number int

	// AyahCount is the number of ayahs in this surah.
	AyahCount int

	// StartAyah is the 0-based cumulative index of this surah's first
	// ayah, i.e. the sum of the ayah counts of all preceding surahs.
	StartAyah int

	// NameArabic is the Arabic name.
	NameArabic string

	// NameTrans is the transliterated name.
	NameTrans string

	// NameEnglish is the English name.
	NameEnglish string

	// Type is the revelation classification.
	Type RevelationType

	// RevelationOrder is the chronological revelation position, 1..114.
	RevelationOrder int

	// RukuCount is the number of rukus.
	RukuCount int
}

// PageStart identifies the ayah that begins a page.
type PageStart struct {
	// Surah is the surah number, 1..114.
	Surah int

	// Ayah is the 1-based ayah number within Surah.
	Ayah int
}

// Info returns the metadata record for surah n (1..114).
func Info(n int) (Surah, bool) {
	if n < 1 || n > SurahCount {
		return Surah{}, false
	}
	return surahs[n-1], true
}

// AyahCount returns the number of ayahs in surah n, or -1 if n is
// out of range.
func AyahCount(n int) int {
	if n < 1 || n > SurahCount {
		return -1
	}
	return surahs[n-1].AyahCount
}

// PageLocation returns the (surah, ayah) beginning page, or ok=false
// for an out-of-range page index.
func PageLocation(page int) (PageStart, bool) {
	if page < 0 || page >= PageCount {
		return PageStart{}, false
	}
	return pageStarts[page], true
}

// SurahStartPage returns the first page on which surah n appears, or
// -1 if n is out of range.
//
// Most surahs begin a page, so the common case is the page whose start
// record is (n, 1). A surah whose first ayah falls mid-page has no
// such record; it then starts on the page before the first record that
// passes it.
func SurahStartPage(n int) int {
	if n < 1 || n > SurahCount {
		return -1
	}
	// The page starts are monotonic in (surah, ayah); binary search for
	// the first record at or past (n, 1).
	lo, hi := 0, PageCount
	for lo < hi {
		mid := (lo + hi) / 2
		if lessLoc(pageStarts[mid], PageStart{n, 1}) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < PageCount && pageStarts[lo].Surah == n && pageStarts[lo].Ayah == 1 {
		return lo
	}
	// Mid-page start: the surah begins on the preceding page.
	if lo > 0 {
		return lo - 1
	}
	return 0
}

// AyahPage returns the page containing ayah a of surah n, or -1 for
// out-of-range arguments.
//
// This is the last page whose start record is <= (n, a) in
// surah-then-ayah order, relying on the monotonicity of the table.
func AyahPage(n, a int) int {
	if n < 1 || n > SurahCount {
		return -1
	}
	if a < 1 || a > surahs[n-1].AyahCount {
		return -1
	}
	want := PageStart{n, a}
	// Binary search for the first record strictly past (n, a); the
	// answer is the record before it.
	lo, hi := 0, PageCount
	for lo < hi {
		mid := (lo + hi) / 2
		if lessLoc(want, pageStarts[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo == 0 {
		return 0
	}
	return lo - 1
}

// lessLoc orders page starts by (surah, ayah).
func lessLoc(a, b PageStart) bool {
	if a.Surah != b.Surah {
		return a.Surah < b.Surah
	}
	return a.Ayah < b.Ayah
}

// Verify checks the compiled tables against the corpus invariants:
// cumulative ayah numbering, total counts, and page-start monotonicity.
// It reports the first violation found, or ok=true for sound tables.
// The renderer calls this once at initialization.
func Verify() bool {
	sum := 0
	for i := range surahs {
		s := &surahs[i]
		if s.Number != i+1 || s.StartAyah != sum || s.AyahCount <= 0 {
			return false
		}
		sum += s.AyahCount
	}
	if sum != TotalAyahs {
		return false
	}
	prev := pageStarts[0]
	if prev.Surah != 1 || prev.Ayah != 1 {
		return false
	}
	for _, loc := range pageStarts[1:] {
		if lessLoc(loc, prev) {
			return false
		}
		if loc.Surah < 1 || loc.Surah > SurahCount || loc.Ayah < 1 {
			return false
		}
		prev = loc
	}
	return true
}
