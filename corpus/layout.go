package corpus

import "math"

// circularPages is the number of opening pages laid out on a disk.
const circularPages = 2

// Circular layout of the opening spread: row k (counting from the row
// below the centered title) spans a chord of a disk covering
// diskRatio of the page width, at the angle swept from startAngle
// towards 180-endAngle in six steps.
const (
	diskRatio  = 0.9
	startAngle = 30.0
	endAngle   = 22.5
)

// fixedWidths overrides the line measure on the tightly packed closing
// pages, keyed by 15*page+line. Fractions of the full measure, tuned
// for the Madina layout.
var fixedWidths = map[int]float64{
	15*585 + 0:  0.81,
	15*592 + 1:  0.81,
	15*593 + 4:  0.63,
	15*599 + 9:  0.63,
	15*601 + 4:  0.63,
	15*601 + 10: 0.9,
	15*601 + 14: 0.53,
	15*602 + 9:  0.66,
	15*602 + 14: 0.60,
	15*603 + 3:  0.55,
	15*603 + 8:  0.55,
	15*603 + 13: 0.675,
	15*603 + 14: 0.5,
}

// WidthFraction returns the fraction of the full line measure that the
// given line occupies, and whether an override applies. Lines without
// an override use the full measure.
func WidthFraction(page, line int) (float64, bool) {
	if w, ok := fixedWidths[LinesPerPage*page+line]; ok {
		return w, true
	}
	if page >= 0 && page < circularPages && line > 0 {
		deg := startAngle + float64(line-1)*(180-(startAngle+endAngle))/6
		return diskRatio * math.Sin(deg*math.Pi/180), true
	}
	return 1, false
}
