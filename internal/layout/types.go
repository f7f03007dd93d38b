package layout

// Fragment is a run of text sharing one origin on the page.
// Coordinates are unscaled page points, y increasing upward.
type Fragment struct {
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Line is a set of fragments judged to share one baseline.
type Line []Fragment

// Empirical thresholds, in page points. They were tuned on sample school
// reports and are not derived from font metrics; do not re-tune without new
// evidence.
const (
	LineTolerance = 5.0
	WordGap       = 10.0
	ColumnGap     = 30.0
)

const ColumnSeparator = " | "

// DefaultPageBreak separates pages in a reconstructed document.
const DefaultPageBreak = "\n\n--- Page suivante ---\n\n"
