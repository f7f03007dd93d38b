package extract

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/thywilljoshua/pdflayout/internal/layout"
)

// Run is one text item as a decoder reports it: the text, its transform
// [a b c d e f] and, when known, its advance width and height.
type Run struct {
	Text      string
	Transform [6]float64
	Width     float64
	Height    float64
}

// Fragments converts decoder runs into layout fragments. The origin is the
// transform translation; a missing height falls back to the vertical scale.
// Blank runs are dropped.
func Fragments(runs []Run) []layout.Fragment {
	out := make([]layout.Fragment, 0, len(runs))
	for _, r := range runs {
		text := norm.NFC.String(strings.ToValidUTF8(r.Text, "\uFFFD"))
		if strings.TrimSpace(text) == "" {
			continue
		}
		h := r.Height
		if h == 0 {
			h = math.Abs(r.Transform[3])
		}
		out = append(out, layout.Fragment{
			Text:   text,
			X:      r.Transform[4],
			Y:      r.Transform[5],
			Width:  r.Width,
			Height: h,
		})
	}
	return out
}
