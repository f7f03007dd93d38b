package layout

import (
	"math"
	"sort"
	"strings"
)

// Clean drops fragments that carry no text; they give no layout signal.
func Clean(frags []Fragment) []Fragment {
	out := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// GroupLines clusters fragments into lines, top of page first.
//
// Fragments are walked by descending y. A new line starts whenever a
// fragment sits more than LineTolerance away from the fragment that opened
// the current line; the anchor never moves inside a line, so small baseline
// jitter cannot creep down the page fragment by fragment.
func GroupLines(frags []Fragment) []Line {
	if len(frags) == 0 {
		return nil
	}
	sorted := make([]Fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []Line
	var cur Line
	lastY := sorted[0].Y
	for _, f := range sorted {
		if math.Abs(f.Y-lastY) > LineTolerance {
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = nil
			lastY = f.Y
		}
		cur = append(cur, f)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}
