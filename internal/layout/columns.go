package layout

import (
	"sort"
	"strings"
)

// ReconstructLine renders one line left to right. A horizontal gap wider
// than ColumnGap is taken as a table-column boundary and becomes
// ColumnSeparator; a gap wider than WordGap becomes a single space.
func ReconstructLine(line Line) string {
	switch len(line) {
	case 0:
		return ""
	case 1:
		return line[0].Text
	}

	frags := make([]Fragment, len(line))
	copy(frags, line)
	sort.SliceStable(frags, func(i, j int) bool { return frags[i].X < frags[j].X })

	var b strings.Builder
	lastEnd := frags[0].X
	for i, f := range frags {
		gap := f.X - lastEnd
		switch {
		case i > 0 && gap > ColumnGap:
			b.WriteString(ColumnSeparator)
		case i > 0 && gap > WordGap:
			b.WriteByte(' ')
		}
		b.WriteString(f.Text)
		lastEnd = f.X + f.Width
	}
	return b.String()
}
