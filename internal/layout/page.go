package layout

import "strings"

// ReconstructPage turns one page's fragments, in any order, into text lines
// joined by newlines. A page without usable fragments yields "".
func ReconstructPage(frags []Fragment) string {
	return RenderLines(GroupLines(Clean(frags)))
}

func RenderLines(lines []Line) string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ReconstructLine(ln)
	}
	return strings.Join(out, "\n")
}

// JoinPages joins page texts with pageBreak. Empty pages keep their slot so
// page boundaries survive in the output.
func JoinPages(pages []string, pageBreak string) string {
	if pageBreak == "" {
		pageBreak = DefaultPageBreak
	}
	return strings.Join(pages, pageBreak)
}
