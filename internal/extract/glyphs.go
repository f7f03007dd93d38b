package extract

import (
	"math"
	"strings"
)

// Both decoders report one item per glyph. Glyphs are folded back into runs
// the way a show-text operator produces them: same font, same baseline, and
// each glyph starting where the previous one's advance ended. A shift
// between runJoinFactor and runSpaceFactor font sizes is an inter-word
// adjustment and becomes a space inside the run; anything wider starts a
// new run.
const (
	runJoinFactor  = 0.102
	runSpaceFactor = 0.6
)

type glyph struct {
	font string
	size float64
	x, y float64
	w    float64
	s    string
}

type pendingRun struct {
	font  string
	size  float64
	x, y  float64
	end   float64
	text  strings.Builder
	space bool
}

func (p *pendingRun) run() Run {
	return Run{
		Text:      p.text.String(),
		Transform: [6]float64{p.size, 0, 0, p.size, p.x, p.y},
		Width:     p.end - p.x,
	}
}

func coalesce(glyphs []glyph) []Run {
	var runs []Run
	var cur *pendingRun
	flush := func() {
		if cur != nil {
			runs = append(runs, cur.run())
			cur = nil
		}
	}
	for _, g := range glyphs {
		if cur != nil && cur.font == g.font && cur.size == g.size && cur.y == g.y {
			gap := g.x - cur.end
			size := math.Abs(g.size)
			switch {
			case math.Abs(gap) <= runJoinFactor*size:
				cur.add(g, false)
				continue
			case gap > 0 && gap <= runSpaceFactor*size:
				cur.add(g, true)
				continue
			}
		}
		flush()
		cur = &pendingRun{font: g.font, size: g.size, x: g.x, y: g.y, end: g.x}
		cur.add(g, false)
	}
	flush()
	return runs
}

func (p *pendingRun) add(g glyph, space bool) {
	if space && !p.space && !strings.HasPrefix(g.s, " ") {
		p.text.WriteByte(' ')
	}
	p.text.WriteString(g.s)
	p.space = strings.HasSuffix(g.s, " ")
	p.end = g.x + g.w
}
