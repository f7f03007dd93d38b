package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frag(text string, x, y, w float64) Fragment {
	return Fragment{Text: text, X: x, Y: y, Width: w, Height: 10}
}

func TestReconstructGradeHeader(t *testing.T) {
	frags := []Fragment{
		frag("Nom", 0, 100, 20),
		frag("Note", 50, 100, 25),
		frag("Moyenne", 100, 100, 40),
	}
	lines := GroupLines(frags)
	require.Len(t, lines, 1)
	// 50-20 = 30 is not > 30, 100-75 = 25 is > 10: both become spaces.
	assert.Equal(t, "Nom Note Moyenne", ReconstructLine(lines[0]))
	assert.Equal(t, "Nom Note Moyenne", ReconstructPage(frags))
}

func TestReconstructLineSingleFragment(t *testing.T) {
	assert.Equal(t, "  Élève ", ReconstructLine(Line{frag("  Élève ", 300, 10, 5)}))
	assert.Equal(t, "", ReconstructLine(nil))
}

func TestReconstructLineThresholds(t *testing.T) {
	cases := []struct {
		name string
		x2   float64
		want string
	}{
		{"touching", 10, "ab"},
		{"word gap boundary", 20, "ab"},
		{"just over word gap", 20.01, "a b"},
		{"column gap boundary", 40, "a b"},
		{"just over column gap", 40.01, "a | b"},
		{"overlap", 5, "ab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := Line{frag("a", 0, 0, 10), frag("b", tc.x2, 0, 10)}
			assert.Equal(t, tc.want, ReconstructLine(line))
		})
	}
}

func TestReconstructLineOrdersByX(t *testing.T) {
	line := Line{
		frag("Moyenne", 200, 50, 40),
		frag("Nom", 0, 50, 20),
		frag("Note", 100, 50, 25),
	}
	assert.Equal(t, "Nom | Note | Moyenne", ReconstructLine(line))
}

func TestGroupLinesTolerance(t *testing.T) {
	same := GroupLines([]Fragment{frag("a", 0, 100, 5), frag("b", 20, 95, 5)})
	require.Len(t, same, 1)

	split := GroupLines([]Fragment{frag("a", 0, 100, 5), frag("b", 20, 94.99, 5)})
	require.Len(t, split, 2)
	assert.Equal(t, "a", split[0][0].Text)
	assert.Equal(t, "b", split[1][0].Text)
}

func TestGroupLinesAnchorDoesNotDrift(t *testing.T) {
	// Each step is within tolerance of its neighbour but the last fragment is
	// 6 points below the one that opened the line.
	lines := GroupLines([]Fragment{
		frag("a", 0, 100, 5),
		frag("b", 10, 97, 5),
		frag("c", 20, 94, 5),
	})
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 2)
	assert.Equal(t, "c", lines[1][0].Text)
}

func TestGroupLinesTopToBottom(t *testing.T) {
	lines := GroupLines([]Fragment{
		frag("bas", 0, 10, 5),
		frag("haut", 0, 700, 5),
		frag("milieu", 0, 400, 5),
	})
	require.Len(t, lines, 3)
	assert.Equal(t, "haut", lines[0][0].Text)
	assert.Equal(t, "milieu", lines[1][0].Text)
	assert.Equal(t, "bas", lines[2][0].Text)
}

func TestGroupLinesEmpty(t *testing.T) {
	assert.Empty(t, GroupLines(nil))
	assert.Equal(t, "", ReconstructPage(nil))
}

func TestGroupLinesCountNeverExceedsFragments(t *testing.T) {
	var frags []Fragment
	for i := 0; i < 40; i++ {
		frags = append(frags, frag("x", float64(i*7%50), float64(i*13%90), 3))
	}
	assert.LessOrEqual(t, len(GroupLines(frags)), len(frags))
}

func TestCleanDropsBlankFragments(t *testing.T) {
	frags := []Fragment{frag(" ", 0, 0, 1), frag("", 5, 0, 1), frag("\t\n", 9, 0, 1), frag("ok", 12, 0, 4)}
	got := Clean(frags)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Text)
	assert.Equal(t, "", ReconstructPage(frags[:3]))
}

func TestReconstructPageDeterministic(t *testing.T) {
	frags := []Fragment{
		frag("Trimestre", 300, 720, 60),
		frag("Élève", 40, 720, 40),
		frag("Français", 40, 700, 50),
		frag("14,5", 200, 701, 20),
		frag("Bon travail", 260, 699, 70),
	}
	want := "Élève | Trimestre\nFrançais | 14,5 | Bon travail"
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, ReconstructPage(frags))
	}
}

func TestJoinPages(t *testing.T) {
	p1 := ReconstructPage([]Fragment{frag("un", 0, 10, 10)})
	p2 := ReconstructPage([]Fragment{frag("deux", 0, 10, 10)})
	doc := JoinPages([]string{p1, p2}, "")
	assert.Equal(t, 1, strings.Count(doc, DefaultPageBreak))
	assert.Equal(t, []string{p1, p2}, strings.Split(doc, DefaultPageBreak))
}

func TestJoinPagesKeepsEmptyPage(t *testing.T) {
	doc := JoinPages([]string{"", "suite"}, "")
	assert.Equal(t, DefaultPageBreak+"suite", doc)
	assert.Equal(t, "a\f\fb", JoinPages([]string{"a", "b"}, "\f\f"))
}
