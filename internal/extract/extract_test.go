package extract

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thywilljoshua/pdflayout/internal/layout"
)

var errCorrupt = errors.New("corrupt page object")

type fakeEngine struct {
	pages   [][]Run
	openErr error
	pageErr map[int]error
	opens   atomic.Int32
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Open(data []byte) (Document, error) {
	f.opens.Add(1)
	if f.openErr != nil {
		return nil, f.openErr
	}
	return fakeDocument{f}, nil
}

type fakeDocument struct{ e *fakeEngine }

func (d fakeDocument) NumPage() int { return len(d.e.pages) }

func (d fakeDocument) Runs(page int) ([]Run, error) {
	if err := d.e.pageErr[page]; err != nil {
		return nil, err
	}
	return d.e.pages[page-1], nil
}

func run(text string, x, y, w float64) Run {
	return Run{Text: text, Transform: [6]float64{10, 0, 0, 10, x, y}, Width: w}
}

func gradePage() []Run {
	return []Run{
		run("Moyenne", 100, 100, 40),
		run("Nom", 0, 100, 20),
		run("Note", 50, 100, 25),
	}
}

func TestExtractJoinsPages(t *testing.T) {
	eng := &fakeEngine{pages: [][]Run{gradePage(), {run("Appréciation", 0, 700, 60)}}}
	res, err := New(eng).Extract(context.Background(), []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "fake", res.Engine)
	assert.Equal(t, []string{"Nom Note Moyenne", "Appréciation"}, res.Pages)
	assert.Equal(t, 1, strings.Count(res.Text, layout.DefaultPageBreak))
	assert.Equal(t, res.Pages, strings.Split(res.Text, layout.DefaultPageBreak))
}

func TestExtractEmptyPageKeepsMarker(t *testing.T) {
	eng := &fakeEngine{pages: [][]Run{{run("  ", 0, 0, 5)}, gradePage()}}
	res, err := New(eng).Extract(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultPageBreak+"Nom Note Moyenne", res.Text)
}

func TestExtractCustomPageBreak(t *testing.T) {
	eng := &fakeEngine{pages: [][]Run{gradePage(), gradePage()}}
	res, err := New(eng, WithPageBreak("\n\n--- Next page ---\n\n")).Extract(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "Nom Note Moyenne\n\n--- Next page ---\n\nNom Note Moyenne", res.Text)
}

func TestExtractEmptyInput(t *testing.T) {
	_, err := New(&fakeEngine{}).Extract(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestExtractDecodeError(t *testing.T) {
	cause := errors.New("invalid header")
	_, err := New(&fakeEngine{openErr: cause}).Extract(context.Background(), []byte("nope"))

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "fake", de.Engine)
	assert.ErrorIs(t, err, cause)
}

func TestExtractPageErrorAborts(t *testing.T) {
	eng := &fakeEngine{
		pages:   [][]Run{gradePage(), gradePage(), gradePage()},
		pageErr: map[int]error{2: errCorrupt},
	}
	res, err := New(eng).Extract(context.Background(), []byte("%PDF"))
	assert.Nil(t, res)

	var pe *PageAccessError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Page)
	assert.ErrorIs(t, err, errCorrupt)
}

func TestExtractZeroPages(t *testing.T) {
	res, err := New(&fakeEngine{}).Extract(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	assert.Empty(t, res.Pages)
	assert.Equal(t, "", res.Text)
}

func TestExtractHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(&fakeEngine{pages: [][]Run{gradePage()}}).Extract(ctx, []byte("%PDF"))
	assert.ErrorIs(t, err, context.Canceled)
}

func manyPages(n int) [][]Run {
	pages := make([][]Run, n)
	for i := range pages {
		pages[i] = []Run{
			run(strings.Repeat("p", i+1), 0, 700, 10),
			run("Note", 80, 700, 20),
			run("ligne", 0, 600, 20),
		}
	}
	return pages
}

func TestExtractParallelMatchesSequential(t *testing.T) {
	pages := manyPages(9)
	seq, err := New(&fakeEngine{pages: pages}).Extract(context.Background(), []byte("%PDF"))
	require.NoError(t, err)

	eng := &fakeEngine{pages: pages}
	par, err := New(eng, WithWorkers(4)).Extract(context.Background(), []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, seq, par)
	// one handle for the page count, one per worker
	assert.Equal(t, int32(5), eng.opens.Load())
}

func TestExtractParallelPageError(t *testing.T) {
	eng := &fakeEngine{pages: manyPages(6), pageErr: map[int]error{5: errCorrupt}}
	_, err := New(eng, WithWorkers(3)).Extract(context.Background(), []byte("%PDF"))

	var pe *PageAccessError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Page)
}

func TestNewEngine(t *testing.T) {
	e, err := NewEngine("")
	require.NoError(t, err)
	assert.Equal(t, DefaultEngine, e.Name())

	e, err = NewEngine("RSC")
	require.NoError(t, err)
	assert.Equal(t, "rsc", e.Name())

	_, err = NewEngine("pdfium")
	assert.ErrorIs(t, err, ErrUnknownEngine)
	assert.Equal(t, []string{"ledongthuc", "rsc"}, EngineNames())
}
