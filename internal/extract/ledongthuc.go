package extract

import (
	"bytes"

	lpdf "github.com/ledongthuc/pdf"
)

type ledongthucEngine struct{}

func (ledongthucEngine) Name() string { return "ledongthuc" }

func (ledongthucEngine) Open(data []byte) (doc Document, err error) {
	defer recoverAs(&err)
	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &ledongthucDocument{r: r}, nil
}

type ledongthucDocument struct {
	r *lpdf.Reader
}

func (d *ledongthucDocument) NumPage() int { return d.r.NumPage() }

func (d *ledongthucDocument) Runs(page int) (runs []Run, err error) {
	defer recoverAs(&err)
	p := d.r.Page(page)
	if p.V.IsNull() {
		return nil, ErrMissingPage
	}
	texts := p.Content().Text
	glyphs := make([]glyph, len(texts))
	for i, t := range texts {
		glyphs[i] = glyph{font: t.Font, size: t.FontSize, x: t.X, y: t.Y, w: t.W, s: t.S}
	}
	return coalesce(glyphs), nil
}
