package extract

import (
	"bytes"

	rpdf "rsc.io/pdf"
)

type rscEngine struct{}

func (rscEngine) Name() string { return "rsc" }

func (rscEngine) Open(data []byte) (doc Document, err error) {
	defer recoverAs(&err)
	r, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &rscDocument{r: r}, nil
}

type rscDocument struct {
	r *rpdf.Reader
}

func (d *rscDocument) NumPage() int { return d.r.NumPage() }

func (d *rscDocument) Runs(page int) (runs []Run, err error) {
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
