// Package extract turns PDF bytes into table-aware plain text, one page at a
// time, using a pluggable decoding engine.
package extract

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thywilljoshua/pdflayout/internal/layout"
)

type Result struct {
	Engine string   `json:"engine"`
	Pages  []string `json:"pages"`
	Text   string   `json:"text"`
}

type Extractor struct {
	engine    Engine
	log       *zap.Logger
	workers   int
	pageBreak string
}

type Option func(*Extractor)

func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithWorkers extracts up to n pages at once, each worker on its own
// document handle. n <= 1 keeps pages strictly sequential.
func WithWorkers(n int) Option {
	return func(e *Extractor) { e.workers = n }
}

func WithPageBreak(s string) Option {
	return func(e *Extractor) {
		if s != "" {
			e.pageBreak = s
		}
	}
}

func New(engine Engine, opts ...Option) *Extractor {
	e := &Extractor{
		engine:    engine,
		log:       zap.NewNop(),
		workers:   1,
		pageBreak: layout.DefaultPageBreak,
	}
	for _, o := range opts {
		if o != nil {
			o(e)
		}
	}
	return e
}

func (e *Extractor) ExtractFile(ctx context.Context, path string) (*Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return e.Extract(ctx, b)
}

// Extract reconstructs every page in order and joins them with the page
// break. The first failing page aborts the whole document; there is no
// partial result.
func (e *Extractor) Extract(ctx context.Context, data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	start := time.Now()
	doc, err := e.open(data)
	if err != nil {
		return nil, err
	}
	n := doc.NumPage()

	var pages []string
	if e.workers > 1 && n > 1 {
		pages, err = e.extractParallel(ctx, data, n)
	} else {
		pages, err = e.extractSequential(ctx, doc, n)
	}
	if err != nil {
		return nil, err
	}

	e.log.Info("document extracted",
		zap.String("engine", e.engine.Name()),
		zap.Int("pages", n),
		zap.Int("workers", e.workers),
		zap.Duration("took", time.Since(start)),
	)
	return &Result{
		Engine: e.engine.Name(),
		Pages:  pages,
		Text:   layout.JoinPages(pages, e.pageBreak),
	}, nil
}

func (e *Extractor) open(data []byte) (Document, error) {
	doc, err := e.engine.Open(data)
	if err != nil {
		return nil, &DecodeError{Engine: e.engine.Name(), Err: err}
	}
	return doc, nil
}

func (e *Extractor) extractPage(doc Document, page int) (string, error) {
	runs, err := doc.Runs(page)
	if err != nil {
		return "", &PageAccessError{Page: page, Err: err}
	}
	frags := Fragments(runs)
	lines := layout.GroupLines(frags)
	text := layout.RenderLines(lines)
	e.log.Debug("page extracted",
		zap.Int("page", page),
		zap.Int("runs", len(runs)),
		zap.Int("fragments", len(frags)),
		zap.Int("lines", len(lines)),
	)
	return text, nil
}

func (e *Extractor) extractSequential(ctx context.Context, doc Document, n int) ([]string, error) {
	pages := make([]string, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := e.extractPage(doc, i)
		if err != nil {
			return nil, err
		}
		pages[i-1] = text
	}
	return pages, nil
}

// extractParallel hands page numbers to a fixed set of workers. Decoders make
// no promise about concurrent use, so every worker opens its own handle.
// Results land in their page slot, so output order never depends on timing.
func (e *Extractor) extractParallel(ctx context.Context, data []byte, n int) ([]string, error) {
	workers := min(e.workers, n)
	pages := make([]string, n)
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 1; i <= n; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			doc, err := e.open(data)
			if err != nil {
				return err
			}
			for page := range jobs {
				text, err := e.extractPage(doc, page)
				if err != nil {
					return err
				}
				pages[page-1] = text
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}
