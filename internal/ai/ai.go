package ai

import (
	"context"
	"errors"
	"strings"
)

var ErrMissingAPIKey = errors.New("missing GOOGLE_API_KEY")

// Assistant answers a question about an extracted document.
type Assistant interface {
	Ask(ctx context.Context, document, question string) (string, error)
}

type Noop struct{}

func (Noop) Ask(ctx context.Context, document, question string) (string, error) { return "", nil }

const instructions = `Answer the question using only the document below. The document was extracted from a PDF:
lines follow the page top to bottom, " | " marks a probable table-column boundary and
"--- Page suivante ---" marks a page break. If the document does not contain the answer, say so.`

func buildPrompt(document, question string) string {
	var b strings.Builder
	b.WriteString(instructions)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(strings.TrimSpace(question))
	b.WriteString("\n\nDocument:\n")
	b.WriteString(document)
	return b.String()
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
