// Package render formats extraction results for output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/thywilljoshua/pdflayout/internal/extract"
	"github.com/thywilljoshua/pdflayout/internal/layout"
)

const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var Formats = []string{FormatText, FormatJSON, FormatMarkdown}

// Write renders res in the given format to w.
func Write(w io.Writer, res *extract.Result, format string) error {
	var out string
	switch format {
	case "", FormatText:
		out = res.Text
	case FormatJSON:
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		out = string(b)
	case FormatMarkdown:
		out = Markdown(res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// Markdown renders each page with detected tables as Markdown tables and
// separates pages with a horizontal rule.
func Markdown(res *extract.Result) string {
	pages := make([]string, len(res.Pages))
	for i, p := range res.Pages {
		pages[i] = transformTables(p)
	}
	return strings.Join(pages, "\n\n---\n\n")
}

// transformTables turns blocks of at least two consecutive lines carrying the
// same number of column-separated cells into a Markdown table.
func transformTables(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	var out []string
	i := 0
	for i < len(lines) {
		var block [][]string
		cols := 0
		j := i
		for j < len(lines) {
			cells := splitCells(lines[j])
			if len(cells) < 2 || (cols != 0 && len(cells) != cols) {
				break
			}
			cols = len(cells)
			block = append(block, cells)
			j++
		}
		if len(block) < 2 {
			out = append(out, lines[i])
			i++
			continue
		}
		out = append(out, tableRow(block[0]))
		sep := make([]string, cols)
		for k := range sep {
			sep[k] = "---"
		}
		out = append(out, tableRow(sep))
		for _, row := range block[1:] {
			out = append(out, tableRow(row))
		}
		i = j
	}
	return strings.Join(out, "\n")
}

func splitCells(line string) []string {
	if !strings.Contains(line, layout.ColumnSeparator) {
		return nil
	}
	parts := strings.Split(line, layout.ColumnSeparator)
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(strings.TrimSpace(p), "|", `\|`)
	}
	return parts
}

func tableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
