package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/digit/pkg/host"
	"github.com/aretw0/digit/pkg/plugin"
)

// CatalogSection is one plugin and the operations it publishes.
type CatalogSection struct {
	Entry      host.Entry
	Operations []plugin.Operation
}

// CatalogMarkdown renders sections as a markdown document with one table per
// plugin.
func CatalogMarkdown(sections []CatalogSection) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		meta := s.Entry.Metadata
		fmt.Fprintf(&b, "# %s\n\n", s.Entry.ID)
		fmt.Fprintf(&b, "**%s** %s", meta.Name, meta.Version)
		if meta.Author != "" {
			fmt.Fprintf(&b, " by %s", escapeCell(meta.Author))
		}
		b.WriteString("\n\n")
		if meta.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", meta.Description)
		}
		if len(s.Operations) == 0 {
			b.WriteString("_No operations._\n")
			continue
		}

		b.WriteString("| Operation | Parameters | Returns | Description |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, op := range s.Operations {
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
				op.Name, formatParams(op.Params), op.Returns, escapeCell(op.Description))
		}
	}
	return b.String()
}

// CatalogPlain renders sections as plain lines of the form
// "ID.operation(param type, ...) -> returns".
func CatalogPlain(sections []CatalogSection) string {
	var b strings.Builder
	for _, s := range sections {
		for _, op := range s.Operations {
			fmt.Fprintf(&b, "%s.%s(%s) -> %s\n", s.Entry.ID, op.Name, formatParams(op.Params), op.Returns)
		}
	}
	return b.String()
}

func formatParams(params []plugin.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		s := p.Name + " " + string(p.Type)
		if p.Optional {
			s += "?"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
