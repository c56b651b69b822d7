package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/digit/internal/presentation/graph"
	"github.com/aretw0/digit/internal/presentation/tui"
	"github.com/aretw0/digit/pkg/host"
)

// CatalogFormat selects how PrintCatalog renders.
type CatalogFormat string

const (
	FormatRendered CatalogFormat = "rendered" // glamour markdown for terminals
	FormatPlain    CatalogFormat = "plain"
	FormatMermaid  CatalogFormat = "mermaid"
)

// Catalog collects every registered plugin with its operations.
func Catalog(h *host.Host) ([]tui.CatalogSection, error) {
	entries := h.List()
	sections := make([]tui.CatalogSection, 0, len(entries))
	for _, e := range entries {
		ops, err := h.Operations(e.ID)
		if err != nil {
			return nil, err
		}
		sections = append(sections, tui.CatalogSection{Entry: e, Operations: ops})
	}
	return sections, nil
}

// PrintCatalog writes the catalog of h to w in the given format. Highlighted
// "Plugin.operation" keys are marked in the Mermaid output.
func PrintCatalog(w io.Writer, h *host.Host, format CatalogFormat, highlight ...string) error {
	sections, err := Catalog(h)
	if err != nil {
		return err
	}

	switch format {
	case FormatPlain:
		_, err := io.WriteString(w, tui.CatalogPlain(sections))
		return err
	case FormatMermaid:
		var overlay *graph.GraphOverlay
		if len(highlight) > 0 {
			overlay = &graph.GraphOverlay{Highlighted: highlight}
		}
		_, err := io.WriteString(w, graph.GenerateMermaid(sections, overlay))
		return err
	case FormatRendered:
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	md := tui.CatalogMarkdown(sections)
	render, err := tui.NewRenderer()
	if err != nil {
		_, err := io.WriteString(w, md)
		return err
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("error rendering catalog: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
