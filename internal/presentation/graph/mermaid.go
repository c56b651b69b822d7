package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/digit/internal/presentation/tui"
	"github.com/aretw0/digit/pkg/plugin"
)

// GraphOverlay marks operations to highlight, keyed by "Plugin.operation".
type GraphOverlay struct {
	Highlighted []string
}

// GenerateMermaid produces a Mermaid flowchart of plugins and their operations.
// Shapes follow the result type:
// - Plugin: ((Circle))
// - boolean: {Rhombus}
// - point: [/Parallelogram/]
// - number: [Rectangle]
// Parameters are listed on the edge label.
func GenerateMermaid(sections []tui.CatalogSection, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range sections {
		pluginID := sanitizeMermaidID(s.Entry.ID)
		fmt.Fprintf(&sb, "    %s((\"%s\"))\n", pluginID, s.Entry.ID)

		for _, op := range s.Operations {
			safeID := sanitizeMermaidID(s.Entry.ID + "." + op.Name)

			opener, closer := "[", "]"
			switch op.Returns {
			case plugin.ResultBool:
				opener, closer = "{", "}"
			case plugin.ResultPoint:
				opener, closer = "[/", "/]"
			}
			fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, op.Name, closer)

			arrow := "-->"
			if len(op.Params) > 0 {
				names := make([]string, len(op.Params))
				for i, p := range op.Params {
					names[i] = p.Name
				}
				arrow = fmt.Sprintf("-- \"%s\" -->", strings.Join(names, ", "))
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", pluginID, arrow, safeID)
		}
	}

	if overlay != nil && len(overlay.Highlighted) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on both light and dark themes
		sb.WriteString("    classDef highlighted fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		ids := make([]string, 0, len(overlay.Highlighted))
		for _, key := range overlay.Highlighted {
			safeID := sanitizeMermaidID(key)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				ids = append(ids, safeID)
			}
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(&sb, "    class %s highlighted;\n", id)
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
