package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/internal/presentation/graph"
	"github.com/aretw0/digit/internal/presentation/tui"
	"github.com/aretw0/digit/pkg/host"
	"github.com/aretw0/digit/pkg/plugin"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		sections []tui.CatalogSection
		contains []string
	}{
		{
			name: "Plugin Node Shape",
			sections: []tui.CatalogSection{
				{Entry: host.Entry{ID: "Digit"}},
			},
			contains: []string{"Digit((\"Digit\"))"},
		},
		{
			name: "Shapes By Result",
			sections: []tui.CatalogSection{
				{Entry: host.Entry{ID: "P"}, Operations: []plugin.Operation{
					{Name: "n", Returns: plugin.ResultNumber},
					{Name: "b", Returns: plugin.ResultBool},
					{Name: "pt", Returns: plugin.ResultPoint},
				}},
			},
			contains: []string{
				"P_n[\"n\"]",
				"P_b{\"b\"}",
				"P_pt[/\"pt\"/]",
				"P --> P_n",
			},
		},
		{
			name: "Edge Labels And Sanitization",
			sections: []tui.CatalogSection{
				{Entry: host.Entry{ID: "my-plugin"}, Operations: []plugin.Operation{
					{Name: "add", Returns: plugin.ResultNumber, Params: []plugin.Param{{Name: "a"}, {Name: "b"}}},
				}},
			},
			contains: []string{
				"my_plugin((\"my-plugin\"))",
				"my_plugin -- \"a, b\" --> my_plugin_add",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.sections, nil)
			assert.True(t, strings.HasPrefix(got, "graph LR\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			assert.NotContains(t, got, "classDef")
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	p := digit.New()
	sections := []tui.CatalogSection{{Entry: host.Entry{ID: digit.ID, Metadata: p.Metadata()}, Operations: p.Operations()}}

	got := graph.GenerateMermaid(sections, &graph.GraphOverlay{
		Highlighted: []string{"Digit.clamp", "Digit.clamp", "Digit.sum"},
	})

	assert.Contains(t, got, "classDef highlighted")
	assert.Equal(t, 1, strings.Count(got, "class Digit_clamp highlighted;"))
	assert.Contains(t, got, "class Digit_sum highlighted;")
	assert.Contains(t, got, "Digit -- \"t, p1, c1, c2, p2\" --> Digit_cubicBezier")
}
