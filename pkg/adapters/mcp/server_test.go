package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/pkg/host"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	h := host.New()
	require.NoError(t, h.Register(context.Background(), digit.ID, digit.New()))
	t.Cleanup(func() { h.Close(context.Background()) })

	s, err := NewServer(h, nil)
	require.NoError(t, err)
	return s
}

func callTool(t *testing.T, s *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.MCPServer().GetTool(name)
	require.NotNil(t, tool, "tool %q not registered", name)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func TestToolName(t *testing.T) {
	assert.Equal(t, "digit_keepBits", ToolName("Digit", "keepBits"))
}

func TestServer_Tools(t *testing.T) {
	s := newTestServer(t)

	tools := s.MCPServer().ListTools()
	assert.Len(t, tools, len(digit.New().Operations()))

	clamp := s.MCPServer().GetTool("digit_clamp")
	require.NotNil(t, clamp)
	assert.ElementsMatch(t, []string{"digit", "min", "max"}, clamp.Tool.InputSchema.Required)

	equals := s.MCPServer().GetTool("digit_equals")
	require.NotNil(t, equals)
	assert.Contains(t, equals.Tool.InputSchema.Properties, "tolerance")
	assert.NotContains(t, equals.Tool.InputSchema.Required, "tolerance")

	sum := s.MCPServer().GetTool("digit_sum")
	require.NotNil(t, sum)
	digits, ok := sum.Tool.InputSchema.Properties["digits"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", digits["type"])

	keepBits := s.MCPServer().GetTool("digit_keepBits")
	require.NotNil(t, keepBits)
	bits, ok := keepBits.Tool.InputSchema.Properties["bits"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "integer", bits["type"])
	value, ok := keepBits.Tool.InputSchema.Properties["digit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "number", value["type"])

	bezier := s.MCPServer().GetTool("digit_cubicBezier")
	require.NotNil(t, bezier)
	p1, ok := bezier.Tool.InputSchema.Properties["p1"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", p1["type"])
}

func TestServer_CallTool(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s, "digit_distance", map[string]any{"x1": 0, "y1": 0, "x2": 3, "y2": 4})
	assert.False(t, res.IsError)
	assert.Equal(t, "5", text(t, res))

	res = callTool(t, s, "digit_cubicBezier", map[string]any{
		"t":  1,
		"p1": map[string]any{"x": 0, "y": 0},
		"c1": map[string]any{"x": 1, "y": 2},
		"c2": map[string]any{"x": 2, "y": 2},
		"p2": map[string]any{"x": 3, "y": 0},
	})
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"x":3,"y":0}`, text(t, res))

	res = callTool(t, s, "digit_average", map[string]any{"digits": []any{}})
	assert.Equal(t, `"NaN"`, text(t, res))

	res = callTool(t, s, "digit_abs", map[string]any{"digit": "x"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "invalid arguments")
}

func TestServer_Catalog(t *testing.T) {
	s := newTestServer(t)

	contents, err := s.readCatalog(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, CatalogURI, tc.URI)
	assert.Contains(t, tc.Text, `"id":"Digit"`)
	assert.Contains(t, tc.Text, `"name":"quadraticBezier"`)
}
