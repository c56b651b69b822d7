package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/pkg/host"
	"github.com/aretw0/digit/pkg/plugin"
	"github.com/aretw0/digit/pkg/wire"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/cors"
)

// CatalogURI is the resource listing every plugin and its operations.
const CatalogURI = "digit://catalog"

// Host is the part of host.Host the MCP server needs.
type Host interface {
	List() []host.Entry
	Operations(id string) ([]plugin.Operation, error)
	Invoke(ctx context.Context, id, op string, args map[string]any) (any, error)
}

// Server exposes the operations of every registered plugin as MCP tools.
type Server struct {
	host      Host
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance. Tools are registered from the
// host's catalog at construction time.
func NewServer(h Host, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		host:   h,
		logger: logger,
		mcpServer: server.NewMCPServer("digit-mcp", strings.TrimSpace(digit.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	if err := s.registerTools(); err != nil {
		return nil, err
	}
	s.registerResources()
	return s, nil
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks until ctx
// is done or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	c := cors.AllowAll()
	mux := http.NewServeMux()
	mux.Handle("/sse", c.Handler(sseServer.SSEHandler()))
	mux.Handle("/message", c.Handler(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// ToolName is the MCP tool name of an operation: the lower-cased plugin ID and
// the operation name joined by an underscore.
func ToolName(pluginID, op string) string {
	return strings.ToLower(pluginID) + "_" + op
}

func (s *Server) registerTools() error {
	for _, e := range s.host.List() {
		ops, err := s.host.Operations(e.ID)
		if err != nil {
			return err
		}
		for _, op := range ops {
			s.mcpServer.AddTool(newTool(e.ID, op), s.handler(e.ID, op.Name))
		}
	}
	return nil
}

func newTool(pluginID string, op plugin.Operation) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(op.Description)}
	for _, p := range op.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if !p.Optional {
			props = append(props, mcp.Required())
		}
		switch p.Type {
		case plugin.ParamNumbers:
			opts = append(opts, mcp.WithArray(p.Name, append(props, mcp.WithNumberItems())...))
		case plugin.ParamInteger:
			opts = append(opts, mcp.WithNumber(p.Name, append(props, integerType)...))
		case plugin.ParamPoint:
			opts = append(opts, mcp.WithObject(p.Name, append(props, mcp.Properties(map[string]any{
				"x": map[string]any{"type": "number"},
				"y": map[string]any{"type": "number"},
			}))...))
		default:
			opts = append(opts, mcp.WithNumber(p.Name, props...))
		}
	}
	return mcp.NewTool(ToolName(pluginID, op.Name), opts...)
}

// integerType narrows a number property to JSON Schema "integer".
func integerType(schema map[string]any) {
	schema["type"] = "integer"
}

func (s *Server) handler(pluginID, op string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.host.Invoke(ctx, pluginID, op, request.GetArguments())
		if err != nil {
			s.logger.Warn("MCP tool call failed", "tool", request.Params.Name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		data, err := wire.Marshal(result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

type catalogEntry struct {
	host.Entry
	Operations []plugin.Operation `json:"operations"`
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Plugin Catalog",
		mcp.WithMIMEType("application/json"),
	), s.readCatalog)
}

func (s *Server) readCatalog(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entries := s.host.List()
	catalog := make([]catalogEntry, 0, len(entries))
	for _, e := range entries {
		ops, err := s.host.Operations(e.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		catalog = append(catalog, catalogEntry{Entry: e, Operations: ops})
	}
	data, err := wire.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CatalogURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
