// Package server exposes a dispatcher's operations as MCP tools over stdio.
package server

import (
	"context"
	"io"
	stdlog "log"

	"github.com/hellodex/dbot-mcp/handler"
	"github.com/hellodex/dbot-mcp/logger"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

type Server struct {
	name       string
	dispatcher *handler.Dispatcher
	mcp        *mcpserver.MCPServer
	tools      []mcp.Tool
}

// New registers one tool per operation of d.
func New(name, version string, d *handler.Dispatcher) *Server {
	s := &Server{
		name:       name,
		dispatcher: d,
		mcp: mcpserver.NewMCPServer(name, version,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
	}

	for _, op := range d.Operations() {
		tool := Tool(op)
		s.tools = append(s.tools, tool)
		s.mcp.AddTool(tool, s.callTool(op.Name))
	}
	log.Info().Func(logger.WithCategory(logger.CategoryTool)).
		Str("server", name).Int("tools", len(s.tools)).Msg("tools registered")
	return s
}

// Tool describes op the way MCP clients list it.
func Tool(op *handler.Operation) mcp.Tool {
	return mcp.NewToolWithRawSchema(op.Name, op.Description, op.Params.RawJSONSchema())
}

func (s *Server) Tools() []mcp.Tool {
	return s.tools
}

// callTool turns dispatcher errors into protocol errors; upstream failures
// are already rendered as text by the dispatcher.
func (s *Server) callTool(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := s.dispatcher.Handle(ctx, name, request.GetArguments())
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(text), nil
	}
}

// Serve speaks the protocol on in/out until ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(stdlog.New(log.Logger, "", 0))

	log.Info().Func(logger.WithCategory(logger.CategoryTool)).Str("server", s.name).Msg("listening on stdio")
	err := stdio.Listen(ctx, in, out)
	if ctx.Err() != nil {
		log.Info().Str("server", s.name).Msg("shutting down")
		return nil
	}
	return err
}
