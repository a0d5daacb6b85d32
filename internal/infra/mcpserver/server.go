// Package mcpserver liga o registro de ferramentas ao protocolo MCP
// (mark3labs/mcp-go). Os transportes stdio e SSE vivem aqui; ambos despacham
// para o mesmo Registry, então este pacote só traduz envelopes.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xavierca1/ligue-crm-mcp/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm-mcp/internal/tool"
)

const (
	ServerName = "ligue-crm"
	Version    = "1.0.0"
)

// New monta o servidor MCP com as ferramentas do registro.
func New(registry *tool.Registry) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, def := range registry.List() {
		s.AddTool(buildTool(def), toolHandler(registry, def.Name))
	}
	return s
}

// buildTool traduz a declaração de campos para a definição MCP.
func buildTool(def tool.Definition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}

	for _, f := range def.Fields {
		var props []mcp.PropertyOption
		if f.Required {
			props = append(props, mcp.Required())
		}
		if f.Description != "" {
			props = append(props, mcp.Description(f.Description))
		}

		switch f.Type {
		case tool.TypeString:
			if s, ok := f.Default.(string); ok {
				props = append(props, mcp.DefaultString(s))
			}
			opts = append(opts, mcp.WithString(f.Name, props...))
		case tool.TypeNumber:
			if n, ok := f.Default.(float64); ok {
				props = append(props, mcp.DefaultNumber(n))
			}
			opts = append(opts, mcp.WithNumber(f.Name, props...))
		case tool.TypeObject:
			opts = append(opts, mcp.WithObject(f.Name, props...))
		}
	}
	return mcp.NewTool(def.Name, opts...)
}

// toolHandler delega para Registry.Invoke. Falhas viram tool error result:
// o agente recebe a mensagem em vez de um erro de protocolo.
func toolHandler(registry *tool.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := registry.Invoke(ctx, name, req.GetArguments())
		if err != nil {
			middleware.RecordToolInvocation(name, "error")
			return mcp.NewToolResultError(err.Error()), nil
		}
		middleware.RecordToolInvocation(name, "ok")
		return jsonResult(result)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
