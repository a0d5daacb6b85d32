package mcpserver

import (
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/xavierca1/ligue-crm-mcp/internal/tool"
)

// ServeStdio atende uma sessão MCP pelos streams do processo. Log vai para
// stderr; stdout é reservado para o JSON-RPC.
func ServeStdio(registry *tool.Registry) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	slog.Info("servidor MCP iniciando em stdio", "server", ServerName, "version", Version)
	return server.ServeStdio(New(registry))
}
