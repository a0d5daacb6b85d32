package mcpserver

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xavierca1/ligue-crm-mcp/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm-mcp/internal/tool"
)

// NewSSEMux monta o roteador do transporte SSE: o canal de push em GET /sse,
// as chamadas do cliente em POST /messages e o /health com ping no banco.
// O SSEServer do mcp-go expõe os dois handlers separados justamente para
// serem montados ao lado de outras rotas.
func NewSSEMux(registry *tool.Registry, db *sql.DB, port int) http.Handler {
	sseServer := server.NewSSEServer(
		New(registry),
		server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/messages"),
	)
	healthHandler := handlers.NewHealthHandler(db, Version)

	r := chi.NewRouter()
	r.Method(http.MethodGet, "/sse", sseServer.SSEHandler())
	r.Method(http.MethodPost, "/messages", sseServer.MessageHandler())
	r.Get("/health", healthHandler.Handle)
	return r
}

// ServeSSE atende o transporte SSE na porta dada.
func ServeSSE(registry *tool.Registry, db *sql.DB, port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("servidor MCP (SSE) escutando em %s", addr)
	return http.ListenAndServe(addr, NewSSEMux(registry, db, port))
}
