package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/ligue-crm-mcp/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm-mcp/internal/tool"
	"github.com/xavierca1/ligue-crm-mcp/internal/usecase"
)

// MCPHandler atende POST /mcp. Aceita dois corpos: o envelope JSON-RPC do
// protocolo (method = tools/list | tools/call) e a forma direta
// {tool, arguments}. Os dois caminhos caem no mesmo Registry.
type MCPHandler struct {
	Registry *tool.Registry
}

func NewMCPHandler(registry *tool.Registry) *MCPHandler {
	return &MCPHandler{Registry: registry}
}

type mcpRequest struct {
	// Envelope JSON-RPC
	JSONRPC string     `json:"jsonrpc,omitempty"`
	ID      any        `json:"id,omitempty"`
	Method  string     `json:"method,omitempty"`
	Params  *mcpParams `json:"params,omitempty"`

	// Forma direta
	Tool      string         `json:"tool,omitempty"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

type mcpParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

func (h *MCPHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req mcpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid JSON body",
		})
		return
	}

	if req.Method != "" {
		h.handleEnvelope(w, r, req)
		return
	}
	h.handleDirect(w, r, req)
}

func (h *MCPHandler) handleEnvelope(w http.ResponseWriter, r *http.Request, req mcpRequest) {
	switch req.Method {
	case "tools/list":
		defs := h.Registry.List()
		tools := make([]toolDescriptor, 0, len(defs))
		for _, def := range defs {
			tools = append(tools, toolDescriptor{
				Name:        def.Name,
				Description: def.Description,
				InputSchema: def.InputSchema(),
			})
		}
		writeRPC(w, rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: map[string]any{"tools": tools}})

	case "tools/call":
		if req.Params == nil || req.Params.Name == "" {
			writeRPC(w, rpcResponse{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{
				Code:    -32602,
				Message: "params.name is required",
			}})
			return
		}
		result, err := h.Registry.Invoke(r.Context(), req.Params.Name, req.Params.Arguments)
		if err != nil {
			middleware.RecordToolInvocation(req.Params.Name, "error")
			writeRPC(w, rpcResponse{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{
				Code:    rpcCode(err),
				Message: err.Error(),
			}})
			return
		}
		middleware.RecordToolInvocation(req.Params.Name, "ok")
		writeRPC(w, rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: result})

	default:
		writeRPC(w, rpcResponse{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{
			Code:    -32601,
			Message: "method not found: " + req.Method,
		}})
	}
}

func (h *MCPHandler) handleDirect(w http.ResponseWriter, r *http.Request, req mcpRequest) {
	if req.Tool == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "tool is required",
		})
		return
	}

	result, err := h.Registry.Invoke(r.Context(), req.Tool, req.Arguments)
	if err != nil {
		middleware.RecordToolInvocation(req.Tool, "error")
		writeJSON(w, httpStatus(err), map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	middleware.RecordToolInvocation(req.Tool, "ok")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  result,
	})
}

func rpcCode(err error) int {
	var (
		unknown    *tool.UnknownToolError
		validation usecase.ValidationError
	)
	switch {
	case errors.As(err, &unknown):
		return -32601
	case errors.As(err, &validation):
		return -32602
	default:
		return -32603
	}
}

func httpStatus(err error) int {
	var (
		unknown    *tool.UnknownToolError
		validation usecase.ValidationError
		domain     *usecase.DomainError
	)
	switch {
	case errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &domain):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeRPC(w http.ResponseWriter, resp rpcResponse) {
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
