package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-crm-mcp/internal/tool"
)

type ToolsHandler struct {
	Registry *tool.Registry
}

func NewToolsHandler(registry *tool.Registry) *ToolsHandler {
	return &ToolsHandler{Registry: registry}
}

type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Handle responde GET /tools com a lista de ferramentas e seus schemas.
func (h *ToolsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	defs := h.Registry.List()
	tools := make([]toolDescriptor, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, toolDescriptor{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"tools": tools})
}
