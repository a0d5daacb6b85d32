package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/ligue-crm-mcp/internal/tool"
)

func testRegistry() *tool.Registry {
	r := tool.NewRegistry()
	r.Register(tool.Definition{
		Name:        "get_pipeline_stats",
		Description: "Agregado do funil",
		Fields:      []tool.Field{},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return map[string]any{"lead": map[string]any{"count": 2}}, nil
		},
	})
	r.Register(tool.Definition{
		Name:        "get_lead_history",
		Description: "Histórico",
		Fields: []tool.Field{
			{Name: "lead_id", Type: tool.TypeString, Required: true},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return []any{}, nil
		},
	})
	return r
}

func postMCP(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewMCPHandler(testRegistry())
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestMCPHandler_EnvelopeToolsList(t *testing.T) {
	rec := postMCP(t, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Result struct {
			Tools []struct {
				Name        string         `json:"name"`
				InputSchema map[string]any `json:"input_schema"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Result.Tools, 2)
	assert.Equal(t, "get_pipeline_stats", resp.Result.Tools[0].Name)
	assert.Equal(t, "object", resp.Result.Tools[1].InputSchema["type"])
}

func TestMCPHandler_EnvelopeToolsCall(t *testing.T) {
	rec := postMCP(t, `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"get_pipeline_stats","arguments":{}}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(7), resp["id"])
	assert.NotNil(t, resp["result"])
	assert.Nil(t, resp["error"])
}

func TestMCPHandler_EnvelopeUnknownTool(t *testing.T) {
	rec := postMCP(t, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"drop_table","arguments":{}}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "drop_table")
}

func TestMCPHandler_EnvelopeUnknownMethod(t *testing.T) {
	rec := postMCP(t, `{"jsonrpc":"2.0","id":3,"method":"resources/list"}`)

	var resp struct {
		Error *struct {
			Code int `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
}

func TestMCPHandler_DirectCall(t *testing.T) {
	rec := postMCP(t, `{"tool":"get_pipeline_stats","arguments":{}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestMCPHandler_DirectValidationError(t *testing.T) {
	rec := postMCP(t, `{"tool":"get_lead_history","arguments":{}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "lead_id")
}

func TestMCPHandler_DirectUnknownTool(t *testing.T) {
	rec := postMCP(t, `{"tool":"nope","arguments":{}}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMCPHandler_InvalidJSON(t *testing.T) {
	rec := postMCP(t, `{nope`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
