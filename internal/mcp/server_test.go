package mcp

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/agenticlabs/semsearch/application/service"
	"github.com/agenticlabs/semsearch/domain/content"
	"github.com/agenticlabs/semsearch/internal/config"
	"github.com/agenticlabs/semsearch/internal/log"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	corpus := content.NewCorpus(
		content.NewItem("agents", "Experience Agents", "Autonomous AI agents", "agents body", content.CategoryHotTopic),
	)
	logger := log.NewLoggerWithWriter(io.Discard, config.LogFormatJSON, "ERROR")
	searcher := service.NewSearchService(corpus, nil, logger)

	return NewServer(searcher, corpus, "test", logger)
}

func toolRequest(name string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleSearch(t *testing.T) {
	s := testServer(t)

	result, err := s.handleSearch(context.Background(), toolRequest("search", map[string]any{
		"query": "agents",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var resp struct {
		Query  string `json:"query"`
		Method string `json:"method"`
		Total  int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &resp))
	require.Equal(t, "agents", resp.Query)
	require.Equal(t, "degraded", resp.Method)
	require.Equal(t, 1, resp.Total)
}

func TestHandleSearch_MissingQuery(t *testing.T) {
	s := testServer(t)

	result, err := s.handleSearch(context.Background(), toolRequest("search", map[string]any{}))
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestHandleGetContent(t *testing.T) {
	s := testServer(t)

	result, err := s.handleGetContent(context.Background(), toolRequest("get_content", map[string]any{
		"id": "agents",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var item struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Type  string `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &item))
	require.Equal(t, "agents", item.ID)
	require.Equal(t, "Experience Agents", item.Title)
	require.Equal(t, "hot_topic", item.Type)
}

func TestHandleGetContent_Unknown(t *testing.T) {
	s := testServer(t)

	result, err := s.handleGetContent(context.Background(), toolRequest("get_content", map[string]any{
		"id": "missing",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
}
