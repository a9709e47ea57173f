// Package mcp provides Model Context Protocol server functionality.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agenticlabs/semsearch/domain/content"
	"github.com/agenticlabs/semsearch/domain/search"
	"github.com/agenticlabs/semsearch/infrastructure/api/v1/dto"
	"github.com/agenticlabs/semsearch/internal/log"
)

// Searcher provides content search for MCP tools.
type Searcher interface {
	Search(ctx context.Context, query search.Query) (search.Response, error)
}

// Server wraps the MCP server with content search tools.
type Server struct {
	mcpServer *server.MCPServer
	searcher  Searcher
	corpus    *content.Corpus
	logger    *log.Logger
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(searcher Searcher, corpus *content.Corpus, version string, logger *log.Logger) *Server {
	s := &Server{
		searcher: searcher,
		corpus:   corpus,
		logger:   logger,
	}

	mcpServer := server.NewMCPServer(
		"semsearch",
		version,
		server.WithToolCapabilities(true),
	)

	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

// registerTools registers all semsearch tools with the MCP server.
func (s *Server) registerTools(mcpServer *server.MCPServer) {
	searchTool := mcp.NewTool("search",
		mcp.WithDescription("Search marketing content by meaning using embedding similarity, with keyword fallback"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search query"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 5)"),
		),
		mcp.WithNumber("threshold",
			mcp.Description("Minimum cosine similarity in [0,1] for semantic results (default: 0.6)"),
		),
	)

	mcpServer.AddTool(searchTool, s.handleSearch)

	getContentTool := mcp.NewTool("get_content",
		mcp.WithDescription("Get a content item by its ID"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The content item identifier"),
		),
	)

	mcpServer.AddTool(getContentTool, s.handleGetContent)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queryText, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	limit := request.GetInt("limit", 0)
	threshold := request.GetFloat("threshold", -1)

	query := search.NewQuery(queryText, limit, threshold)
	resp, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logger.Error("search failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(dto.FromResponse(resp))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleGetContent handles the get_content tool invocation.
func (s *Server) handleGetContent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	item, ok := s.corpus.Item(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("content not found: %s", id)), nil
	}

	type contentResult struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Body        string `json:"body"`
		Type        string `json:"type"`
		Image       string `json:"image,omitempty"`
		Video       string `json:"video,omitempty"`
		Podcast     string `json:"podcast,omitempty"`
	}

	result := contentResult{
		ID:          item.ID(),
		Title:       item.Title(),
		Description: item.Description(),
		Body:        item.Body(),
		Type:        string(item.Category()),
		Image:       item.Image(),
		Video:       item.Video(),
		Podcast:     item.Podcast(),
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// MCPServer returns the underlying MCP server for HTTP mounting.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
