package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agenticlabs/semsearch"
	apimiddleware "github.com/agenticlabs/semsearch/infrastructure/api/middleware"
	v1 "github.com/agenticlabs/semsearch/infrastructure/api/v1"
	mcpinternal "github.com/agenticlabs/semsearch/internal/mcp"
	"github.com/agenticlabs/semsearch/internal/log"
)

// APIServer provides an HTTP API backed by a semsearch Client.
type APIServer struct {
	client  *semsearch.Client
	version string
	server  *Server
	router  chi.Router
	logger  *log.Logger
}

// NewAPIServer creates a new APIServer wired to the given semsearch Client.
func NewAPIServer(client *semsearch.Client, version string) *APIServer {
	return &APIServer{
		client:  client,
		version: version,
		logger:  client.Logger(),
	}
}

// mountRoutes wires up all routes on the given router.
func (a *APIServer) mountRoutes(router chi.Router) {
	router.Use(apimiddleware.Correlation())
	router.Use(apimiddleware.Logging(a.logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.client.Config().CORSOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Correlation-ID"},
	}))

	router.Get("/health", a.handleHealth)
	router.Get("/healthz", a.handleHealth)

	searchRouter := v1.NewSearchRouter(a.client)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))
		r.Mount("/search", searchRouter.Routes())
	})

	// MCP endpoint. No timeout middleware: MCP uses streaming responses,
	// which chi's Timeout middleware breaks by wrapping the ResponseWriter.
	mcpSrv := mcpinternal.NewServer(a.client.Search, a.client.Corpus(), a.version, a.logger)
	router.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv.MCPServer()))
}

// handleHealth reports process liveness and whether search runs with a
// configured embedding provider or in degraded mode.
func (a *APIServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := struct {
		Status   string `json:"status"`
		Version  string `json:"version"`
		Degraded bool   `json:"degraded"`
	}{
		Status:   "ok",
		Version:  a.version,
		Degraded: a.client.Search.Degraded(),
	}

	apimiddleware.WriteJSON(w, http.StatusOK, status)
}

// ListenAndServe starts the HTTP server on the given address.
func (a *APIServer) ListenAndServe(addr string) error {
	srv := NewServer(addr, a.logger)
	a.server = &srv

	if a.router != nil {
		srv.Router().Mount("/", a.router)
	} else {
		a.mountRoutes(srv.Router())
	}

	return srv.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the full route tree as an http.Handler for use with
// custom servers and tests.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.router = chi.NewRouter()
		a.router.Use(chimiddleware.RequestID)
		a.router.Use(chimiddleware.Recoverer)
		a.mountRoutes(a.router)
	}
	return a.router
}
