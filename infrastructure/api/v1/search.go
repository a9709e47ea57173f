// Package v1 implements the v1 HTTP API handlers.
package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agenticlabs/semsearch"
	"github.com/agenticlabs/semsearch/domain/search"
	"github.com/agenticlabs/semsearch/infrastructure/api/middleware"
	"github.com/agenticlabs/semsearch/infrastructure/api/v1/dto"
	"github.com/agenticlabs/semsearch/internal/log"
)

// SearchRouter handles search API endpoints.
type SearchRouter struct {
	client *semsearch.Client
	logger *log.Logger
}

// NewSearchRouter creates a new SearchRouter.
func NewSearchRouter(client *semsearch.Client) *SearchRouter {
	return &SearchRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for search endpoints.
func (r *SearchRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", r.Search)

	return router
}

// Search handles POST /api/v1/search.
func (r *SearchRouter) Search(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body dto.SearchRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(
			http.StatusBadRequest, "invalid request body", err,
		), r.logger)
		return
	}

	limit := 0
	if body.Limit != nil {
		limit = *body.Limit
	}
	threshold := -1.0
	if body.Threshold != nil {
		threshold = *body.Threshold
	}

	query := search.NewQuery(body.Query, limit, threshold)
	resp, err := r.client.Search.Search(ctx, query)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.FromResponse(resp))
}
