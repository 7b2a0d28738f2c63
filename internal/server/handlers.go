package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vanshika/bataanroute/backend/internal/domain"
	"github.com/vanshika/bataanroute/backend/internal/graph"
	"github.com/vanshika/bataanroute/backend/internal/service"
)

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger  *slog.Logger
	service *service.RouteService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc *service.RouteService) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
	}
}

func (h *APIHandlers) handleLocations(w http.ResponseWriter, r *http.Request) {
	nodes := h.service.Locations(r.Context())
	resp := listLocationsResponse{Items: make([]locationResponse, 0, len(nodes))}
	for _, n := range nodes {
		resp.Items = append(resp.Items, toLocationResponse(n))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleRoutes(w http.ResponseWriter, r *http.Request) {
	edges := h.service.Routes(r.Context())
	resp := listConnectionsResponse{Items: make([]connectionResponse, 0, len(edges))}
	for _, e := range edges {
		resp.Items = append(resp.Items, toConnectionResponse(e))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleFindRoute(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	from, to := vars["from"], vars["to"]
	if from == "" && to == "" {
		query := r.URL.Query()
		from, to = query.Get("from"), query.Get("to")
	}

	result, err := h.service.FindRoute(r.Context(), from, to)
	switch {
	case errors.Is(err, service.ErrMissingLocation):
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	case errors.Is(err, graph.ErrUnknownNode):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		h.logger.Error("failed to find route", "error", err, "from", from, "to", to,
			"request_id", requestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to find route")
		return
	}

	resp := routeResponse{
		From:     result.Start,
		To:       result.End,
		Found:    result.Found(),
		Distance: result.Path.Distance,
		Nodes:    make([]locationResponse, 0, len(result.Path.Nodes)),
		Edges:    make([]connectionResponse, 0, len(result.Path.Edges)),
		Display:  result.Display(),
		Message:  result.Message(),
	}
	for _, n := range result.Path.Nodes {
		resp.Nodes = append(resp.Nodes, toLocationResponse(n))
	}
	for _, e := range result.Path.Edges {
		resp.Edges = append(resp.Edges, toConnectionResponse(e))
	}

	h.logger.Debug("route computed", "from", result.Start, "to", result.End,
		"found", resp.Found, "distance", resp.Distance)
	respondJSON(w, http.StatusOK, resp)
}

// --- Response DTOs ---

type locationResponse struct {
	Name  string `json:"name"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

type connectionResponse struct {
	ID       int    `json:"id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
}

type listLocationsResponse struct {
	Items []locationResponse `json:"items"`
}

type listConnectionsResponse struct {
	Items []connectionResponse `json:"items"`
}

type routeResponse struct {
	From     string               `json:"from"`
	To       string               `json:"to"`
	Found    bool                 `json:"found"`
	Distance int                  `json:"distance"`
	Nodes    []locationResponse   `json:"nodes"`
	Edges    []connectionResponse `json:"edges"`
	Display  string               `json:"display,omitempty"`
	Message  string               `json:"message"`
}

// --- Helpers ---

func toLocationResponse(n domain.Node) locationResponse {
	return locationResponse{
		Name:  n.Name,
		X:     n.Position.X,
		Y:     n.Position.Y,
		Color: string(n.Color),
	}
}

func toConnectionResponse(e domain.Edge) connectionResponse {
	return connectionResponse{
		ID:       e.ID,
		From:     e.From,
		To:       e.To,
		Distance: e.Distance,
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
