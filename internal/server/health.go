package server

import (
	"context"
	"errors"

	"github.com/vanshika/bataanroute/backend/internal/service"
)

// ErrEmptyGraph indicates the route service has no locations loaded.
var ErrEmptyGraph = errors.New("route graph has no locations")

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// GraphHealthService reports degraded health when no locations are loaded.
type GraphHealthService struct {
	Routes *service.RouteService
}

// Probe implements the HealthService interface.
func (s GraphHealthService) Probe(ctx context.Context) error {
	if s.Routes == nil {
		return nil
	}
	if s.Routes.Summary(ctx).Locations == 0 {
		return ErrEmptyGraph
	}
	return nil
}
