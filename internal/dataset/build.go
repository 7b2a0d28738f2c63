package dataset

import (
	"fmt"

	"github.com/vanshika/bataanroute/backend/internal/domain"
	"github.com/vanshika/bataanroute/backend/internal/graph"
)

// DeclarationError accumulates every declaration rejected while building a graph.
type DeclarationError struct {
	Errors []error
}

func (e *DeclarationError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple declaration errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *DeclarationError) Unwrap() []error {
	return e.Errors
}

func (e *DeclarationError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *DeclarationError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Build declares every location and then every route, in order. A graph with
// any rejected declaration is unusable, so the store is only returned when all
// declarations succeed.
func Build(locations []Location, routes []Route) (*graph.Store, error) {
	store := graph.NewStore()
	var declErr DeclarationError

	for i, loc := range locations {
		err := store.AddNode(domain.Node{
			Name:     loc.Name,
			Position: domain.Position{X: loc.X, Y: loc.Y},
			Color:    domain.Color(loc.Color),
		})
		if err != nil {
			declErr.append(fmt.Errorf("location #%d: %w", i+1, err))
		}
	}

	for i, r := range routes {
		if _, err := store.AddEdge(r.From, r.To, r.Distance); err != nil {
			declErr.append(fmt.Errorf("route #%d: %w", i+1, err))
		}
	}

	if err := declErr.asError(); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadBataan builds the Bataan network.
func LoadBataan() (*graph.Store, error) {
	return Build(Bataan())
}
