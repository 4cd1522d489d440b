// Package property defines the calculation service contract: a closed
// capability registry mapping property names to real calculators, and
// the request/result model every entry point shares. A property request
// resolves to exactly one of a computed value, an explicit
// not-implemented refusal, or an input error — never a fabricated
// number.
package property

import (
	"context"
	"sort"

	"github.com/nqn-dd/NovoMD/pkg/core/molecule"
)

// Requirement states what a calculator demands from the parsed input.
type Requirement int

const (
	// NeedsNone: any parsed structure will do.
	NeedsNone Requirement = iota
	// NeedsGraph: explicit connectivity with hydrogen counts, i.e.
	// SMILES input.
	NeedsGraph
	// NeedsCoordinates: atomic 3D coordinates, i.e. PDB or XYZ input.
	NeedsCoordinates
)

func (r Requirement) String() string {
	switch r {
	case NeedsGraph:
		return "connectivity (SMILES)"
	case NeedsCoordinates:
		return "3D coordinates (PDB/XYZ)"
	default:
		return "any parsed structure"
	}
}

// Value is a computed outcome. Components carries named sub-values for
// vector results (e.g. per-axis extents); Value is always the scalar
// headline number.
type Value struct {
	Value      float64
	Components map[string]float64
}

// Calculator computes one property from a parsed structure. Method must
// name the published algorithm or well-known routine used; it is part of
// every successful result and is never blank.
type Calculator interface {
	Name() string
	Units() string
	Method() string
	Needs() Requirement
	Compute(ctx context.Context, mol *molecule.Molecule) (*Value, error)
}

// Pending is a recognized capability with no implementation. Guidance
// spells out the missing integration and is surfaced verbatim in the
// refusal.
type Pending struct {
	Name     string
	Guidance string
}

// Registry is the immutable capability map, built once at start-up.
type Registry struct {
	calcs   map[string]Calculator
	pending map[string]Pending
}

func NewRegistry(calcs []Calculator, pending []Pending) *Registry {
	r := &Registry{
		calcs:   make(map[string]Calculator, len(calcs)),
		pending: make(map[string]Pending, len(pending)),
	}
	for _, c := range calcs {
		r.calcs[c.Name()] = c
	}
	for _, p := range pending {
		r.pending[p.Name] = p
	}
	return r
}

// Lookup returns the calculator for an implemented property.
func (r *Registry) Lookup(name string) (Calculator, bool) {
	c, ok := r.calcs[name]
	return c, ok
}

// Guidance returns the refusal text for a recognized-but-unimplemented
// property.
func (r *Registry) Guidance(name string) (Pending, bool) {
	p, ok := r.pending[name]
	return p, ok
}

// Implemented lists implemented property names, sorted.
func (r *Registry) Implemented() []string {
	names := make([]string, 0, len(r.calcs))
	for n := range r.calcs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PendingNames lists recognized-but-unimplemented property names, sorted.
func (r *Registry) PendingNames() []string {
	names := make([]string, 0, len(r.pending))
	for n := range r.pending {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Service is the calculation entry point shared by HTTP, websocket and
// stored-molecule call sites.
type Service interface {
	Calculate(ctx context.Context, req *CalcReq) (*CalcResp, error)
	CalculateStream(ctx context.Context, req *CalcReq, emit func(*Result)) error
	Capabilities(ctx context.Context) *CapabilitiesResp
	Convert(ctx context.Context, req *ConvertReq) (*ConvertResp, error)
}
