// Package composition computes properties derived from atomic makeup
// and connectivity: weight, counts, polar surface area. All methods are
// published fragment or counting schemes; nothing here touches 3D
// coordinates.
package composition

import (
	"context"
	"fmt"

	"github.com/nqn-dd/NovoMD/pkg/core/molecule"
	"github.com/nqn-dd/NovoMD/pkg/core/property"
)

type calculator struct {
	name   string
	units  string
	method string
	needs  property.Requirement
	fn     func(ctx context.Context, m *molecule.Molecule) (*property.Value, error)
}

func (c *calculator) Name() string                 { return c.name }
func (c *calculator) Units() string                { return c.units }
func (c *calculator) Method() string               { return c.method }
func (c *calculator) Needs() property.Requirement  { return c.needs }
func (c *calculator) Compute(ctx context.Context, m *molecule.Molecule) (*property.Value, error) {
	return c.fn(ctx, m)
}

// All returns the composition calculators.
func All() []property.Calculator {
	return []property.Calculator{
		&calculator{
			name:   "molecular_weight",
			units:  "g/mol",
			method: "Sum of IUPAC 2021 standard atomic weights",
			needs:  property.NeedsNone,
			fn:     molecularWeight,
		},
		&calculator{
			name:   "heavy_atom_count",
			units:  "atoms",
			method: "Non-hydrogen atom count",
			needs:  property.NeedsNone,
			fn: func(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
				return &property.Value{Value: float64(m.HeavyAtomCount())}, nil
			},
		},
		&calculator{
			name:   "ring_count",
			units:  "rings",
			method: "Cyclomatic ring count (Frèrejacque 1939)",
			needs:  property.NeedsNone,
			fn: func(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
				return &property.Value{Value: float64(m.RingCount())}, nil
			},
		},
		&calculator{
			name:   "net_charge",
			units:  "e",
			method: "Sum of formal charges",
			needs:  property.NeedsGraph,
			fn: func(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
				total := 0
				for _, a := range m.Atoms {
					total += a.Charge
				}
				return &property.Value{Value: float64(total)}, nil
			},
		},
		&calculator{
			name:   "hbond_donors",
			units:  "count",
			method: "Lipinski donor count: N/O bearing at least one H (Lipinski et al. 1997)",
			needs:  property.NeedsGraph,
			fn:     hbondDonors,
		},
		&calculator{
			name:   "hbond_acceptors",
			units:  "count",
			method: "Lipinski acceptor count: all N and O atoms (Lipinski et al. 1997)",
			needs:  property.NeedsNone,
			fn: func(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
				n := 0
				for _, a := range m.Atoms {
					if a.Symbol == "N" || a.Symbol == "O" {
						n++
					}
				}
				return &property.Value{Value: float64(n)}, nil
			},
		},
		&calculator{
			name:   "rotatable_bonds",
			units:  "bonds",
			method: "Acyclic single bonds between non-terminal heavy atoms, amides excluded (Daylight definition)",
			needs:  property.NeedsGraph,
			fn:     rotatableBonds,
		},
		&calculator{
			name:   "tpsa",
			units:  "Å²",
			method: "Topological polar surface area, N/O/S/P fragment contributions (Ertl et al. 2000)",
			needs:  property.NeedsGraph,
			fn:     tpsa,
		},
	}
}

func molecularWeight(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	total := 0.0
	for _, a := range m.Atoms {
		mass := a.Mass()
		if mass == 0 {
			return nil, fmt.Errorf("no standard atomic weight for element %q", a.Symbol)
		}
		total += mass
		if a.HKnown && a.Symbol != "H" && a.Symbol != "D" {
			hMass, _ := molecule.MassOf("H")
			total += float64(a.HCount) * hMass
		}
	}
	return &property.Value{Value: total}, nil
}

func hbondDonors(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	adj := m.Adjacency()
	n := 0
	for i, a := range m.Atoms {
		if a.Symbol != "N" && a.Symbol != "O" {
			continue
		}
		h := a.HCount
		for _, bi := range adj[i] {
			other := m.Atoms[m.Bonds[bi].Other(i)]
			if other.Symbol == "H" || other.Symbol == "D" {
				h++
			}
		}
		if h > 0 {
			n++
		}
	}
	return &property.Value{Value: float64(n)}, nil
}

func rotatableBonds(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	adj := m.Adjacency()
	ringBonds := m.RingBonds()

	heavyDegree := func(i int) int {
		d := 0
		for _, bi := range adj[i] {
			if sym := m.Atoms[m.Bonds[bi].Other(i)].Symbol; sym != "H" && sym != "D" {
				d++
			}
		}
		return d
	}

	n := 0
	for bi, b := range m.Bonds {
		if b.Order != 1 || b.Aromatic || ringBonds[bi] {
			continue
		}
		if m.Atoms[b.A].Symbol == "H" || m.Atoms[b.B].Symbol == "H" {
			continue
		}
		if heavyDegree(b.A) < 2 || heavyDegree(b.B) < 2 {
			continue
		}
		if isAmideBond(m, b) {
			continue
		}
		n++
	}
	return &property.Value{Value: float64(n)}, nil
}

// isAmideBond reports whether b is a C–N bond where the carbon carries a
// double-bonded O.
func isAmideBond(m *molecule.Molecule, b *molecule.Bond) bool {
	c := -1
	if m.Atoms[b.A].Symbol == "C" && m.Atoms[b.B].Symbol == "N" {
		c = b.A
	} else if m.Atoms[b.A].Symbol == "N" && m.Atoms[b.B].Symbol == "C" {
		c = b.B
	}
	if c < 0 {
		return false
	}
	for _, bi := range m.Adjacency()[c] {
		nb := m.Bonds[bi]
		if nb.Order == 2 && m.Atoms[nb.Other(c)].Symbol == "O" {
			return true
		}
	}
	return false
}
