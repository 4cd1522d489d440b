// Package molecule holds the structure model shared by every property
// calculation: atoms, bonds, optional 3D coordinates, and the parsers
// that produce them from SMILES, PDB and XYZ notations.
package molecule

import (
	"gonum.org/v1/gonum/mat"
)

type Format string

const (
	FormatAuto   Format = ""
	FormatSMILES Format = "smiles"
	FormatPDB    Format = "pdb"
	FormatXYZ    Format = "xyz"
)

type Atom struct {
	Symbol   string
	Aromatic bool
	Charge   int
	Isotope  int
	// HCount is the implicit+explicit hydrogen count attached to this
	// heavy atom. Only meaningful when HKnown (graph inputs); coordinate
	// files carry hydrogens as their own atoms, when they carry them at
	// all.
	HCount int
	HKnown bool

	// PDB provenance; zero-valued for other sources.
	Name    string
	Residue string
	ResID   int
	Chain   byte
	Het     bool
}

// Mass returns the standard atomic weight of the atom itself, without
// attached implicit hydrogens.
func (a *Atom) Mass() float64 {
	m, ok := symbolMass[a.Symbol]
	if !ok {
		return 0
	}
	return m
}

type Bond struct {
	A, B     int
	Order    int
	Aromatic bool
}

// Other returns the bond endpoint that is not i.
func (b *Bond) Other(i int) int {
	if b.A == i {
		return b.B
	}
	return b.A
}

// Molecule is an immutable parsed structure. Coords is an NAtoms×3
// matrix in Å and is nil for graph-only (SMILES) input; Bonds is empty
// for coordinate input until bond perception has run.
type Molecule struct {
	Atoms  []*Atom
	Bonds  []*Bond
	Coords *mat.Dense
	Source Format

	adj       [][]int
	ringBonds map[int]bool
}

func (m *Molecule) NAtoms() int {
	return len(m.Atoms)
}

func (m *Molecule) HasCoordinates() bool {
	return m.Coords != nil
}

func (m *Molecule) HasBonds() bool {
	return len(m.Bonds) > 0
}

// HeavyAtomCount counts non-hydrogen atoms.
func (m *Molecule) HeavyAtomCount() int {
	n := 0
	for _, a := range m.Atoms {
		if a.Symbol != "H" && a.Symbol != "D" {
			n++
		}
	}
	return n
}

// Adjacency returns, per atom, the indices of bonds touching it.
func (m *Molecule) Adjacency() [][]int {
	if m.adj != nil {
		return m.adj
	}
	adj := make([][]int, len(m.Atoms))
	for bi, b := range m.Bonds {
		adj[b.A] = append(adj[b.A], bi)
		adj[b.B] = append(adj[b.B], bi)
	}
	m.adj = adj
	return adj
}

// Degree is the number of explicit bonds on atom i.
func (m *Molecule) Degree(i int) int {
	return len(m.Adjacency()[i])
}

// Components counts connected components of the bond graph. Isolated
// atoms count as their own component.
func (m *Molecule) Components() int {
	n := len(m.Atoms)
	seen := make([]bool, n)
	adj := m.Adjacency()
	count := 0
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		count++
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			at := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, bi := range adj[at] {
				next := m.Bonds[bi].Other(at)
				if !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
	}
	return count
}

// RingCount is the cyclomatic number B - A + C (the Frèrejacque number),
// i.e. the size of the smallest set of smallest rings.
func (m *Molecule) RingCount() int {
	return len(m.Bonds) - len(m.Atoms) + m.Components()
}

// AromaticRingCount is the cyclomatic number of the aromatic-bond
// subgraph.
func (m *Molecule) AromaticRingCount() int {
	atoms := map[int]bool{}
	bonds := 0
	for _, b := range m.Bonds {
		if !b.Aromatic {
			continue
		}
		bonds++
		atoms[b.A] = true
		atoms[b.B] = true
	}
	if bonds == 0 {
		return 0
	}
	comps := aromaticComponents(m, atoms)
	return bonds - len(atoms) + comps
}

func aromaticComponents(m *Molecule, atoms map[int]bool) int {
	seen := map[int]bool{}
	adj := m.Adjacency()
	count := 0
	for start := range atoms {
		if seen[start] {
			continue
		}
		count++
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			at := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, bi := range adj[at] {
				if !m.Bonds[bi].Aromatic {
					continue
				}
				next := m.Bonds[bi].Other(at)
				if !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
	}
	return count
}

// RingBonds reports which bond indices sit on a cycle: a bond is a ring
// bond iff its endpoints stay connected after removing it.
func (m *Molecule) RingBonds() map[int]bool {
	if m.ringBonds != nil {
		return m.ringBonds
	}
	out := make(map[int]bool, len(m.Bonds))
	for bi := range m.Bonds {
		if m.connectedWithout(m.Bonds[bi].A, m.Bonds[bi].B, bi) {
			out[bi] = true
		}
	}
	m.ringBonds = out
	return out
}

func (m *Molecule) connectedWithout(from, to, skipBond int) bool {
	adj := m.Adjacency()
	seen := make([]bool, len(m.Atoms))
	stack := []int{from}
	seen[from] = true
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if at == to {
			return true
		}
		for _, bi := range adj[at] {
			if bi == skipBond {
				continue
			}
			next := m.Bonds[bi].Other(at)
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// TotalHydrogens counts explicit hydrogen atoms plus implicit hydrogens
// attached to heavy atoms.
func (m *Molecule) TotalHydrogens() int {
	n := 0
	for _, a := range m.Atoms {
		if a.Symbol == "H" || a.Symbol == "D" {
			n++
			continue
		}
		if a.HKnown {
			n += a.HCount
		}
	}
	return n
}
