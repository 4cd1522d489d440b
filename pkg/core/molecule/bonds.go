package molecule

import (
	"fmt"
	"math"
	"sort"
)

// Distance-based bond perception tolerances in Å, following Zhang et al.
// 2012 (DOI:10.1186/1758-2946-3-33).
const (
	tooClose = 0.63
	bondTol  = 0.45
)

// PerceiveBonds assigns single bonds between atoms whose distance falls
// within the sum of covalent radii plus tolerance. Hydrogen keeps only
// its shortest candidate bond. Orders and aromaticity are not assigned;
// coordinate formats carry neither.
func PerceiveBonds(m *Molecule) error {
	if !m.HasCoordinates() {
		return fmt.Errorf("bond perception needs coordinates")
	}
	n := m.NAtoms()

	type candidate struct {
		a, b int
		dist float64
	}
	var cands []candidate

	for i := 0; i < n; i++ {
		ri, ok := symbolCovrad[m.Atoms[i].Symbol]
		if !ok {
			continue
		}
		for j := i + 1; j < n; j++ {
			rj, ok := symbolCovrad[m.Atoms[j].Symbol]
			if !ok {
				continue
			}
			d := m.atomDistance(i, j)
			if d < tooClose {
				return fmt.Errorf("atoms %d and %d are %.2f Å apart, closer than physically possible", i+1, j+1, d)
			}
			if d <= ri+rj+bondTol {
				cands = append(cands, candidate{a: i, b: j, dist: d})
			}
		}
	}

	// Shortest candidates claim hydrogens first.
	sort.Slice(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	hBonded := make([]bool, n)
	for _, c := range cands {
		aH := m.Atoms[c.a].Symbol == "H"
		bH := m.Atoms[c.b].Symbol == "H"
		if (aH && hBonded[c.a]) || (bH && hBonded[c.b]) {
			continue
		}
		if aH {
			hBonded[c.a] = true
		}
		if bH {
			hBonded[c.b] = true
		}
		m.Bonds = append(m.Bonds, &Bond{A: c.a, B: c.b, Order: 1})
	}

	m.adj = nil
	m.ringBonds = nil
	return nil
}

func (m *Molecule) atomDistance(i, j int) float64 {
	dx := m.Coords.At(i, 0) - m.Coords.At(j, 0)
	dy := m.Coords.At(i, 1) - m.Coords.At(j, 1)
	dz := m.Coords.At(i, 2) - m.Coords.At(j, 2)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
