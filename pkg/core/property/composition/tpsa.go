package composition

import (
	"context"

	"github.com/nqn-dd/NovoMD/pkg/core/molecule"
	"github.com/nqn-dd/NovoMD/pkg/core/property"
)

// tpsa sums the polar fragment contributions of Ertl, Rohde and Selzer,
// J. Med. Chem. 43 (2000) 3714, for N, O, S and P environments.
// Environments outside the published table contribute zero, matching
// the reference implementation's behavior.
func tpsa(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	total := 0.0
	for i, a := range m.Atoms {
		switch a.Symbol {
		case "N", "O", "S", "P":
			total += tpsaContribution(m, i)
		}
	}
	return &property.Value{Value: total}, nil
}

type atomEnv struct {
	arom    int // aromatic bonds
	single  int // non-aromatic single bonds
	double  int
	triple  int
	hyd     int // implicit + explicit hydrogens
	charge  int
	in3Ring bool
}

func classify(m *molecule.Molecule, i int) atomEnv {
	env := atomEnv{charge: m.Atoms[i].Charge}
	if m.Atoms[i].HKnown {
		env.hyd = m.Atoms[i].HCount
	}
	adj := m.Adjacency()
	var neighbors []int
	for _, bi := range adj[i] {
		b := m.Bonds[bi]
		other := b.Other(i)
		if m.Atoms[other].Symbol == "H" || m.Atoms[other].Symbol == "D" {
			env.hyd++
			continue
		}
		neighbors = append(neighbors, other)
		switch {
		case b.Aromatic:
			env.arom++
		case b.Order == 1:
			env.single++
		case b.Order == 2:
			env.double++
		case b.Order == 3:
			env.triple++
		}
	}
	env.in3Ring = inThreeRing(m, i, neighbors)
	return env
}

// inThreeRing: the atom closes a 3-membered ring iff two of its
// neighbors are bonded to each other.
func inThreeRing(m *molecule.Molecule, i int, neighbors []int) bool {
	adj := m.Adjacency()
	for x := 0; x < len(neighbors); x++ {
		for y := x + 1; y < len(neighbors); y++ {
			for _, bi := range adj[neighbors[x]] {
				if m.Bonds[bi].Other(neighbors[x]) == neighbors[y] {
					return true
				}
			}
		}
	}
	return false
}

func tpsaContribution(m *molecule.Molecule, i int) float64 {
	a := m.Atoms[i]
	e := classify(m, i)

	switch a.Symbol {
	case "N":
		if a.Aromatic {
			switch {
			case e.charge == 0 && e.hyd == 0 && e.arom == 2 && e.single == 0 && e.double == 0:
				return 12.89
			case e.charge == 0 && e.hyd == 0 && e.arom == 3:
				return 4.41
			case e.charge == 0 && e.hyd == 0 && e.arom == 2 && e.single == 1:
				return 4.93
			case e.charge == 0 && e.hyd == 0 && e.arom == 2 && e.double == 1:
				return 8.39
			case e.charge == 0 && e.hyd == 1 && e.arom == 2:
				return 15.79
			case e.charge == 1 && e.hyd == 0 && e.arom == 2 && e.single == 1:
				return 4.10
			case e.charge == 1 && e.hyd == 1 && e.arom == 2:
				return 14.14
			}
			return 0
		}
		switch {
		case e.charge == 0 && e.hyd == 0 && e.single == 3 && e.double == 0 && e.triple == 0:
			if e.in3Ring {
				return 3.01
			}
			return 3.24
		case e.charge == 0 && e.hyd == 0 && e.single == 1 && e.double == 1:
			return 12.36
		case e.charge == 0 && e.hyd == 0 && e.triple == 1 && e.single == 0:
			return 23.79
		case e.charge == 0 && e.hyd == 0 && e.single == 1 && e.double == 2:
			return 11.68
		case e.charge == 0 && e.hyd == 1 && e.single == 2:
			if e.in3Ring {
				return 21.94
			}
			return 12.03
		case e.charge == 0 && e.hyd == 1 && e.double == 1 && e.single == 0:
			return 23.85
		case e.charge == 0 && e.hyd == 2 && e.single == 1:
			return 26.02
		case e.charge == 1 && e.hyd == 0 && e.single == 4:
			return 0.00
		case e.charge == 1 && e.hyd == 0 && e.single == 2 && e.double == 1:
			return 3.01
		case e.charge == 1 && e.hyd == 1 && e.single == 3:
			return 4.44
		case e.charge == 1 && e.hyd == 2 && e.single == 2:
			return 16.61
		case e.charge == 1 && e.hyd == 3 && e.single == 1:
			return 27.64
		}
		return 0
	case "O":
		if a.Aromatic {
			return 13.14
		}
		switch {
		case e.charge == 0 && e.hyd == 0 && e.single == 2:
			if e.in3Ring {
				return 12.53
			}
			return 9.23
		case e.charge == 0 && e.hyd == 0 && e.double == 1:
			return 17.07
		case e.charge == 0 && e.hyd == 1 && e.single == 1:
			return 20.23
		case e.charge == -1 && e.hyd == 0 && e.single == 1:
			return 23.06
		}
		return 0
	case "S":
		if a.Aromatic {
			if e.double == 1 {
				return 21.70
			}
			return 28.24
		}
		switch {
		case e.charge == 0 && e.hyd == 0 && e.single == 2 && e.double == 0:
			return 25.30
		case e.charge == 0 && e.hyd == 0 && e.double == 1 && e.single == 0:
			return 32.09
		case e.charge == 0 && e.hyd == 1 && e.single == 1:
			return 38.80
		case e.charge == 0 && e.hyd == 0 && e.single == 2 && e.double == 1:
			return 19.21
		case e.charge == 0 && e.hyd == 0 && e.single == 2 && e.double == 2:
			return 8.38
		}
		return 0
	case "P":
		switch {
		case e.charge == 0 && e.hyd == 0 && e.single == 3 && e.double == 0:
			return 13.59
		case e.charge == 0 && e.hyd == 0 && e.single == 1 && e.double == 1:
			return 34.14
		case e.charge == 0 && e.hyd == 0 && e.single == 3 && e.double == 1:
			return 9.81
		case e.charge == 0 && e.hyd == 1 && e.single == 2 && e.double == 1:
			return 23.47
		}
		return 0
	}
	return 0
}
