package molecule

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ParseXYZ reads the plain XYZ format: atom count, comment line, then
// one "Symbol x y z" line per atom, coordinates in Å.
func ParseXYZ(text string) (*Molecule, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 3 {
		return nil, &ParseError{Format: FormatXYZ, Detail: "fewer than three lines"}
	}

	want, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || want <= 0 {
		return nil, &ParseError{Format: FormatXYZ, Pos: 1, Detail: "first line must be a positive atom count"}
	}

	var atoms []*Atom
	var coords []float64
	for i := 2; i < len(lines) && len(atoms) < want; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return nil, &ParseError{Format: FormatXYZ, Pos: i + 1, Detail: "need symbol and three coordinates"}
		}
		sym := normalizeSymbol(fields[0])
		if _, ok := symbolMass[sym]; !ok {
			return nil, &ParseError{Format: FormatXYZ, Pos: i + 1, Detail: fmt.Sprintf("unknown element %q", fields[0])}
		}
		var xyz [3]float64
		for k := 0; k < 3; k++ {
			xyz[k], err = strconv.ParseFloat(fields[k+1], 64)
			if err != nil {
				return nil, &ParseError{Format: FormatXYZ, Pos: i + 1, Detail: fmt.Sprintf("bad coordinate %q", fields[k+1])}
			}
		}
		atoms = append(atoms, &Atom{Symbol: sym})
		coords = append(coords, xyz[0], xyz[1], xyz[2])
	}

	if len(atoms) != want {
		return nil, &ParseError{Format: FormatXYZ,
			Detail: fmt.Sprintf("header promises %d atoms, found %d", want, len(atoms))}
	}

	mol := newCoordMolecule(atoms, coords, FormatXYZ)
	if err := PerceiveBonds(mol); err != nil {
		return nil, &ParseError{Format: FormatXYZ, Detail: err.Error()}
	}
	return mol, nil
}

func normalizeSymbol(s string) string {
	if s == "" {
		return s
	}
	if len(s) == 1 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func newCoordMolecule(atoms []*Atom, coords []float64, source Format) *Molecule {
	return &Molecule{
		Atoms:  atoms,
		Coords: mat.NewDense(len(atoms), 3, coords),
		Source: source,
	}
}

// WriteXYZ renders a coordinate-bearing molecule in XYZ format.
func WriteXYZ(m *Molecule, comment string) (string, error) {
	if !m.HasCoordinates() {
		return "", fmt.Errorf("molecule carries no coordinates")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n%s\n", m.NAtoms(), comment)
	for i, a := range m.Atoms {
		fmt.Fprintf(&sb, "%-2s %12.6f %12.6f %12.6f\n",
			a.Symbol, m.Coords.At(i, 0), m.Coords.At(i, 1), m.Coords.At(i, 2))
	}
	return sb.String(), nil
}
