package molecule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePDB reads ATOM/HETATM records into a coordinate-bearing molecule.
// Only the first MODEL is kept. Bonds are perceived afterwards from
// covalent radii; CONECT records are intentionally ignored since most
// depositors omit them.
func ParsePDB(text string) (*Molecule, error) {
	var atoms []*Atom
	var coords []float64

	lineNo := 0
	seenEndModel := false
	for _, line := range strings.Split(text, "\n") {
		lineNo++
		switch {
		case strings.HasPrefix(line, "ENDMDL"):
			seenEndModel = true
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			if seenEndModel {
				continue
			}
			atom, xyz, err := readPDBLine(line)
			if err != nil {
				return nil, &ParseError{Format: FormatPDB, Pos: lineNo, Detail: err.Error()}
			}
			atoms = append(atoms, atom)
			coords = append(coords, xyz[0], xyz[1], xyz[2])
		}
	}

	if len(atoms) == 0 {
		return nil, &ParseError{Format: FormatPDB, Detail: "no ATOM or HETATM records"}
	}

	mol := newCoordMolecule(atoms, coords, FormatPDB)
	if err := PerceiveBonds(mol); err != nil {
		return nil, &ParseError{Format: FormatPDB, Detail: err.Error()}
	}
	return mol, nil
}

// readPDBLine parses one fixed-column ATOM/HETATM record. Columns per
// PDB format v3.3: serial 7-11, name 13-16, resName 18-20, chain 22,
// resSeq 23-26, x/y/z 31-54, element 77-78.
func readPDBLine(line string) (*Atom, [3]float64, error) {
	var xyz [3]float64
	if len(line) < 54 {
		return nil, xyz, fmt.Errorf("record too short (%d cols)", len(line))
	}

	atom := &Atom{
		Het:     strings.HasPrefix(line, "HETATM"),
		Name:    strings.TrimSpace(line[12:16]),
		Residue: strings.TrimSpace(line[17:20]),
		Chain:   line[21],
	}
	if resID, err := strconv.Atoi(strings.TrimSpace(line[22:26])); err == nil {
		atom.ResID = resID
	}

	var errs [3]error
	xyz[0], errs[0] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	xyz[1], errs[1] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	xyz[2], errs[2] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, err := range errs {
		if err != nil {
			return nil, xyz, fmt.Errorf("bad coordinate field: %v", err)
		}
	}

	if len(line) >= 78 {
		sym := strings.TrimSpace(line[76:78])
		if len(sym) == 2 {
			sym = strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:])
		}
		if _, ok := symbolMass[sym]; ok {
			atom.Symbol = sym
		}
	}
	if atom.Symbol == "" {
		sym, err := symbolFromPDBName(atom.Name)
		if err != nil {
			return nil, xyz, err
		}
		atom.Symbol = sym
	}
	return atom, xyz, nil
}

// symbolFromPDBName guesses the element from the atom name for records
// without an element column. Covers the common bio-elements; anything
// else must spell out its element field.
func symbolFromPDBName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty atom name")
	}
	if len(name) == 4 || name[0] == 'H' {
		return "H", nil
	}
	twoLetter := map[string]string{
		"CU": "Cu", "CO": "Co", "CL": "Cl", "CA": "Ca",
		"NA": "Na", "SE": "Se", "ZN": "Zn", "MG": "Mg",
		"FE": "Fe", "MN": "Mn", "BR": "Br",
	}
	if s, ok := twoLetter[name]; ok {
		return s, nil
	}
	switch name[0] {
	case 'C', 'N', 'O', 'P', 'S', 'F', 'I', 'K':
		return string(name[0]), nil
	}
	return "", fmt.Errorf("cannot guess element from atom name %q", name)
}

// WritePDB renders a coordinate-bearing molecule as minimal ATOM/HETATM
// records.
func WritePDB(m *Molecule) (string, error) {
	if !m.HasCoordinates() {
		return "", fmt.Errorf("molecule carries no coordinates")
	}
	var sb strings.Builder
	for i, a := range m.Atoms {
		record := "ATOM  "
		if a.Het {
			record = "HETATM"
		}
		name := a.Name
		if name == "" {
			name = a.Symbol
		}
		residue := a.Residue
		if residue == "" {
			residue = "UNL"
		}
		chain := a.Chain
		if chain == 0 {
			chain = 'A'
		}
		resID := a.ResID
		if resID == 0 {
			resID = 1
		}
		fmt.Fprintf(&sb, "%s%5d %-4s %-3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
			record, i+1, name, residue, chain, resID,
			m.Coords.At(i, 0), m.Coords.At(i, 1), m.Coords.At(i, 2),
			1.0, 0.0, strings.ToUpper(a.Symbol))
	}
	sb.WriteString("END\n")
	return sb.String(), nil
}
