package molecule

import (
	"math"
	"testing"
)

func parseOK(t *testing.T, smiles string) *Molecule {
	t.Helper()
	mol, err := ParseSMILES(smiles)
	if err != nil {
		t.Fatalf("ParseSMILES(%q): %v", smiles, err)
	}
	return mol
}

func TestParseSMILESEthanol(t *testing.T) {
	mol := parseOK(t, "CCO")
	if mol.NAtoms() != 3 {
		t.Fatalf("atoms = %d, want 3", mol.NAtoms())
	}
	if len(mol.Bonds) != 2 {
		t.Fatalf("bonds = %d, want 2", len(mol.Bonds))
	}
	wantH := []int{3, 2, 1}
	for i, a := range mol.Atoms {
		if !a.HKnown {
			t.Fatalf("atom %d has no hydrogen count", i)
		}
		if a.HCount != wantH[i] {
			t.Errorf("atom %d HCount = %d, want %d", i, a.HCount, wantH[i])
		}
	}
	if f := mol.Formula(); f != "C2H6O" {
		t.Errorf("formula = %q, want C2H6O", f)
	}
}

func TestParseSMILESBenzene(t *testing.T) {
	mol := parseOK(t, "c1ccccc1")
	if mol.NAtoms() != 6 || len(mol.Bonds) != 6 {
		t.Fatalf("got %d atoms, %d bonds, want 6 and 6", mol.NAtoms(), len(mol.Bonds))
	}
	for i, a := range mol.Atoms {
		if !a.Aromatic {
			t.Errorf("atom %d not aromatic", i)
		}
		if a.HCount != 1 {
			t.Errorf("atom %d HCount = %d, want 1", i, a.HCount)
		}
	}
	for i, b := range mol.Bonds {
		if !b.Aromatic {
			t.Errorf("bond %d not aromatic", i)
		}
	}
	if mol.RingCount() != 1 {
		t.Errorf("RingCount = %d, want 1", mol.RingCount())
	}
	if mol.AromaticRingCount() != 1 {
		t.Errorf("AromaticRingCount = %d, want 1", mol.AromaticRingCount())
	}
}

func TestParseSMILESBracketAtoms(t *testing.T) {
	mol := parseOK(t, "[NH4+]")
	a := mol.Atoms[0]
	if a.Symbol != "N" || a.Charge != 1 || a.HCount != 4 {
		t.Errorf("got %s charge=%d H=%d, want N +1 H4", a.Symbol, a.Charge, a.HCount)
	}

	mol = parseOK(t, "[13CH4]")
	if mol.Atoms[0].Isotope != 13 {
		t.Errorf("isotope = %d, want 13", mol.Atoms[0].Isotope)
	}

	mol = parseOK(t, "[Fe+2]")
	if mol.Atoms[0].Symbol != "Fe" || mol.Atoms[0].Charge != 2 {
		t.Errorf("got %s charge=%d, want Fe +2", mol.Atoms[0].Symbol, mol.Atoms[0].Charge)
	}
}

func TestParseSMILESAceticAcid(t *testing.T) {
	mol := parseOK(t, "CC(=O)O")
	if f := mol.Formula(); f != "C2H4O2" {
		t.Fatalf("formula = %q, want C2H4O2", f)
	}
	var doubleBonds int
	for _, b := range mol.Bonds {
		if b.Order == 2 {
			doubleBonds++
		}
	}
	if doubleBonds != 1 {
		t.Errorf("double bonds = %d, want 1", doubleBonds)
	}
}

func TestParseSMILESDisconnected(t *testing.T) {
	mol := parseOK(t, "[Na+].[Cl-]")
	if mol.NAtoms() != 2 || len(mol.Bonds) != 0 {
		t.Fatalf("got %d atoms, %d bonds, want 2 and 0", mol.NAtoms(), len(mol.Bonds))
	}
	if mol.Components() != 2 {
		t.Errorf("components = %d, want 2", mol.Components())
	}
	if f := mol.Formula(); f != "ClNa" {
		t.Errorf("formula = %q, want ClNa", f)
	}
}

func TestParseSMILESPercentRing(t *testing.T) {
	mol := parseOK(t, "C%10CCCCC%10")
	if mol.RingCount() != 1 {
		t.Errorf("RingCount = %d, want 1", mol.RingCount())
	}
}

func TestParseSMILESTwoLetterOrganic(t *testing.T) {
	mol := parseOK(t, "ClCBr")
	if mol.Atoms[0].Symbol != "Cl" || mol.Atoms[2].Symbol != "Br" {
		t.Errorf("symbols = %s,%s, want Cl,Br", mol.Atoms[0].Symbol, mol.Atoms[2].Symbol)
	}
}

func TestParseSMILESMass(t *testing.T) {
	mol := parseOK(t, "CCO")
	total := 0.0
	for _, a := range mol.Atoms {
		total += a.Mass() + float64(a.HCount)*1.008
	}
	if math.Abs(total-46.069) > 0.01 {
		t.Errorf("mass = %.3f, want 46.069", total)
	}
}

func TestParseSMILESErrors(t *testing.T) {
	bad := []string{
		"",
		"C(",
		"C)C",
		"C1CC",
		"*",
		"C==C",
		"[X]",
		"[",
		"[]",
		"1CC",
		"C%1C",
	}
	for _, s := range bad {
		if _, err := ParseSMILES(s); err == nil {
			t.Errorf("ParseSMILES(%q) succeeded, want error", s)
		}
	}
}
