package composition

import (
	"context"
	"math"
	"testing"

	"github.com/nqn-dd/NovoMD/pkg/core/molecule"
	"github.com/nqn-dd/NovoMD/pkg/core/property"
)

func calc(t *testing.T, name string) property.Calculator {
	t.Helper()
	for _, c := range All() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("no calculator %q", name)
	return nil
}

func compute(t *testing.T, name, smiles string) float64 {
	t.Helper()
	mol, err := molecule.ParseSMILES(smiles)
	if err != nil {
		t.Fatalf("ParseSMILES(%q): %v", smiles, err)
	}
	v, err := calc(t, name).Compute(context.Background(), mol)
	if err != nil {
		t.Fatalf("%s(%q): %v", name, smiles, err)
	}
	return v.Value
}

func near(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.4f, want %.4f", label, got, want)
	}
}

func TestMolecularWeight(t *testing.T) {
	near(t, compute(t, "molecular_weight", "CCO"), 46.069, 0.01, "ethanol MW")
	near(t, compute(t, "molecular_weight", "O"), 18.015, 0.01, "water MW")
	near(t, compute(t, "molecular_weight", "c1ccccc1"), 78.114, 0.01, "benzene MW")
}

func TestHeavyAtomCount(t *testing.T) {
	near(t, compute(t, "heavy_atom_count", "CCO"), 3, 0, "ethanol heavy atoms")
	near(t, compute(t, "heavy_atom_count", "[H][H]"), 0, 0, "H2 heavy atoms")
}

func TestRingCount(t *testing.T) {
	near(t, compute(t, "ring_count", "CCO"), 0, 0, "ethanol rings")
	near(t, compute(t, "ring_count", "c1ccccc1"), 1, 0, "benzene rings")
	near(t, compute(t, "ring_count", "c1ccc2ccccc2c1"), 2, 0, "naphthalene rings")
}

func TestNetCharge(t *testing.T) {
	near(t, compute(t, "net_charge", "CCO"), 0, 0, "ethanol charge")
	near(t, compute(t, "net_charge", "[NH4+]"), 1, 0, "ammonium charge")
	near(t, compute(t, "net_charge", "[Na+].[Cl-]"), 0, 0, "salt charge")
	near(t, compute(t, "net_charge", "CC(=O)[O-]"), -1, 0, "acetate charge")
}

func TestHBondDonorsAcceptors(t *testing.T) {
	near(t, compute(t, "hbond_donors", "CCO"), 1, 0, "ethanol donors")
	near(t, compute(t, "hbond_acceptors", "CCO"), 1, 0, "ethanol acceptors")
	near(t, compute(t, "hbond_donors", "c1ccccc1"), 0, 0, "benzene donors")
	near(t, compute(t, "hbond_donors", "Nc1ccccc1"), 1, 0, "aniline donors")
	near(t, compute(t, "hbond_acceptors", "CC(=O)O"), 2, 0, "acetic acid acceptors")
}

func TestRotatableBonds(t *testing.T) {
	near(t, compute(t, "rotatable_bonds", "CCCC"), 1, 0, "butane")
	near(t, compute(t, "rotatable_bonds", "CC"), 0, 0, "ethane")
	near(t, compute(t, "rotatable_bonds", "c1ccccc1"), 0, 0, "benzene")
	near(t, compute(t, "rotatable_bonds", "c1ccccc1-c1ccccc1"), 1, 0, "biphenyl")
	// the amide C-N bond does not count
	near(t, compute(t, "rotatable_bonds", "CC(=O)NC"), 0, 0, "N-methylacetamide")
	near(t, compute(t, "rotatable_bonds", "CCCCC"), 2, 0, "pentane")
}

func TestTPSA(t *testing.T) {
	near(t, compute(t, "tpsa", "c1ccccc1"), 0, 0.01, "benzene TPSA")
	near(t, compute(t, "tpsa", "Oc1ccccc1"), 20.23, 0.01, "phenol TPSA")
	near(t, compute(t, "tpsa", "c1ccncc1"), 12.89, 0.01, "pyridine TPSA")
	near(t, compute(t, "tpsa", "Nc1ccccc1"), 26.02, 0.01, "aniline TPSA")
	near(t, compute(t, "tpsa", "CC(=O)O"), 37.30, 0.01, "acetic acid TPSA")
	near(t, compute(t, "tpsa", "CCO"), 20.23, 0.01, "ethanol TPSA")
	// aspirin: ester (9.23 + 17.07) + acid (20.23 + 17.07)
	near(t, compute(t, "tpsa", "CC(=O)Oc1ccccc1C(=O)O"), 63.60, 0.01, "aspirin TPSA")
}

func TestCalculatorMetadata(t *testing.T) {
	for _, c := range All() {
		if c.Name() == "" || c.Method() == "" || c.Units() == "" {
			t.Errorf("calculator %q has blank metadata", c.Name())
		}
	}
}
