package geometry

import (
	"context"
	"math"
	"testing"

	"github.com/nqn-dd/NovoMD/pkg/core/molecule"
	"github.com/nqn-dd/NovoMD/pkg/core/property"
)

const dioxygenXYZ = `2
O2
O 0.0 0.0 0.0
O 1.2 0.0 0.0
`

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

func parse(t *testing.T, xyz string) *molecule.Molecule {
	t.Helper()
	mol, err := molecule.ParseXYZ(xyz)
	if err != nil {
		t.Fatal(err)
	}
	return mol
}

func TestCenterOfMass(t *testing.T) {
	mol := parse(t, dioxygenXYZ)
	v, err := calc(t, "center_of_mass").Compute(context.Background(), mol)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v.Components["x"]-0.6) > 1e-9 {
		t.Errorf("com x = %v, want 0.6", v.Components["x"])
	}
	if v.Components["y"] != 0 || v.Components["z"] != 0 {
		t.Errorf("com off axis: %v", v.Components)
	}
	if math.Abs(v.Value-0.6) > 1e-9 {
		t.Errorf("com norm = %v, want 0.6", v.Value)
	}
}

func TestRadiusOfGyration(t *testing.T) {
	mol := parse(t, dioxygenXYZ)
	v, err := calc(t, "radius_of_gyration").Compute(context.Background(), mol)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v.Value-0.6) > 1e-9 {
		t.Errorf("rg = %v, want 0.6", v.Value)
	}
}

func TestDiameter(t *testing.T) {
	mol := parse(t, dioxygenXYZ)
	v, err := calc(t, "molecular_diameter").Compute(context.Background(), mol)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v.Value-1.2) > 1e-9 {
		t.Errorf("diameter = %v, want 1.2", v.Value)
	}
}

func TestBoundingBox(t *testing.T) {
	mol := parse(t, dioxygenXYZ)
	v, err := calc(t, "bounding_box").Compute(context.Background(), mol)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v.Components["dx"]-1.2) > 1e-9 {
		t.Errorf("dx = %v, want 1.2", v.Components["dx"])
	}
	if v.Value != 0 {
		t.Errorf("volume = %v, want 0 for a linear molecule", v.Value)
	}
}

func TestPrincipalMoments(t *testing.T) {
	mol := parse(t, dioxygenXYZ)
	v, err := calc(t, "principal_moments").Compute(context.Background(), mol)
	if err != nil {
		t.Fatal(err)
	}
	// I about the bond axis is zero; the two perpendicular moments are
	// 2 * m_O * (0.6 Å)².
	want := 2 * 15.999 * 0.36
	if math.Abs(v.Components["i1"]) > 1e-9 {
		t.Errorf("i1 = %v, want 0", v.Components["i1"])
	}
	if math.Abs(v.Components["i2"]-want) > 1e-6 {
		t.Errorf("i2 = %v, want %v", v.Components["i2"], want)
	}
	if math.Abs(v.Value-want) > 1e-6 {
		t.Errorf("headline = %v, want %v", v.Value, want)
	}
}

func TestGeometryNeedsCoordinates(t *testing.T) {
	for _, c := range All() {
		if c.Needs() != property.NeedsCoordinates {
			t.Errorf("%s needs %v, want coordinates", c.Name(), c.Needs())
		}
	}
}
