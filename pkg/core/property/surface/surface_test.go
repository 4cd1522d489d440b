package surface

import (
	"context"
	"math"
	"testing"

	"github.com/nqn-dd/NovoMD/pkg/core/molecule"
	"github.com/nqn-dd/NovoMD/pkg/core/property"
)

func calc(t *testing.T, name string) property.Calculator {
	t.Helper()
	for _, c := range All(960) {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("no calculator %q", name)
	return nil
}

func TestSASAIsolatedAtom(t *testing.T) {
	mol, err := molecule.ParseXYZ("1\ncarbon\nC 0 0 0\n")
	if err != nil {
		t.Fatal(err)
	}
	v, err := calc(t, "sasa").Compute(context.Background(), mol)
	if err != nil {
		t.Fatal(err)
	}
	// every sample point on an isolated sphere is exposed
	r := 1.70 + 1.4
	want := 4 * math.Pi * r * r
	if math.Abs(v.Value-want) > 1e-9 {
		t.Errorf("sasa = %v, want %v", v.Value, want)
	}
}

func TestSASABuriedOverlap(t *testing.T) {
	// two carbons nearly on top of each other would fail perception, so
	// place them bonded: each sphere hides part of the other.
	mol, err := molecule.ParseXYZ("2\nethyne carbons\nC 0 0 0\nC 1.2 0 0\n")
	if err != nil {
		t.Fatal(err)
	}
	v, err := calc(t, "sasa").Compute(context.Background(), mol)
	if err != nil {
		t.Fatal(err)
	}
	r := 1.70 + 1.4
	isolated := 2 * 4 * math.Pi * r * r
	if v.Value >= isolated {
		t.Errorf("sasa = %v, want less than two isolated spheres (%v)", v.Value, isolated)
	}
	if v.Value <= 0 {
		t.Errorf("sasa = %v, want positive", v.Value)
	}
}

func TestVdwVolumeBenzene(t *testing.T) {
	mol, err := molecule.ParseSMILES("c1ccccc1")
	if err != nil {
		t.Fatal(err)
	}
	v, err := calc(t, "vdw_volume").Compute(context.Background(), mol)
	if err != nil {
		t.Fatal(err)
	}
	// 6 C + 6 H contributions, 12 bonds, one aromatic ring:
	// 6*20.58 + 6*7.24 - 5.92*12 - 14.7 = 81.18
	if math.Abs(v.Value-81.18) > 0.01 {
		t.Errorf("benzene volume = %.2f, want 81.18", v.Value)
	}
}

func TestVdwVolumeUnknownElement(t *testing.T) {
	mol, err := molecule.ParseSMILES("[U]")
	if err != nil {
		t.Skip("uranium not parseable")
	}
	if _, err := calc(t, "vdw_volume").Compute(context.Background(), mol); err == nil {
		t.Error("want error for element without a volume contribution")
	}
}

func TestRequirements(t *testing.T) {
	if calc(t, "sasa").Needs() != property.NeedsCoordinates {
		t.Error("sasa should need coordinates")
	}
	if calc(t, "vdw_volume").Needs() != property.NeedsGraph {
		t.Error("vdw_volume should need a graph")
	}
}
