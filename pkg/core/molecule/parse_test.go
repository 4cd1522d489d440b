package molecule

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const waterXYZ = `3
water
O    0.000000    0.000000    0.000000
H    0.957000    0.000000    0.000000
H   -0.240000    0.927000    0.000000
`

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		text string
		want Format
	}{
		{"CCO", FormatSMILES},
		{"c1ccccc1", FormatSMILES},
		{waterXYZ, FormatXYZ},
		{"HETATM    1  O   HOH A   1       0.000   0.000   0.000  1.00  0.00           O", FormatPDB},
		{"ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N", FormatPDB},
	}
	for _, c := range cases {
		if got := DetectFormat(c.text); got != c.want {
			t.Errorf("DetectFormat(%.20q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestParseAutoDetect(t *testing.T) {
	mol, err := Parse([]byte(waterXYZ), FormatAuto)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mol.Source != FormatXYZ {
		t.Errorf("source = %q, want xyz", mol.Source)
	}
	if f := mol.Formula(); f != "H2O" {
		t.Errorf("formula = %q, want H2O", f)
	}
}

func TestParseGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(waterXYZ)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	mol, err := Parse(buf.Bytes(), FormatAuto)
	if err != nil {
		t.Fatalf("Parse gzip: %v", err)
	}
	if mol.NAtoms() != 3 {
		t.Errorf("atoms = %d, want 3", mol.NAtoms())
	}
}

func TestParseUnknownFormat(t *testing.T) {
	if _, err := Parse([]byte("CCO"), Format("mol2")); err == nil {
		t.Fatal("want error for unknown format")
	}
}

func TestParseXYZWater(t *testing.T) {
	mol, err := ParseXYZ(waterXYZ)
	if err != nil {
		t.Fatalf("ParseXYZ: %v", err)
	}
	if mol.NAtoms() != 3 {
		t.Fatalf("atoms = %d, want 3", mol.NAtoms())
	}
	if !mol.HasCoordinates() {
		t.Fatal("no coordinates")
	}
	// Bond perception should find two O-H bonds and no H-H bond.
	if len(mol.Bonds) != 2 {
		t.Fatalf("bonds = %d, want 2", len(mol.Bonds))
	}
	for _, b := range mol.Bonds {
		if mol.Atoms[b.A].Symbol != "O" && mol.Atoms[b.B].Symbol != "O" {
			t.Errorf("bond %d-%d skips oxygen", b.A, b.B)
		}
	}
}

func TestParseXYZCountMismatch(t *testing.T) {
	if _, err := ParseXYZ("5\nshort\nO 0 0 0\n"); err == nil {
		t.Fatal("want error for count mismatch")
	}
}

func TestPDBRoundTrip(t *testing.T) {
	orig, err := ParseXYZ(waterXYZ)
	if err != nil {
		t.Fatal(err)
	}
	text, err := WritePDB(orig)
	if err != nil {
		t.Fatalf("WritePDB: %v", err)
	}

	mol, err := ParsePDB(text)
	if err != nil {
		t.Fatalf("ParsePDB: %v", err)
	}
	if mol.NAtoms() != 3 {
		t.Fatalf("atoms = %d, want 3", mol.NAtoms())
	}
	if f := mol.Formula(); f != "H2O" {
		t.Errorf("formula = %q, want H2O", f)
	}
	if len(mol.Bonds) != 2 {
		t.Errorf("bonds = %d, want 2", len(mol.Bonds))
	}
}

func TestXYZRoundTrip(t *testing.T) {
	orig, err := ParseXYZ(waterXYZ)
	if err != nil {
		t.Fatal(err)
	}
	text, err := WriteXYZ(orig, "out")
	if err != nil {
		t.Fatalf("WriteXYZ: %v", err)
	}
	if !strings.HasPrefix(text, "3\nout\n") {
		t.Errorf("bad header: %.20q", text)
	}
	mol, err := ParseXYZ(text)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if mol.NAtoms() != 3 {
		t.Errorf("atoms = %d, want 3", mol.NAtoms())
	}
}

func TestPerceiveBondsTooClose(t *testing.T) {
	_, err := ParseXYZ("2\nbroken\nC 0 0 0\nC 0.1 0 0\n")
	if err == nil {
		t.Fatal("want error for overlapping atoms")
	}
	if !strings.Contains(err.Error(), "closer than physically possible") {
		t.Errorf("unexpected error: %v", err)
	}
}
