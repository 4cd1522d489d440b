// Package geometry implements the coordinate-dependent shape
// properties. All of them require a parsed structure with 3D
// coordinates; graph-only input is rejected upstream by the
// requirement check.
package geometry

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/nqn-dd/NovoMD/pkg/core/molecule"
	"github.com/nqn-dd/NovoMD/pkg/core/property"
)

type calculator struct {
	name   string
	units  string
	method string
	fn     func(context.Context, *molecule.Molecule) (*property.Value, error)
}

func (c *calculator) Name() string                { return c.name }
func (c *calculator) Units() string               { return c.units }
func (c *calculator) Method() string              { return c.method }
func (c *calculator) Needs() property.Requirement { return property.NeedsCoordinates }
func (c *calculator) Compute(ctx context.Context, m *molecule.Molecule) (*property.Value, error) {
	return c.fn(ctx, m)
}

func All() []property.Calculator {
	return []property.Calculator{
		&calculator{
			name:   "center_of_mass",
			units:  "Å",
			method: "Mass-weighted mean of atomic coordinates",
			fn:     centerOfMass,
		},
		&calculator{
			name:   "radius_of_gyration",
			units:  "Å",
			method: "Mass-weighted RMS distance from the center of mass",
			fn:     radiusOfGyration,
		},
		&calculator{
			name:   "molecular_diameter",
			units:  "Å",
			method: "Maximum interatomic distance over all atom pairs",
			fn:     diameter,
		},
		&calculator{
			name:   "bounding_box",
			units:  "Å³",
			method: "Axis-aligned bounding box volume of atomic centers",
			fn:     boundingBox,
		},
		&calculator{
			name:   "principal_moments",
			units:  "amu·Å²",
			method: "Eigenvalues of the inertia tensor about the center of mass",
			fn:     principalMoments,
		},
	}
}

func com(m *molecule.Molecule) (x, y, z float64, err error) {
	total := 0.0
	for i, a := range m.Atoms {
		w := a.Mass()
		total += w
		x += w * m.Coords.At(i, 0)
		y += w * m.Coords.At(i, 1)
		z += w * m.Coords.At(i, 2)
	}
	if total == 0 {
		return 0, 0, 0, fmt.Errorf("zero total mass")
	}
	return x / total, y / total, z / total, nil
}

func centerOfMass(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	x, y, z, err := com(m)
	if err != nil {
		return nil, err
	}
	return &property.Value{
		Value:      math.Sqrt(x*x + y*y + z*z),
		Components: map[string]float64{"x": x, "y": y, "z": z},
	}, nil
}

func radiusOfGyration(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	cx, cy, cz, err := com(m)
	if err != nil {
		return nil, err
	}
	sum, total := 0.0, 0.0
	for i, a := range m.Atoms {
		w := a.Mass()
		dx := m.Coords.At(i, 0) - cx
		dy := m.Coords.At(i, 1) - cy
		dz := m.Coords.At(i, 2) - cz
		sum += w * (dx*dx + dy*dy + dz*dz)
		total += w
	}
	return &property.Value{Value: math.Sqrt(sum / total)}, nil
}

func diameter(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	max := 0.0
	n := m.NAtoms()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := m.Coords.At(i, 0) - m.Coords.At(j, 0)
			dy := m.Coords.At(i, 1) - m.Coords.At(j, 1)
			dz := m.Coords.At(i, 2) - m.Coords.At(j, 2)
			if d := dx*dx + dy*dy + dz*dz; d > max {
				max = d
			}
		}
	}
	return &property.Value{Value: math.Sqrt(max)}, nil
}

func boundingBox(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	lo := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i < m.NAtoms(); i++ {
		for k := 0; k < 3; k++ {
			v := m.Coords.At(i, k)
			if v < lo[k] {
				lo[k] = v
			}
			if v > hi[k] {
				hi[k] = v
			}
		}
	}
	dx, dy, dz := hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2]
	return &property.Value{
		Value:      dx * dy * dz,
		Components: map[string]float64{"dx": dx, "dy": dy, "dz": dz},
	}, nil
}

func principalMoments(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	cx, cy, cz, err := com(m)
	if err != nil {
		return nil, err
	}
	var t [3][3]float64
	for i, a := range m.Atoms {
		w := a.Mass()
		x := m.Coords.At(i, 0) - cx
		y := m.Coords.At(i, 1) - cy
		z := m.Coords.At(i, 2) - cz
		t[0][0] += w * (y*y + z*z)
		t[1][1] += w * (x*x + z*z)
		t[2][2] += w * (x*x + y*y)
		t[0][1] -= w * x * y
		t[0][2] -= w * x * z
		t[1][2] -= w * y * z
	}
	t[1][0], t[2][0], t[2][1] = t[0][1], t[0][2], t[1][2]

	sym := mat.NewSymDense(3, []float64{
		t[0][0], t[0][1], t[0][2],
		t[1][0], t[1][1], t[1][2],
		t[2][0], t[2][1], t[2][2],
	})
	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		return nil, fmt.Errorf("inertia tensor eigendecomposition failed")
	}
	vals := eig.Values(nil) // ascending
	return &property.Value{
		Value: vals[2],
		Components: map[string]float64{
			"i1": vals[0], "i2": vals[1], "i3": vals[2],
		},
	}, nil
}
