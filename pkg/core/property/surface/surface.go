// Package surface implements the solvent-accessible surface area and
// van der Waals volume calculators.
package surface

import (
	"context"
	"fmt"
	"math"

	"github.com/nqn-dd/NovoMD/pkg/core/molecule"
	"github.com/nqn-dd/NovoMD/pkg/core/property"
)

// probeRadius is the water probe used for SASA, in Å.
const probeRadius = 1.4

type sasaCalc struct {
	points int
}

func (c *sasaCalc) Name() string  { return "sasa" }
func (c *sasaCalc) Units() string { return "Å²" }
func (c *sasaCalc) Method() string {
	return fmt.Sprintf("Shrake-Rupley numerical SASA, %d sphere points, 1.4 Å probe", c.points)
}
func (c *sasaCalc) Needs() property.Requirement { return property.NeedsCoordinates }

// Compute samples each atom's solvent-expanded sphere at points placed
// on a golden-section spiral and counts the samples not buried inside
// any neighboring sphere.
func (c *sasaCalc) Compute(ctx context.Context, m *molecule.Molecule) (*property.Value, error) {
	n := m.NAtoms()
	radii := make([]float64, n)
	for i, a := range m.Atoms {
		radii[i] = molecule.VdwRadius(a.Symbol) + probeRadius
	}
	sphere := spiralPoints(c.points)

	total := 0.0
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		xi := m.Coords.At(i, 0)
		yi := m.Coords.At(i, 1)
		zi := m.Coords.At(i, 2)
		ri := radii[i]

		// Only spheres that can overlap atom i matter.
		var near []int
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dx := m.Coords.At(j, 0) - xi
			dy := m.Coords.At(j, 1) - yi
			dz := m.Coords.At(j, 2) - zi
			reach := ri + radii[j]
			if dx*dx+dy*dy+dz*dz < reach*reach {
				near = append(near, j)
			}
		}

		exposed := 0
	sample:
		for _, p := range sphere {
			px := xi + ri*p[0]
			py := yi + ri*p[1]
			pz := zi + ri*p[2]
			for _, j := range near {
				dx := px - m.Coords.At(j, 0)
				dy := py - m.Coords.At(j, 1)
				dz := pz - m.Coords.At(j, 2)
				if dx*dx+dy*dy+dz*dz < radii[j]*radii[j] {
					continue sample
				}
			}
			exposed++
		}
		total += 4 * math.Pi * ri * ri * float64(exposed) / float64(len(sphere))
	}
	return &property.Value{Value: total}, nil
}

// spiralPoints distributes n points near-uniformly on the unit sphere.
func spiralPoints(n int) [][3]float64 {
	pts := make([][3]float64, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for k := 0; k < n; k++ {
		y := 1 - 2*float64(k)/float64(n-1)
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(k)
		pts[k] = [3]float64{r * math.Cos(theta), y, r * math.Sin(theta)}
	}
	return pts
}

type volumeCalc struct{}

func (volumeCalc) Name() string  { return "vdw_volume" }
func (volumeCalc) Units() string { return "Å³" }
func (volumeCalc) Method() string {
	return "Additive van der Waals volume (Zhao, Abraham and Zissimos 2003)"
}
func (volumeCalc) Needs() property.Requirement { return property.NeedsGraph }

// Compute applies the bond- and ring-corrected additivity scheme:
// V = Σ atom contributions − 5.92·NB − 14.7·RA − 3.8·RNR, where NB
// counts all bonds including those to hydrogen.
func (volumeCalc) Compute(_ context.Context, m *molecule.Molecule) (*property.Value, error) {
	sum := 0.0
	implicitH := 0
	for _, a := range m.Atoms {
		v, ok := molecule.ZhaoVolume(a.Symbol)
		if !ok {
			return nil, fmt.Errorf("no volume contribution for element %s", a.Symbol)
		}
		sum += v
		if a.HKnown && a.Symbol != "H" && a.Symbol != "D" {
			implicitH += a.HCount
		}
	}
	hVol, _ := molecule.ZhaoVolume("H")
	sum += float64(implicitH) * hVol

	bonds := len(m.Bonds) + implicitH
	aromatic := m.AromaticRingCount()
	aliphatic := m.RingCount() - aromatic

	v := sum - 5.92*float64(bonds) - 14.7*float64(aromatic) - 3.8*float64(aliphatic)
	return &property.Value{Value: v}, nil
}

// All returns the surface calculators. sasaPoints controls the sphere
// sampling density; values below 2 fall back to the default.
func All(sasaPoints int) []property.Calculator {
	if sasaPoints < 2 {
		sasaPoints = 960
	}
	return []property.Calculator{
		&sasaCalc{points: sasaPoints},
		volumeCalc{},
	}
}
