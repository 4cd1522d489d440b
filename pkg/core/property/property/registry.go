package property

import (
	config "github.com/nqn-dd/NovoMD/internal/config"
	core "github.com/nqn-dd/NovoMD/pkg/core/property"
	composition "github.com/nqn-dd/NovoMD/pkg/core/property/composition"
	geometry "github.com/nqn-dd/NovoMD/pkg/core/property/geometry"
	surface "github.com/nqn-dd/NovoMD/pkg/core/property/surface"
)

// defaultRegistry wires every implemented calculator plus the
// recognized-but-unimplemented capabilities. The pending guidance is
// returned verbatim in refusals, so it must name the exact missing
// integration.
func defaultRegistry() *core.Registry {
	calcs := composition.All()
	calcs = append(calcs, geometry.All()...)
	calcs = append(calcs, surface.All(config.Global().Compute.SASAPoints)...)

	pending := []core.Pending{
		{
			Name:     "binding_affinity",
			Guidance: "Binding affinity requires MD simulation engine integration; integrate with an external simulation engine for production use.",
		},
		{
			Name:     "homo_lumo_gap",
			Guidance: "HOMO-LUMO gap requires an electronic structure backend (e.g. Psi4 or xtb); integrate a quantum chemistry engine for production use.",
		},
		{
			Name:     "dipole_moment",
			Guidance: "Dipole moment requires partial atomic charges from an electronic structure or charge equilibration backend; no charge model is integrated.",
		},
		{
			Name:     "solvation_free_energy",
			Guidance: "Solvation free energy requires an implicit solvent or free energy perturbation engine; integrate a simulation backend for production use.",
		},
		{
			Name:     "logp",
			Guidance: "logP prediction requires a fitted fragment contribution model (e.g. Crippen-Wildman parameters); no trained parameter set is integrated.",
		},
		{
			Name:     "pka",
			Guidance: "pKa prediction requires an empirical prediction model or a quantum thermodynamic cycle backend; no prediction model is integrated.",
		},
	}

	return core.NewRegistry(calcs, pending)
}
