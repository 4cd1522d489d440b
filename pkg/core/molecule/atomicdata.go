package molecule

// Standard atomic weights, IUPAC 2021 abridged values. Only elements
// that show up in typical small molecules and biomolecules are listed;
// an unknown symbol is a parse error, never a silent zero mass.
var symbolMass = map[string]float64{
	"H":  1.008,
	"D":  2.014,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Se": 78.971,
	"Br": 79.904,
	"I":  126.904,
}

// Covalent radii in Å from Cordero et al., 2008 (DOI:10.1039/B801115J).
// H is widened as in common bond-perception practice; hydrogen never
// carries more than one bond so the extra candidates are pruned anyway.
var symbolCovrad = map[string]float64{
	"H":  0.4,
	"B":  0.84,
	"C":  0.76,
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Na": 1.66,
	"Mg": 1.41,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"K":  2.03,
	"Ca": 1.76,
	"Cr": 1.39,
	"Mn": 1.61,
	"Fe": 1.52,
	"Co": 1.5,
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Se": 1.2,
	"Br": 1.2,
	"I":  1.39,
}

// Van der Waals radii in Å, Bondi 1964 (DOI:10.1021/j100785a001) with
// the Rowland-Taylor H value; metals from Batsanov 2001.
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"B":  1.92,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"Na": 2.27,
	"Mg": 1.73,
	"Si": 2.10,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"K":  2.75,
	"Ca": 2.31,
	"Fe": 2.05,
	"Cu": 2.00,
	"Zn": 2.10,
	"Se": 1.90,
	"Br": 1.85,
	"I":  1.98,
}

// Atomic van der Waals volume contributions in Å³ for the additive
// volume method of Zhao, Abraham and Zissimos, 2003
// (DOI:10.1021/jo034808o).
var symbolZhaoVolume = map[string]float64{
	"H":  7.24,
	"B":  40.48,
	"C":  20.58,
	"N":  15.60,
	"O":  14.71,
	"F":  13.31,
	"Si": 38.79,
	"P":  24.43,
	"S":  24.43,
	"Cl": 22.45,
	"Se": 28.73,
	"Br": 26.52,
	"I":  32.52,
}

// Default valences for the SMILES organic subset, lowest first. Implicit
// hydrogens fill the smallest valence that covers the explicit bonds.
var organicValence = map[string][]int{
	"B":  {3},
	"C":  {4},
	"N":  {3, 5},
	"O":  {2},
	"P":  {3, 5},
	"S":  {2, 4, 6},
	"F":  {1},
	"Cl": {1},
	"Br": {1},
	"I":  {1},
}

// MassOf returns the standard atomic weight for a symbol.
func MassOf(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

// VdwRadius returns the van der Waals radius for a symbol, falling back
// to the carbon radius for uncommon elements so surface sampling stays
// defined for every parsed structure.
func VdwRadius(symbol string) float64 {
	if r, ok := symbolVdwrad[symbol]; ok {
		return r
	}
	return symbolVdwrad["C"]
}

// CovalentRadius returns the covalent radius used by bond perception.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[symbol]
	return r, ok
}

// ZhaoVolume returns the additive atomic volume contribution.
func ZhaoVolume(symbol string) (float64, bool) {
	v, ok := symbolZhaoVolume[symbol]
	return v, ok
}
