package repo

import "context"

// CompoundInfo holds the basic information for a chemical compound.
type CompoundInfo struct {
	Name             string `json:"name"`
	MolecularFormula string `json:"molecular_formula"`
	SMILES           string `json:"smiles"`
}

// PubChemRepo resolves compound identifiers (names or CAS numbers) to
// structural notation through the PubChem PUG REST API.
type PubChemRepo interface {
	GetCompoundByName(ctx context.Context, name string) (*CompoundInfo, error)
}
