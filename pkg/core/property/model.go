package property

// CalcReq identifies one target molecule and the properties to compute.
// Exactly one of Structure or Compound must be set; Compound is resolved
// to SMILES through PubChem before parsing.
type CalcReq struct {
	Structure  string   `json:"structure"`
	Format     string   `json:"format"`
	Compound   string   `json:"compound"`
	Properties []string `json:"properties" binding:"required,min=1"`
}

// ResultError mirrors the HTTP error envelope so a refused property in a
// batch is structurally identical to a standalone service error.
type ResultError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Result is the outcome for one property. On error there is no numeric
// field at all: Value stays nil and Units/Method stay empty.
type Result struct {
	Property   string             `json:"property"`
	Value      *float64           `json:"value,omitempty"`
	Components map[string]float64 `json:"components,omitempty"`
	Units      string             `json:"units,omitempty"`
	Method     string             `json:"method,omitempty"`
	Error      *ResultError       `json:"error,omitempty"`
}

type CalcResp struct {
	Format  string    `json:"format"`
	NAtoms  int       `json:"n_atoms"`
	Results []*Result `json:"results"`
}

type CapabilityInfo struct {
	Name   string `json:"name"`
	Units  string `json:"units"`
	Method string `json:"method"`
	Needs  string `json:"needs"`
}

type PendingInfo struct {
	Name     string `json:"name"`
	Guidance string `json:"guidance"`
}

type CapabilitiesResp struct {
	Implemented []CapabilityInfo `json:"implemented"`
	Pending     []PendingInfo    `json:"pending"`
}

type ConvertReq struct {
	Structure string `json:"structure" binding:"required"`
	Format    string `json:"format"`
	To        string `json:"to" binding:"required,oneof=xyz pdb summary"`
}

type ConvertResp struct {
	To      string `json:"to"`
	Content string `json:"content"`
}
