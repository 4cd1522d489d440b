package code

import "net/http"

// 1xxx generic, 2xxx molecular input, 3xxx calculation, 4xxx storage,
// 5xxx upstream services.
var (
	Success = New(0, "success")

	ParamErr     = New(1001, "invalid request parameter")
	UnLogin      = New(1002, "login required")
	InvalidToken = New(1003, "invalid or expired token")
	RateLimited  = New(1004, "request rate limit exceeded")
	UnDefineErr  = New(1999, "internal error")

	// InvalidInputErr covers every structural notation that cannot be
	// turned into a molecule: the caller must fix the input.
	InvalidInputErr = New(2001, "molecular notation cannot be parsed")
	// NeedCoordinatesErr is an input problem, not a capability problem:
	// the property is implemented but demands atomic 3D coordinates.
	NeedCoordinatesErr = New(2002, "property requires 3D coordinates; supply a PDB or XYZ structure")
	// NeedConnectivityErr mirrors NeedCoordinatesErr for graph-derived
	// properties requested on bare coordinate input.
	NeedConnectivityErr = New(2003, "property requires explicit connectivity; supply a SMILES structure")

	// UnsupportedCalcErr is the refusal half of the integrity gate: the
	// property is recognized but no implementation exists, and the message
	// must spell out the missing integration.
	UnsupportedCalcErr = New(3001, "calculation not implemented")
	// UnknownPropertyErr: the property name is not in the capability set
	// at all.
	UnknownPropertyErr = New(3002, "unknown property")
	// ComputeErr: valid input, implemented calculation, failed numerical
	// routine. Never replaced by a default value.
	ComputeErr = New(3003, "calculation failed")

	RecordNotFound   = New(4001, "record not found")
	CreateDataErr    = New(4002, "create record failed")
	UpdateDataErr    = New(4003, "update record failed")
	DeleteDataErr    = New(4004, "delete record failed")
	QueryDataErr     = New(4005, "query record failed")
	DuplicateDataErr = New(4006, "record already exists")

	RPCHttpErr     = New(5001, "upstream request failed")
	RPCHttpCodeErr = New(5002, "upstream returned unexpected status")
	CompoundNotFound = New(5003, "compound not found in PubChem")
)

var httpStatus = map[int]int{
	Success.Code: http.StatusOK,

	ParamErr.Code:     http.StatusBadRequest,
	UnLogin.Code:      http.StatusUnauthorized,
	InvalidToken.Code: http.StatusUnauthorized,
	RateLimited.Code:  http.StatusTooManyRequests,

	InvalidInputErr.Code:     http.StatusBadRequest,
	NeedCoordinatesErr.Code:  http.StatusBadRequest,
	NeedConnectivityErr.Code: http.StatusBadRequest,

	UnsupportedCalcErr.Code: http.StatusNotImplemented,
	UnknownPropertyErr.Code: http.StatusBadRequest,
	ComputeErr.Code:         http.StatusInternalServerError,

	RecordNotFound.Code:   http.StatusNotFound,
	DuplicateDataErr.Code: http.StatusConflict,

	RPCHttpErr.Code:       http.StatusBadGateway,
	RPCHttpCodeErr.Code:   http.StatusBadGateway,
	CompoundNotFound.Code: http.StatusNotFound,
}

// HTTPStatus maps an error code to its transport status. Unmapped codes
// degrade to 500.
func (e *ErrCode) HTTPStatus() int {
	if s, ok := httpStatus[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
