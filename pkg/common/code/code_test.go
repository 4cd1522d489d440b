package code

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorsIsMatchesByCode(t *testing.T) {
	err := InvalidInputErr.WithMsg("ring bond 1 left open")
	if !errors.Is(err, InvalidInputErr) {
		t.Error("detailed copy should match its sentinel")
	}
	if errors.Is(err, ComputeErr) {
		t.Error("must not match a different sentinel")
	}
}

func TestWithErrPreservesChain(t *testing.T) {
	cause := fmt.Errorf("socket closed")
	err := RPCHttpErr.WithErr(cause)
	if !errors.Is(err, RPCHttpErr) {
		t.Error("wrapped error lost its code")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
	// the sentinel itself must stay clean
	if RPCHttpErr.Unwrap() != nil {
		t.Error("sentinel mutated by WithErr")
	}
}

func TestWithMsgDoesNotMutateSentinel(t *testing.T) {
	before := ParamErr.Msg
	_ = ParamErr.WithMsg("changed")
	if ParamErr.Msg != before {
		t.Error("sentinel message mutated")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *ErrCode
		want int
	}{
		{InvalidInputErr, http.StatusBadRequest},
		{NeedCoordinatesErr, http.StatusBadRequest},
		{UnsupportedCalcErr, http.StatusNotImplemented},
		{UnknownPropertyErr, http.StatusBadRequest},
		{ComputeErr, http.StatusInternalServerError},
		{RecordNotFound, http.StatusNotFound},
		{RateLimited, http.StatusTooManyRequests},
		{CompoundNotFound, http.StatusNotFound},
		{New(9999, "unmapped"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := c.err.HTTPStatus(); got != c.want {
			t.Errorf("code %d status = %d, want %d", c.err.Code, got, c.want)
		}
	}
}
