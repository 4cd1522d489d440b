package code

import "fmt"

// ErrCode is the service-wide error carrier. Codes are stable across
// releases; clients switch on Code, humans read Msg.
type ErrCode struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	err  error
}

func New(code int, msg string) *ErrCode {
	return &ErrCode{Code: code, Msg: msg}
}

func (e *ErrCode) Error() string {
	if e.err != nil {
		return fmt.Sprintf("code: %d, msg: %s, err: %v", e.Code, e.Msg, e.err)
	}
	return fmt.Sprintf("code: %d, msg: %s", e.Code, e.Msg)
}

func (e *ErrCode) Unwrap() error {
	return e.err
}

// Is matches by Code so callers can errors.Is against the sentinel
// regardless of attached detail.
func (e *ErrCode) Is(target error) bool {
	t, ok := target.(*ErrCode)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithErr returns a copy carrying the underlying error. The sentinel
// itself is never mutated.
func (e *ErrCode) WithErr(err error) *ErrCode {
	return &ErrCode{Code: e.Code, Msg: e.Msg, err: err}
}

// WithMsg returns a copy with the message replaced.
func (e *ErrCode) WithMsg(msg string) *ErrCode {
	return &ErrCode{Code: e.Code, Msg: msg, err: e.err}
}

func (e *ErrCode) WithMsgf(format string, args ...any) *ErrCode {
	return &ErrCode{Code: e.Code, Msg: fmt.Sprintf(format, args...), err: e.err}
}
