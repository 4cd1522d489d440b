package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nqn-dd/NovoMD/pkg/common/code"
)

// Resp is the uniform HTTP envelope. Data is omitted on errors so a
// refused calculation can never be mistaken for a computed one.
type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func ReplyOk(ctx *gin.Context, data ...any) {
	resp := &Resp{Code: code.Success.Code, Msg: code.Success.Msg}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	ctx.JSON(http.StatusOK, resp)
}

// ReplyErr renders any error as an envelope. Unknown error types are
// wrapped as UnDefineErr rather than leaked verbatim.
func ReplyErr(ctx *gin.Context, err error, msgs ...string) {
	e := AsErrCode(err)
	if len(msgs) > 0 {
		e = e.WithMsg(e.Msg + ": " + msgs[0])
	}
	ctx.JSON(e.HTTPStatus(), &Resp{Code: e.Code, Msg: e.Msg})
}

// Reply collapses the common (err, data) handler tail.
func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ReplyOk(ctx, data...)
}

// AsErrCode normalizes an error into an *ErrCode.
func AsErrCode(err error) *code.ErrCode {
	if err == nil {
		return code.Success
	}
	var e *code.ErrCode
	if errors.As(err, &e) {
		return e
	}
	return code.UnDefineErr.WithErr(err)
}
