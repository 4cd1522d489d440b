package login

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	config "github.com/nqn-dd/NovoMD/internal/config"
	common "github.com/nqn-dd/NovoMD/pkg/common"
	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	auth "github.com/nqn-dd/NovoMD/pkg/middleware/auth"
)

type tokenReq struct {
	ClientID     string `json:"client_id" binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// Token exchanges a service-account credential pair for a bearer token.
func Token(ctx *gin.Context) {
	in := &tokenReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	conf := config.Global().Auth
	if in.ClientID != conf.ClientID || in.ClientSecret != conf.ClientSecret || conf.ClientSecret == "" {
		common.ReplyErr(ctx, code.InvalidToken.WithMsg("bad client credentials"))
		return
	}

	token, err := auth.Sign(in.ClientID)
	if err != nil {
		common.ReplyErr(ctx, code.UnDefineErr.WithErr(err))
		return
	}
	common.ReplyOk(ctx, &tokenResp{Token: token})
}
