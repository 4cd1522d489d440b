package moleculelib

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/nqn-dd/NovoMD/pkg/common"
	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	uuid "github.com/nqn-dd/NovoMD/pkg/common/uuid"
	coreLibrary "github.com/nqn-dd/NovoMD/pkg/core/library"
	libraryImpl "github.com/nqn-dd/NovoMD/pkg/core/library/library"
)

type Handle struct{ svc coreLibrary.Service }

func NewHandle() *Handle { return &Handle{svc: libraryImpl.New()} }

func (h *Handle) Insert(ctx *gin.Context) {
	in := &coreLibrary.InsertReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Insert(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Get(ctx *gin.Context) {
	id, err := uuid.FromString(ctx.Param("uuid"))
	if err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg("bad uuid"))
		return
	}

	resp, err := h.svc.Get(ctx, &coreLibrary.GetReq{UUID: id})
	common.Reply(ctx, err, resp)
}

func (h *Handle) Query(ctx *gin.Context) {
	in := &coreLibrary.QueryReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Query(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Update(ctx *gin.Context) {
	in := &coreLibrary.UpdateReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Update(ctx, in))
}

func (h *Handle) Delete(ctx *gin.Context) {
	in := &coreLibrary.DeleteReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Delete(ctx, in))
}

func (h *Handle) Enrich(ctx *gin.Context) {
	in := &coreLibrary.EnrichReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Enrich(ctx, in)
	common.Reply(ctx, err, resp)
}
