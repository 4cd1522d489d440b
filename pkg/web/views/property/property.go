package property

import (
	// 外部依赖
	"context"
	"encoding/json"
	"time"

	gin "github.com/gin-gonic/gin"
	melody "github.com/olahol/melody"

	// 内部引用
	common "github.com/nqn-dd/NovoMD/pkg/common"
	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	coreProperty "github.com/nqn-dd/NovoMD/pkg/core/property"
	propertyImpl "github.com/nqn-dd/NovoMD/pkg/core/property/property"
	logger "github.com/nqn-dd/NovoMD/pkg/middleware/logger"
	utils "github.com/nqn-dd/NovoMD/pkg/utils"
)

type Handle struct {
	svc coreProperty.Service
	ws  *melody.Melody
}

func NewHandle(ctx context.Context) *Handle {
	ws := melody.New()
	ws.Config.MaxMessageSize = 1 << 20
	ws.Config.PingPeriod = 10 * time.Second

	h := &Handle{svc: propertyImpl.New(), ws: ws}
	h.initWebSocket(ctx)
	return h
}

// Calculate runs one batch request and replies with per-property
// results.
func (h *Handle) Calculate(ctx *gin.Context) {
	in := &coreProperty.CalcReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Calculate(ctx, in)
	common.Reply(ctx, err, resp)
}

// Capabilities lists every implemented and pending property.
func (h *Handle) Capabilities(ctx *gin.Context) {
	common.ReplyOk(ctx, h.svc.Capabilities(ctx))
}

// Convert rewrites a structure into another notation or a text summary.
func (h *Handle) Convert(ctx *gin.Context) {
	in := &coreProperty.ConvertReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Convert(ctx, in)
	common.Reply(ctx, err, resp)
}

// streamMsg is one websocket frame: either a per-property result or a
// request-level error.
type streamMsg struct {
	Result *coreProperty.Result     `json:"result,omitempty"`
	Error  *coreProperty.ResultError `json:"error,omitempty"`
	Done   bool                      `json:"done,omitempty"`
}

// Connect upgrades to a websocket session. Each text frame holds one
// CalcReq; results stream back one frame per property.
func (h *Handle) Connect(ctx *gin.Context) {
	if err := h.ws.HandleRequestWithKeys(ctx.Writer, ctx.Request, map[string]any{
		"ctx": ctx,
	}); err != nil {
		logger.Errorf(ctx, "calculate websocket upgrade fail: %+v", err)
	}
}

func (h *Handle) initWebSocket(ctx context.Context) {
	h.ws.HandleConnect(func(s *melody.Session) {
		sessionCtx := s.MustGet("ctx").(*gin.Context)
		logger.Infof(sessionCtx, "calculate stream connected: %s", s.Request.RemoteAddr)
	})

	h.ws.HandleMessage(func(s *melody.Session, msg []byte) {
		sessionCtx := s.MustGet("ctx").(*gin.Context)
		utils.SafelyGo(func() {
			h.handleStreamRequest(sessionCtx, s, msg)
		}, func(err error) {
			logger.Errorf(sessionCtx, "calculate stream handler panic: %+v", err)
		})
	})

	h.ws.HandleError(func(s *melody.Session, err error) {
		logger.Warnf(ctx, "calculate stream session error: %+v", err)
	})
}

func (h *Handle) handleStreamRequest(ctx *gin.Context, s *melody.Session, msg []byte) {
	in := &coreProperty.CalcReq{}
	if err := json.Unmarshal(msg, in); err != nil {
		writeStream(ctx, s, &streamMsg{Error: &coreProperty.ResultError{
			Code: code.ParamErr.Code, Msg: err.Error(),
		}})
		return
	}
	if len(in.Properties) == 0 {
		writeStream(ctx, s, &streamMsg{Error: &coreProperty.ResultError{
			Code: code.ParamErr.Code, Msg: "properties is required",
		}})
		return
	}

	err := h.svc.CalculateStream(ctx, in, func(r *coreProperty.Result) {
		writeStream(ctx, s, &streamMsg{Result: r})
	})
	if err != nil {
		e := common.AsErrCode(err)
		writeStream(ctx, s, &streamMsg{Error: &coreProperty.ResultError{Code: e.Code, Msg: e.Msg}})
		return
	}
	writeStream(ctx, s, &streamMsg{Done: true})
}

func writeStream(ctx *gin.Context, s *melody.Session, msg *streamMsg) {
	raw, err := json.Marshal(msg)
	if err != nil {
		logger.Errorf(ctx, "calculate stream marshal fail: %+v", err)
		return
	}
	if err := s.Write(raw); err != nil {
		logger.Warnf(ctx, "calculate stream write fail: %+v", err)
	}
}

// Close shuts the websocket hub down.
func (h *Handle) Close(ctx context.Context) {
	if err := h.ws.Close(); err != nil {
		logger.Warnf(ctx, "calculate stream close fail: %+v", err)
	}
}
