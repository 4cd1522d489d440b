package property

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	websocket "github.com/gorilla/websocket"

	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	coreProperty "github.com/nqn-dd/NovoMD/pkg/core/property"
)

func dialStream(t *testing.T) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	h := NewHandle(context.Background())
	t.Cleanup(func() { h.Close(context.Background()) })
	g.GET("/ws/calculate", h.Connect)

	srv := httptest.NewServer(g)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/calculate"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) *streamMsg {
	t.Helper()
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	msg := &streamMsg{}
	if err := json.Unmarshal(raw, msg); err != nil {
		t.Fatalf("bad frame %q: %v", raw, err)
	}
	return msg
}

func TestStreamCalculation(t *testing.T) {
	conn := dialStream(t)

	req, _ := json.Marshal(&coreProperty.CalcReq{
		Structure:  "CCO",
		Properties: []string{"molecular_weight", "binding_affinity"},
	})
	if err := conn.WriteMessage(websocket.TextMessage, req); err != nil {
		t.Fatal(err)
	}

	first := readFrame(t, conn)
	if first.Result == nil || first.Result.Value == nil {
		t.Fatalf("first frame should carry a value: %+v", first)
	}

	second := readFrame(t, conn)
	if second.Result == nil || second.Result.Error == nil {
		t.Fatalf("second frame should carry a refusal: %+v", second)
	}
	if second.Result.Error.Code != code.UnsupportedCalcErr.Code {
		t.Errorf("refusal code = %d, want %d", second.Result.Error.Code, code.UnsupportedCalcErr.Code)
	}

	done := readFrame(t, conn)
	if !done.Done {
		t.Errorf("final frame should signal completion: %+v", done)
	}
}

func TestStreamBadRequest(t *testing.T) {
	conn := dialStream(t)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{broken")); err != nil {
		t.Fatal(err)
	}
	msg := readFrame(t, conn)
	if msg.Error == nil || msg.Error.Code != code.ParamErr.Code {
		t.Fatalf("got %+v, want param error", msg)
	}
}

func TestStreamInvalidNotation(t *testing.T) {
	conn := dialStream(t)

	req, _ := json.Marshal(&coreProperty.CalcReq{
		Structure:  "C1CC",
		Properties: []string{"molecular_weight"},
	})
	if err := conn.WriteMessage(websocket.TextMessage, req); err != nil {
		t.Fatal(err)
	}
	msg := readFrame(t, conn)
	if msg.Error == nil || msg.Error.Code != code.InvalidInputErr.Code {
		t.Fatalf("got %+v, want invalid input", msg)
	}
}
