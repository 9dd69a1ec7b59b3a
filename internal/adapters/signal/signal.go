package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/app"
	"github.com/dkeye/Meet/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

// Controller owns the WebSocket event channel: one connection per client,
// each bound to a fresh connection id for its lifetime.
type Controller struct {
	Core       *app.Core
	ReadLimit  int64
	SendBuffer int
}

func NewController(c *app.Core, readLimit int64, sendBuffer int) *Controller {
	if sendBuffer <= 0 {
		sendBuffer = 32
	}
	return &Controller{Core: c, ReadLimit: readLimit, SendBuffer: sendBuffer}
}

// WsSignalConn implements core.SignalConnection over a websocket with a
// buffered outbound channel. Delivery is fire-and-forget: a full buffer
// drops the frame instead of blocking the sender.
type WsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *WsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *WsSignalConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and starts the connection's pump pair. The
// connection id is minted per socket, not per browser: two tabs are two
// distinct participants.
func (ctl *Controller) HandleWS(ctx context.Context, c *gin.Context) {
	connID := core.ConnID(uuid.NewString())
	log.Info().Str("module", "signal").
		Str("conn", string(connID)).
		Str("client_token", c.GetString("client_token")).
		Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}
	if ctl.ReadLimit > 0 {
		ws.SetReadLimit(ctl.ReadLimit)
	}

	conn := &WsSignalConn{
		conn: ws,
		send: make(chan core.Frame, ctl.SendBuffer),
	}

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, connID, conn)
}
