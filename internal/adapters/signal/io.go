package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
)

func (ctl *Controller) writePump(ctx context.Context, c *WsSignalConn) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

// readPump owns the socket's inbound side. On any exit it runs disconnect
// cleanup, which is a silent no-op when the connection never joined or
// already left.
func (ctl *Controller) readPump(ctx context.Context, connID core.ConnID, c *WsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("conn", string(connID)).Msg("readPump closing")
		ctl.Core.Disconnect(connID)
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("conn", string(connID)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Debug().Err(err).Str("module", "signal").Str("conn", string(connID)).Msg("readPump read error")
				return
			}
			ctl.dispatch(connID, c, data)
		}
	}
}

func (ctl *Controller) dispatch(connID core.ConnID, c *WsSignalConn, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendJSON(c, core.NewError("bad payload"))
		return
	}

	switch env.Type {
	case "join":
		ctl.handleJoin(connID, c, data)
	case "leave":
		ctl.handleLeave(connID, c, data)
	case "cancel":
		ctl.handleCancel(connID, c, data)
	case "submit_frame":
		ctl.handleSubmitFrame(connID, c, data)
	case "stop_frame":
		ctl.handleStopFrame(connID, c, data)
	case "submit_desk_frame":
		ctl.handleSubmitDeskFrame(connID, c, data)
	case "stop_desk_frame":
		ctl.handleStopDeskFrame(connID, c, data)
	case "audio_chunk":
		ctl.handleAudioChunk(connID, c, data)
	case "signal":
		ctl.handleSignal(connID, c, data)
	case "list_participants":
		ctl.handleListParticipants(connID, c, data)
	case "send_comment":
		ctl.handleSendComment(connID, c, data)
	case "send_system_message":
		ctl.handleSendSystemMessage(connID, c, data)
	case "ping":
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown message type")
	}
}

func (ctl *Controller) sendJSON(c *WsSignalConn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}

// sendError reports a request-scoped failure back to the originating
// connection only; failures are never broadcast.
func (ctl *Controller) sendError(c *WsSignalConn, err error) {
	ctl.sendJSON(c, core.NewError(err.Error()))
}
