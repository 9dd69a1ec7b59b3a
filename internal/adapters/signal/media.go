package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

// framePayload covers every media message: webcam frames, desktop-share
// frames and audio chunks all carry the same fields.
type framePayload struct {
	Type      string `json:"type"`
	MeetingID string `json:"meeting_id"`
	UserName  string `json:"user_name"`
	Frame     string `json:"frame"`
	Chunk     string `json:"chunk"`
}

func (ctl *Controller) decodeFrame(c *WsSignalConn, data []byte) (framePayload, bool) {
	var p framePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad media payload")
		ctl.sendJSON(c, core.NewError("bad payload"))
		return p, false
	}
	return p, true
}

func (ctl *Controller) handleSubmitFrame(connID core.ConnID, c *WsSignalConn, data []byte) {
	p, ok := ctl.decodeFrame(c, data)
	if !ok {
		return
	}
	err := ctl.Core.SubmitFrame(domain.MeetingID(p.MeetingID), connID, p.UserName, core.MediaPayload(p.Frame))
	if err != nil {
		ctl.sendError(c, err)
	}
}

func (ctl *Controller) handleStopFrame(connID core.ConnID, c *WsSignalConn, data []byte) {
	p, ok := ctl.decodeFrame(c, data)
	if !ok {
		return
	}
	if err := ctl.Core.StopFrame(domain.MeetingID(p.MeetingID), connID, p.UserName); err != nil {
		ctl.sendError(c, err)
	}
}

func (ctl *Controller) handleSubmitDeskFrame(connID core.ConnID, c *WsSignalConn, data []byte) {
	p, ok := ctl.decodeFrame(c, data)
	if !ok {
		return
	}
	err := ctl.Core.SubmitDeskFrame(domain.MeetingID(p.MeetingID), connID, p.UserName, core.MediaPayload(p.Frame))
	if err != nil {
		ctl.sendError(c, err)
	}
}

func (ctl *Controller) handleStopDeskFrame(connID core.ConnID, c *WsSignalConn, data []byte) {
	p, ok := ctl.decodeFrame(c, data)
	if !ok {
		return
	}
	if err := ctl.Core.StopDeskFrame(domain.MeetingID(p.MeetingID), connID, p.UserName); err != nil {
		ctl.sendError(c, err)
	}
}

func (ctl *Controller) handleAudioChunk(connID core.ConnID, c *WsSignalConn, data []byte) {
	p, ok := ctl.decodeFrame(c, data)
	if !ok {
		return
	}
	err := ctl.Core.RelayAudio(domain.MeetingID(p.MeetingID), connID, p.UserName, core.MediaPayload(p.Chunk))
	if err != nil {
		ctl.sendError(c, err)
	}
}
