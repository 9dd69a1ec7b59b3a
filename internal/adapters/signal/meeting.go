package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

func (ctl *Controller) handleJoin(connID core.ConnID, c *WsSignalConn, data []byte) {
	var p struct {
		Type      string `json:"type"`
		MeetingID string `json:"meeting_id"`
		UserName  string `json:"user_name"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendJSON(c, core.NewError("bad payload"))
		return
	}

	name := domain.ClampDisplayName(p.UserName)
	if err := ctl.Core.Join(domain.MeetingID(p.MeetingID), connID, name, c); err != nil {
		ctl.sendError(c, err)
		return
	}
}

func (ctl *Controller) handleLeave(connID core.ConnID, c *WsSignalConn, data []byte) {
	var p struct {
		Type      string `json:"type"`
		MeetingID string `json:"meeting_id"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad leave payload")
		ctl.sendJSON(c, core.NewError("bad payload"))
		return
	}

	if err := ctl.Core.Leave(domain.MeetingID(p.MeetingID), connID); err != nil {
		ctl.sendError(c, err)
	}
}

func (ctl *Controller) handleCancel(connID core.ConnID, c *WsSignalConn, data []byte) {
	var p struct {
		Type      string `json:"type"`
		MeetingID string `json:"meeting_id"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad cancel payload")
		ctl.sendJSON(c, core.NewError("bad payload"))
		return
	}

	if err := ctl.Core.Cancel(domain.MeetingID(p.MeetingID), connID); err != nil {
		ctl.sendError(c, err)
	}
}
