package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

func (ctl *Controller) handleSendComment(connID core.ConnID, c *WsSignalConn, data []byte) {
	var p struct {
		Type      string `json:"type"`
		MeetingID string `json:"meeting_id"`
		UserName  string `json:"user_name"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad send_comment payload")
		ctl.sendJSON(c, core.NewError("bad payload"))
		return
	}

	err := ctl.Core.SendComment(domain.MeetingID(p.MeetingID), connID, p.UserName, p.Message, p.Timestamp)
	if err != nil {
		ctl.sendError(c, err)
	}
}

func (ctl *Controller) handleSendSystemMessage(connID core.ConnID, c *WsSignalConn, data []byte) {
	var p struct {
		Type      string `json:"type"`
		MeetingID string `json:"meeting_id"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad send_system_message payload")
		ctl.sendJSON(c, core.NewError("bad payload"))
		return
	}

	if err := ctl.Core.SendSystemMessage(domain.MeetingID(p.MeetingID), p.Message); err != nil {
		ctl.sendError(c, err)
	}
}
