package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

func (ctl *Controller) handleSignal(connID core.ConnID, c *WsSignalConn, data []byte) {
	var p struct {
		Type      string          `json:"type"`
		MeetingID string          `json:"meeting_id"`
		Target    string          `json:"target"`
		Payload   json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad signal payload")
		ctl.sendJSON(c, core.NewError("bad payload"))
		return
	}

	err := ctl.Core.ForwardSignal(domain.MeetingID(p.MeetingID), connID, core.ConnID(p.Target), p.Payload)
	if err != nil {
		ctl.sendError(c, err)
	}
}

func (ctl *Controller) handleListParticipants(connID core.ConnID, c *WsSignalConn, data []byte) {
	var p struct {
		Type      string `json:"type"`
		MeetingID string `json:"meeting_id"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad list_participants payload")
		ctl.sendJSON(c, core.NewError("bad payload"))
		return
	}

	participants, err := ctl.Core.Participants(domain.MeetingID(p.MeetingID))
	if err != nil {
		ctl.sendError(c, err)
		return
	}
	ctl.sendJSON(c, core.NewCurrentParticipants(participants))
}
