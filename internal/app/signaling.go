package app

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

// ForwardSignal relays an opaque negotiation payload (an SDP or an ICE
// candidate, the server never looks) to exactly one other connection in the
// same meeting. Only mesh-mode meetings use peer negotiation; in hub mode
// the payload is rejected. The sender gets nothing back on success.
func (c *Core) ForwardSignal(id domain.MeetingID, from, target core.ConnID, payload json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	tp, ok := m.Participant(target)
	if !ok {
		return core.ErrTargetNotInMeeting
	}
	if m.Mode != domain.ModeMesh {
		return core.ErrWrongMode
	}

	name := ""
	if sp, in := m.Participant(from); in {
		name = sp.Name
	}
	c.unicast(tp.Signal, core.NewSignal(from, name, payload))
	log.Debug().Str("module", "app.signaling").
		Str("meeting_id", string(id)).
		Str("from", string(from)).
		Str("target", string(target)).
		Msg("signal forwarded")
	return nil
}

// Participants lists the connection ids of a mesh-mode meeting in join
// order, so a peer knows who to negotiate with.
func (c *Core) Participants(id domain.MeetingID) ([]core.ConnID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return nil, core.ErrMeetingNotFound
	}
	if m.Mode != domain.ModeMesh {
		return nil, core.ErrWrongMode
	}
	ps := m.Participants()
	out := make([]core.ConnID, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Conn)
	}
	return out, nil
}
