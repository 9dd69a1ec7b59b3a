package app

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

// Join adds a connection to a meeting under a display name. The first joiner
// of a meeting becomes its creator. The rest of the room is notified, the
// joiner gets the current webcam cache so late joiners repaint every tile,
// and the topology is recomputed for the new count.
func (c *Core) Join(id domain.MeetingID, conn core.ConnID, name string, sc core.SignalConnection) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	if name == "" {
		return core.ErrNameRequired
	}
	if m.NameTaken(name) {
		// Taken by someone else; a rejoining connection may keep its own name.
		if p, in := m.Participant(conn); !in || p.Name != name {
			return core.ErrNameTaken
		}
	}

	// A connection belongs to at most one meeting; drop any stale
	// membership first (e.g. a rejoin without an explicit leave). This
	// runs after all checks so a failed join never mutates state.
	for _, other := range c.store.All() {
		if _, in := other.Participant(conn); in {
			c.removeParticipant(other, conn)
		}
	}
	// A sole-member rejoin empties the meeting and destroys it above;
	// resurrect it, the connection is about to repopulate it.
	if _, live := c.store.Get(id); !live {
		c.store.Put(m)
	}

	isCreator := false
	if m.Creator == "" || m.Creator == conn {
		m.Creator = conn
		isCreator = true
	}
	m.AddParticipant(conn, name, sc)

	c.systemNotice(m, conn, name+" joined the meeting")
	c.unicast(sc, core.NewAllCurrentFrames(m.FrameSnapshot()))
	c.unicast(sc, core.NewJoined(isCreator))
	c.applyTopology(m)

	log.Info().Str("module", "app.membership").
		Str("meeting_id", string(id)).
		Str("conn", string(conn)).
		Str("user", name).
		Bool("creator", isCreator).
		Msg("joined meeting")
	return nil
}

// Leave removes a connection from a meeting it is a member of.
func (c *Core) Leave(id domain.MeetingID, conn core.ConnID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	if _, in := m.Participant(conn); !in {
		return core.ErrNotParticipant
	}
	c.removeParticipant(m, conn)
	return nil
}

// Disconnect runs leave cleanup for a dropped connection. The transport does
// not know which meeting the connection was in, so all meetings are scanned.
// Unknown or already-removed connections are a silent no-op, which makes
// repeated disconnect delivery safe.
func (c *Core) Disconnect(conn core.ConnID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.store.All() {
		if _, in := m.Participant(conn); in {
			c.removeParticipant(m, conn)
		}
	}
}

// Cancel destroys a meeting on behalf of its creator and tells the whole
// room. No per-member cleanup is needed; the meeting object is dropped.
func (c *Core) Cancel(id domain.MeetingID, conn core.ConnID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	if m.Creator != conn {
		return core.ErrNotCreator
	}
	c.broadcast(m, "", core.NewMeetingCanceled("the meeting has been canceled by its creator"))
	c.store.Delete(id)
	log.Info().Str("module", "app.membership").Str("meeting_id", string(id)).Msg("meeting canceled")
	return nil
}

// removeParticipant is the one shared cleanup path for leave, disconnect and
// rejoin. Every step is defensive against already-absent entries; it must
// never fail. Caller holds c.mu.
func (c *Core) removeParticipant(m *core.Meeting, conn core.ConnID) {
	p, ok := m.RemoveParticipant(conn)
	if !ok {
		return
	}

	c.systemNotice(m, "", p.Name+" left the meeting")
	if m.DeleteFrame(p.Name) {
		c.broadcast(m, "", core.NewRemoveFrame(p.Name))
	}
	if m.DeleteDeskFrame(p.Name) {
		c.broadcast(m, "", core.NewRemoveDeskFrame(p.Name))
	}
	c.applyTopology(m)

	if m.Creator == conn {
		if next, found := m.EarliestParticipant(); found {
			m.Creator = next.Conn
			c.systemNotice(m, "", next.Name+" is now the meeting creator")
			log.Info().Str("module", "app.membership").
				Str("meeting_id", string(m.ID)).
				Str("user", next.Name).
				Msg("creator succession")
		}
	}

	if m.Count() == 0 {
		// Nobody left to notify; drop the meeting immediately.
		c.store.Delete(m.ID)
		log.Info().Str("module", "app.membership").Str("meeting_id", string(m.ID)).Msg("meeting destroyed")
		return
	}
	log.Info().Str("module", "app.membership").
		Str("meeting_id", string(m.ID)).
		Str("user", p.Name).
		Msg("left meeting")
}
