package app

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

// lookupSender validates that a display name is present and actually bound
// to the submitting connection, which prevents impersonating another tile.
// Caller holds c.mu.
func (c *Core) lookupSender(m *core.Meeting, conn core.ConnID, name string) (*core.Participant, error) {
	if name == "" {
		return nil, core.ErrNameRequired
	}
	p, ok := m.Participant(conn)
	if !ok || p.Name != name {
		return nil, core.ErrIdentityMismatch
	}
	return p, nil
}

// SubmitFrame caches the latest webcam frame for a user and fans it out to
// everyone else in the room. Last write wins; there is no history.
func (c *Core) SubmitFrame(id domain.MeetingID, conn core.ConnID, name string, payload core.MediaPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	if _, err := c.lookupSender(m, conn, name); err != nil {
		return err
	}
	m.SetFrame(name, payload)
	c.broadcast(m, conn, core.NewReceiveFrame(name, payload))
	return nil
}

// StopFrame drops a user's cached webcam frame and tells the room to remove
// the tile. Stopping an absent frame is a no-op, not an error.
func (c *Core) StopFrame(id domain.MeetingID, conn core.ConnID, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	if _, err := c.lookupSender(m, conn, name); err != nil {
		return err
	}
	if m.DeleteFrame(name) {
		c.broadcast(m, conn, core.NewRemoveFrame(name))
	}
	return nil
}

// SubmitDeskFrame is SubmitFrame for the desktop-share slot, of which a
// meeting has exactly one. A submission while another user holds the slot is
// rejected without caching or relaying anything, and the offender gets a
// distinct refusal signal so its client can revert the sharing UI.
func (c *Core) SubmitDeskFrame(id domain.MeetingID, conn core.ConnID, name string, payload core.MediaPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	p, err := c.lookupSender(m, conn, name)
	if err != nil {
		return err
	}
	if holder, busy := m.DeskHolder(); busy && holder != name {
		c.unicast(p.Signal, core.NewDeskFrameRefused(holder+" is already sharing their desktop"))
		log.Debug().Str("module", "app.media").
			Str("meeting_id", string(id)).
			Str("user", name).
			Str("holder", holder).
			Msg("desk share refused")
		return core.ErrDesktopShareBusy
	}
	m.SetDeskFrame(name, payload)
	c.broadcast(m, conn, core.NewReceiveDeskFrame(name, payload))
	return nil
}

// StopDeskFrame releases the desktop-share slot if this user holds it.
func (c *Core) StopDeskFrame(id domain.MeetingID, conn core.ConnID, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	if _, err := c.lookupSender(m, conn, name); err != nil {
		return err
	}
	if m.DeleteDeskFrame(name) {
		c.broadcast(m, conn, core.NewRemoveDeskFrame(name))
	}
	return nil
}

// RelayAudio fans an opaque audio chunk out to the rest of the room. Audio
// is never cached; a late joiner only hears what comes after them.
func (c *Core) RelayAudio(id domain.MeetingID, conn core.ConnID, name string, chunk core.MediaPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	if _, err := c.lookupSender(m, conn, name); err != nil {
		return err
	}
	c.broadcast(m, conn, core.NewReceiveAudio(name, chunk))
	return nil
}
