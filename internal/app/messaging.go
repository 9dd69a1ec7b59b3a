package app

import (
	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

// SendComment broadcasts a chat comment to everyone else in the room. A
// caller-supplied timestamp is relayed verbatim; otherwise a likely-unique
// placeholder is synthesized.
func (c *Core) SendComment(id domain.MeetingID, conn core.ConnID, name, message, timestamp string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	if name == "" {
		return core.ErrNameRequired
	}
	if message == "" {
		return core.ErrEmptyMessage
	}
	if p, in := m.Participant(conn); !in || p.Name != name {
		return core.ErrIdentityMismatch
	}
	if timestamp == "" {
		timestamp = placeholderTimestamp()
	}
	c.broadcast(m, conn, core.NewReceiveComment(name, message, timestamp))
	return nil
}

// SendSystemMessage broadcasts a meeting-wide notice to the entire room.
// There is no sender to exclude.
func (c *Core) SendSystemMessage(id domain.MeetingID, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.store.Get(id)
	if !ok {
		return core.ErrMeetingNotFound
	}
	if message == "" {
		return core.ErrEmptyMessage
	}
	c.systemNotice(m, "", message)
	return nil
}
