package app

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

// MeetingInfo is a read-only discovery view of one live meeting.
type MeetingInfo struct {
	ID      domain.MeetingID `json:"meeting_id"`
	Creator string           `json:"creator"`
}

// CreateMeeting generates a short random meeting id, retrying on collision
// until it is unique among live meetings. There is no error path; the id
// space makes collisions rare and retries resolve them internally.
func (c *Core) CreateMeeting() domain.MeetingID {
	c.mu.Lock()
	defer c.mu.Unlock()
	for {
		id := domain.MeetingID(uuid.NewString()[:domain.MeetingIDLength])
		if _, taken := c.store.Get(id); taken {
			continue
		}
		c.store.Put(core.NewMeeting(id))
		log.Info().Str("module", "app.registry").Str("meeting_id", string(id)).Msg("meeting created")
		return id
	}
}

func (c *Core) MeetingExists(id domain.MeetingID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.store.Get(id)
	return ok
}

// ListMeetings returns a snapshot of live meetings with their creator's
// display name, or "unknown" when the creator connection has already left.
func (c *Core) ListMeetings() []MeetingInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	meetings := c.store.All()
	out := make([]MeetingInfo, 0, len(meetings))
	for _, m := range meetings {
		creator := "unknown"
		if p, ok := m.Participant(m.Creator); ok {
			creator = p.Name
		}
		out = append(out, MeetingInfo{ID: m.ID, Creator: creator})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
