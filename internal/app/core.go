package app

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
)

// Core is the single serialized dispatcher for all meeting state. Every
// operation takes c.mu for its whole critical section, so no handler ever
// observes a half-updated meeting. Outbound delivery is fire-and-forget:
// sends go into buffered channels and never block under the lock.
type Core struct {
	mu    sync.Mutex
	store core.MeetingStore
}

func NewCore(store core.MeetingStore) *Core {
	return &Core{store: store}
}

func (c *Core) unicast(sc core.SignalConnection, v any) {
	if sc == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.core").Msg("unicast marshal")
		return
	}
	if err := sc.TrySend(core.Frame(b)); err != nil {
		log.Debug().Err(err).Str("module", "app.core").Msg("unicast dropped")
	}
}

// broadcast fans an event out to every participant except the given
// connection. An empty except reaches the whole room.
func (c *Core) broadcast(m *core.Meeting, except core.ConnID, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.core").Msg("broadcast marshal")
		return
	}
	for _, p := range m.Others(except) {
		if err := p.Signal.TrySend(core.Frame(b)); err != nil {
			log.Debug().Err(err).Str("module", "app.core").Str("conn", string(p.Conn)).Msg("broadcast dropped")
		}
	}
}

func (c *Core) systemNotice(m *core.Meeting, except core.ConnID, message string) {
	c.broadcast(m, except, core.NewSystemMessage(message, placeholderTimestamp()))
}

// placeholderTimestamp synthesizes a likely-unique marker for messages whose
// sender supplied none. It is derived from a random identifier, not from the
// wall clock, so it only orders messages by arrival on the client side.
func placeholderTimestamp() string {
	return uuid.NewString()
}
