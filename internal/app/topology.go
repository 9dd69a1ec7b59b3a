package app

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

// computeMode is the topology rule: three or more participants relay media
// through the server, exactly two negotiate peer-to-peer, and one or zero
// keep whatever mode the meeting already had. One pure function of the new
// count, evaluated once per membership change, so crossing several
// thresholds in one update can never emit conflicting switches.
func computeMode(current domain.Mode, count int) domain.Mode {
	switch {
	case count >= 3:
		return domain.ModeHub
	case count == 2:
		return domain.ModeMesh
	default:
		return current
	}
}

// applyTopology recomputes the mode after a membership change and announces
// a switch to the whole room. Recompute is idempotent: no event is emitted
// when the mode already matches. Caller holds c.mu.
func (c *Core) applyTopology(m *core.Meeting) {
	next := computeMode(m.Mode, m.Count())
	if next == m.Mode {
		return
	}
	m.Mode = next
	switch next {
	case domain.ModeHub:
		c.broadcast(m, "", core.NewSwitchToHub("more than two participants, switching to hub mode"))
	case domain.ModeMesh:
		c.broadcast(m, "", core.NewSwitchToMesh("two participants, switching to mesh mode"))
	}
	log.Info().Str("module", "app.topology").
		Str("meeting_id", string(m.ID)).
		Int("count", m.Count()).
		Str("mode", string(next)).
		Msg("mode switched")
}
