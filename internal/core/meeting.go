package core

import (
	"sort"

	"github.com/dkeye/Meet/internal/domain"
)

// MediaPayload is an opaque client-encoded media payload (e.g. a base64
// data URL). It is cached and relayed verbatim, never inspected.
type MediaPayload string

// Participant is one (connection, display name) pair inside a meeting.
type Participant struct {
	Conn   ConnID
	Name   string
	Signal SignalConnection

	seq uint64 // join order, used for creator succession
}

// Meeting is the in-memory state of one room: membership, creator, topology
// mode and the last-value media caches.
//
// Not goroutine-safe on its own; the app core serializes every access.
type Meeting struct {
	ID      domain.MeetingID
	Creator ConnID
	Mode    domain.Mode

	participants map[ConnID]*Participant
	frames       map[string]MediaPayload
	deskFrames   map[string]MediaPayload
	nextSeq      uint64
}

func NewMeeting(id domain.MeetingID) *Meeting {
	return &Meeting{
		ID:           id,
		Mode:         domain.ModeHub,
		participants: make(map[ConnID]*Participant),
		frames:       make(map[string]MediaPayload),
		deskFrames:   make(map[string]MediaPayload),
	}
}

func (m *Meeting) Count() int { return len(m.participants) }

func (m *Meeting) Participant(conn ConnID) (*Participant, bool) {
	p, ok := m.participants[conn]
	return p, ok
}

func (m *Meeting) NameTaken(name string) bool {
	for _, p := range m.participants {
		if p.Name == name {
			return true
		}
	}
	return false
}

func (m *Meeting) AddParticipant(conn ConnID, name string, sc SignalConnection) *Participant {
	m.nextSeq++
	p := &Participant{Conn: conn, Name: name, Signal: sc, seq: m.nextSeq}
	m.participants[conn] = p
	return p
}

func (m *Meeting) RemoveParticipant(conn ConnID) (*Participant, bool) {
	p, ok := m.participants[conn]
	if !ok {
		return nil, false
	}
	delete(m.participants, conn)
	return p, true
}

// Participants returns current members in join order.
func (m *Meeting) Participants() []*Participant {
	out := make([]*Participant, 0, len(m.participants))
	for _, p := range m.participants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Others returns current members except the given connection, in join order.
func (m *Meeting) Others(except ConnID) []*Participant {
	out := make([]*Participant, 0, len(m.participants))
	for conn, p := range m.participants {
		if conn == except {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// EarliestParticipant returns the remaining member with the lowest join
// sequence. Used as the deterministic creator-succession rule.
func (m *Meeting) EarliestParticipant() (*Participant, bool) {
	var best *Participant
	for _, p := range m.participants {
		if best == nil || p.seq < best.seq {
			best = p
		}
	}
	return best, best != nil
}

// FrameSnapshot copies the webcam cache for a late joiner.
func (m *Meeting) FrameSnapshot() map[string]MediaPayload {
	out := make(map[string]MediaPayload, len(m.frames))
	for name, f := range m.frames {
		out[name] = f
	}
	return out
}

func (m *Meeting) SetFrame(name string, payload MediaPayload) { m.frames[name] = payload }

func (m *Meeting) DeleteFrame(name string) bool {
	if _, ok := m.frames[name]; !ok {
		return false
	}
	delete(m.frames, name)
	return true
}

// DeskHolder returns the display name currently holding the desktop-share
// slot. The deskFrames map never has more than one entry.
func (m *Meeting) DeskHolder() (string, bool) {
	for name := range m.deskFrames {
		return name, true
	}
	return "", false
}

func (m *Meeting) SetDeskFrame(name string, payload MediaPayload) { m.deskFrames[name] = payload }

func (m *Meeting) DeleteDeskFrame(name string) bool {
	if _, ok := m.deskFrames[name]; !ok {
		return false
	}
	delete(m.deskFrames, name)
	return true
}
