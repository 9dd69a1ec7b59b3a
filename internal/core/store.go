package core

import "github.com/dkeye/Meet/internal/domain"

// MeetingStore holds all live meetings. Implementations carry no locking of
// their own; the app core is the single serialized writer and reader.
type MeetingStore interface {
	Get(id domain.MeetingID) (*Meeting, bool)
	Put(m *Meeting)
	// Delete drops a meeting immediately. Meetings are destroyed the
	// instant they become empty, never garbage-collected lazily.
	Delete(id domain.MeetingID)
	All() []*Meeting
}

type memoryStore struct {
	meetings map[domain.MeetingID]*Meeting
}

func NewMemoryStore() MeetingStore {
	return &memoryStore{meetings: make(map[domain.MeetingID]*Meeting)}
}

func (s *memoryStore) Get(id domain.MeetingID) (*Meeting, bool) {
	m, ok := s.meetings[id]
	return m, ok
}

func (s *memoryStore) Put(m *Meeting) { s.meetings[m.ID] = m }

func (s *memoryStore) Delete(id domain.MeetingID) { delete(s.meetings, id) }

func (s *memoryStore) All() []*Meeting {
	out := make([]*Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		out = append(out, m)
	}
	return out
}
