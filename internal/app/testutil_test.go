package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Meet/internal/core"
	"github.com/dkeye/Meet/internal/domain"
)

// fakeConn records every frame the core tries to deliver.
type fakeConn struct {
	frames []core.Frame
}

func (f *fakeConn) TrySend(fr core.Frame) error {
	f.frames = append(f.frames, fr)
	return nil
}

func (f *fakeConn) Close() {}

func (f *fakeConn) reset() { f.frames = nil }

func (f *fakeConn) events(t *testing.T) []map[string]any {
	t.Helper()
	out := make([]map[string]any, 0, len(f.frames))
	for _, fr := range f.frames {
		var m map[string]any
		require.NoError(t, json.Unmarshal(fr, &m))
		out = append(out, m)
	}
	return out
}

func (f *fakeConn) eventTypes(t *testing.T) []string {
	t.Helper()
	types := []string{}
	for _, ev := range f.events(t) {
		types = append(types, ev["type"].(string))
	}
	return types
}

// lastOfType returns the most recent event of the given type, if any.
func (f *fakeConn) lastOfType(t *testing.T, typ string) (map[string]any, bool) {
	t.Helper()
	var found map[string]any
	ok := false
	for _, ev := range f.events(t) {
		if ev["type"] == typ {
			found, ok = ev, true
		}
	}
	return found, ok
}

func (f *fakeConn) countOfType(t *testing.T, typ string) int {
	t.Helper()
	n := 0
	for _, ev := range f.events(t) {
		if ev["type"] == typ {
			n++
		}
	}
	return n
}

func newTestCore() *Core {
	return NewCore(core.NewMemoryStore())
}

func mustJoin(t *testing.T, c *Core, id domain.MeetingID, conn core.ConnID, name string) *fakeConn {
	t.Helper()
	f := &fakeConn{}
	require.NoError(t, c.Join(id, conn, name, f))
	return f
}

// meeting fetches live state for white-box assertions.
func meeting(t *testing.T, c *Core, id domain.MeetingID) *core.Meeting {
	t.Helper()
	m, ok := c.store.Get(id)
	require.True(t, ok, "meeting %s should exist", id)
	return m
}
