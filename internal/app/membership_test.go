package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Meet/internal/core"
)

func TestJoinValidation(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()

	assert.ErrorIs(t, c.Join("missing1", "conn-1", "alice", &fakeConn{}), core.ErrMeetingNotFound)
	assert.ErrorIs(t, c.Join(id, "conn-1", "", &fakeConn{}), core.ErrNameRequired)

	mustJoin(t, c, id, "conn-1", "alice")
	assert.ErrorIs(t, c.Join(id, "conn-2", "alice", &fakeConn{}), core.ErrNameTaken)
	// Case-sensitive uniqueness: "Alice" is a different name.
	require.NoError(t, c.Join(id, "conn-3", "Alice", &fakeConn{}))
	assert.Equal(t, 2, meeting(t, c, id).Count())
}

func TestFirstJoinerBecomesCreator(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()

	alice := mustJoin(t, c, id, "conn-1", "alice")
	joined, ok := alice.lastOfType(t, core.EventJoined)
	require.True(t, ok)
	assert.Equal(t, true, joined["is_creator"])

	bob := mustJoin(t, c, id, "conn-2", "bob")
	joined, ok = bob.lastOfType(t, core.EventJoined)
	require.True(t, ok)
	assert.Equal(t, false, joined["is_creator"])

	assert.Equal(t, core.ConnID("conn-1"), meeting(t, c, id).Creator)
}

func TestJoinNotifiesRoomAndSendsFrameSnapshot(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()

	alice := mustJoin(t, c, id, "conn-1", "alice")
	require.NoError(t, c.SubmitFrame(id, "conn-1", "alice", "frame-a"))
	alice.reset()

	bob := mustJoin(t, c, id, "conn-2", "bob")

	// The room hears about bob; bob does not hear about himself.
	notice, ok := alice.lastOfType(t, core.EventSystemMessage)
	require.True(t, ok)
	assert.Contains(t, notice["message"], "bob joined")
	_, selfNotice := bob.lastOfType(t, core.EventSystemMessage)
	assert.False(t, selfNotice)

	// The late joiner repaints every existing webcam tile.
	snap, ok := bob.lastOfType(t, core.EventAllCurrentFrames)
	require.True(t, ok)
	frames := snap["frames"].(map[string]any)
	assert.Equal(t, "frame-a", frames["alice"])
}

func TestLeaveValidation(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()
	mustJoin(t, c, id, "conn-1", "alice")

	assert.ErrorIs(t, c.Leave("missing1", "conn-1"), core.ErrMeetingNotFound)
	assert.ErrorIs(t, c.Leave(id, "conn-9"), core.ErrNotParticipant)
	// Failed leaves do not disturb state.
	assert.Equal(t, 1, meeting(t, c, id).Count())
}

func TestLeaveNotifiesAndDropsCachedMedia(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()
	alice := mustJoin(t, c, id, "conn-1", "alice")
	mustJoin(t, c, id, "conn-2", "bob")
	require.NoError(t, c.SubmitFrame(id, "conn-2", "bob", "frame-b"))
	require.NoError(t, c.SubmitDeskFrame(id, "conn-2", "bob", "desk-b"))
	alice.reset()

	require.NoError(t, c.Leave(id, "conn-2"))

	notice, ok := alice.lastOfType(t, core.EventSystemMessage)
	require.True(t, ok)
	assert.Contains(t, notice["message"], "bob left")

	removed, ok := alice.lastOfType(t, core.EventRemoveFrame)
	require.True(t, ok)
	assert.Equal(t, "bob", removed["user"])
	removedDesk, ok := alice.lastOfType(t, core.EventRemoveDeskFrame)
	require.True(t, ok)
	assert.Equal(t, "bob", removedDesk["user"])

	m := meeting(t, c, id)
	assert.NotContains(t, m.FrameSnapshot(), "bob")
	_, busy := m.DeskHolder()
	assert.False(t, busy)
}

func TestEmptyMeetingDestroyedImmediately(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()
	mustJoin(t, c, id, "conn-1", "alice")

	require.NoError(t, c.Leave(id, "conn-1"))
	assert.False(t, c.MeetingExists(id))
}

func TestCreatorSuccessionEarliestRemaining(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()
	mustJoin(t, c, id, "conn-1", "alice")
	bob := mustJoin(t, c, id, "conn-2", "bob")
	carol := mustJoin(t, c, id, "conn-3", "carol")
	bob.reset()
	carol.reset()

	require.NoError(t, c.Leave(id, "conn-1"))

	m := meeting(t, c, id)
	assert.Equal(t, core.ConnID("conn-2"), m.Creator)

	succession, ok := carol.lastOfType(t, core.EventSystemMessage)
	require.True(t, ok)
	assert.Contains(t, succession["message"], "bob is now the meeting creator")
	// The whole room hears it, the new creator included.
	_, ok = bob.lastOfType(t, core.EventSystemMessage)
	assert.True(t, ok)

	// Succession is deterministic: next departure elects carol.
	require.NoError(t, c.Leave(id, "conn-2"))
	assert.Equal(t, core.ConnID("conn-3"), meeting(t, c, id).Creator)
}

func TestDisconnectCreatorMeetingSurvives(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()
	mustJoin(t, c, id, "conn-1", "alice")
	bob := mustJoin(t, c, id, "conn-2", "bob")
	mustJoin(t, c, id, "conn-3", "carol")
	bob.reset()

	c.Disconnect("conn-1")

	require.True(t, c.MeetingExists(id))
	m := meeting(t, c, id)
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, core.ConnID("conn-2"), m.Creator)
	succession, ok := bob.lastOfType(t, core.EventSystemMessage)
	require.True(t, ok)
	assert.Contains(t, succession["message"], "bob is now the meeting creator")
}

func TestDisconnectIsIdempotent(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()
	mustJoin(t, c, id, "conn-1", "alice")

	c.Disconnect("conn-1")
	assert.False(t, c.MeetingExists(id))

	// Repeated or unknown disconnects are silent no-ops.
	c.Disconnect("conn-1")
	c.Disconnect("never-seen")
}

func TestCancelMeeting(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()
	alice := mustJoin(t, c, id, "conn-1", "alice")
	bob := mustJoin(t, c, id, "conn-2", "bob")

	assert.ErrorIs(t, c.Cancel(id, "conn-2"), core.ErrNotCreator)
	assert.True(t, c.MeetingExists(id))
	assert.ErrorIs(t, c.Cancel("missing1", "conn-1"), core.ErrMeetingNotFound)

	require.NoError(t, c.Cancel(id, "conn-1"))
	assert.False(t, c.MeetingExists(id))
	// The whole room gets the cancellation, creator included.
	_, ok := alice.lastOfType(t, core.EventMeetingCanceled)
	assert.True(t, ok)
	_, ok = bob.lastOfType(t, core.EventMeetingCanceled)
	assert.True(t, ok)
}

func TestJoinMovesConnectionBetweenMeetings(t *testing.T) {
	c := newTestCore()
	a := c.CreateMeeting()
	b := c.CreateMeeting()
	mustJoin(t, c, a, "conn-1", "alice")

	require.NoError(t, c.Join(b, "conn-1", "alice", &fakeConn{}))

	// The sole member left meeting a, so it is gone; alice is in b only.
	assert.False(t, c.MeetingExists(a))
	_, in := meeting(t, c, b).Participant("conn-1")
	assert.True(t, in)
}

func TestRejoinSameMeetingKeepsCreator(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()
	mustJoin(t, c, id, "conn-1", "alice")

	f := &fakeConn{}
	require.NoError(t, c.Join(id, "conn-1", "alice", f))

	m := meeting(t, c, id)
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, core.ConnID("conn-1"), m.Creator)
	joined, ok := f.lastOfType(t, core.EventJoined)
	require.True(t, ok)
	assert.Equal(t, true, joined["is_creator"])
}

func TestNonEmptyMeetingAlwaysHasOneCreator(t *testing.T) {
	c := newTestCore()
	id := c.CreateMeeting()
	conns := []core.ConnID{"conn-1", "conn-2", "conn-3", "conn-4"}
	names := []string{"alice", "bob", "carol", "dave"}
	for i, conn := range conns {
		mustJoin(t, c, id, conn, names[i])
	}

	for _, conn := range conns[:3] {
		require.NoError(t, c.Leave(id, conn))
		m := meeting(t, c, id)
		_, in := m.Participant(m.Creator)
		assert.True(t, in, "creator must be a current participant")
	}
}
