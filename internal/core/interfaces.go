package core

// Frame is an opaque media or message payload (e.g. a base64 webcam still).
type Frame []byte

// ConnID is the identity of a single transport link. It is unique per
// socket, lives exactly as long as the socket, and belongs to at most one
// meeting at a time.
type ConnID string

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
