// Package domain contains entity without logic, just meta-data
package domain

type MeetingID string

// Mode is the media topology of a meeting. Meetings start in hub mode;
// the app layer recomputes it on every membership change.
type Mode string

const (
	// ModeMesh: peers negotiate directly, the server only relays signaling.
	ModeMesh Mode = "mesh"
	// ModeHub: the server relays webcam frames, peer signaling is disabled.
	ModeHub Mode = "hub"
)

// MeetingIDLength is the number of uuid characters kept for a meeting id.
const MeetingIDLength = 8
