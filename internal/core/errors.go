package core

import "errors"

// Request-scoped failures. All of them are reported back to the originating
// connection only and never mutate meeting state.
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrNameRequired       = errors.New("user name is required")
	ErrNameTaken          = errors.New("user name is already taken in this meeting")
	ErrNotParticipant     = errors.New("user is not in this meeting")
	ErrIdentityMismatch   = errors.New("user name does not match this connection")
	ErrDesktopShareBusy   = errors.New("another participant is already sharing their desktop")
	ErrTargetNotInMeeting = errors.New("target user is not in this meeting")
	ErrWrongMode          = errors.New("meeting is not in mesh mode")
	ErrNotCreator         = errors.New("only the meeting creator can do this")
	ErrEmptyMessage       = errors.New("message is empty")
)
