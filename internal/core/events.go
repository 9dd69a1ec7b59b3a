package core

import "encoding/json"

// Outbound event types. Every payload sent to a client is one of these,
// marshaled to JSON with a "type" discriminator.
const (
	EventJoined              = "joined"
	EventSystemMessage       = "system_message"
	EventSwitchToMesh        = "switch_to_mesh"
	EventSwitchToHub         = "switch_to_hub"
	EventAllCurrentFrames    = "all_current_frames"
	EventReceiveFrame        = "receive_frame"
	EventRemoveFrame         = "remove_frame"
	EventReceiveDeskFrame    = "receive_desk_frame"
	EventRemoveDeskFrame     = "remove_desk_frame"
	EventDeskFrameRefused    = "desk_frame_refused"
	EventReceiveAudio        = "receive_audio"
	EventSignal              = "signal"
	EventCurrentParticipants = "current_participants"
	EventReceiveComment      = "receive_comment"
	EventMeetingCanceled     = "meeting_canceled"
	EventError               = "error"
)

type JoinedEvent struct {
	Type      string `json:"type"`
	IsCreator bool   `json:"is_creator"`
}

func NewJoined(isCreator bool) JoinedEvent {
	return JoinedEvent{Type: EventJoined, IsCreator: isCreator}
}

type SystemMessageEvent struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func NewSystemMessage(message, timestamp string) SystemMessageEvent {
	return SystemMessageEvent{Type: EventSystemMessage, Message: message, Timestamp: timestamp}
}

// ModeSwitchEvent announces a topology change to the whole room. Its type is
// either switch_to_mesh or switch_to_hub.
type ModeSwitchEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewSwitchToMesh(message string) ModeSwitchEvent {
	return ModeSwitchEvent{Type: EventSwitchToMesh, Message: message}
}

func NewSwitchToHub(message string) ModeSwitchEvent {
	return ModeSwitchEvent{Type: EventSwitchToHub, Message: message}
}

type AllCurrentFramesEvent struct {
	Type   string                  `json:"type"`
	Frames map[string]MediaPayload `json:"frames"`
}

func NewAllCurrentFrames(frames map[string]MediaPayload) AllCurrentFramesEvent {
	return AllCurrentFramesEvent{Type: EventAllCurrentFrames, Frames: frames}
}

type ReceiveFrameEvent struct {
	Type  string       `json:"type"`
	User  string       `json:"user"`
	Frame MediaPayload `json:"frame"`
}

func NewReceiveFrame(user string, frame MediaPayload) ReceiveFrameEvent {
	return ReceiveFrameEvent{Type: EventReceiveFrame, User: user, Frame: frame}
}

func NewReceiveDeskFrame(user string, frame MediaPayload) ReceiveFrameEvent {
	return ReceiveFrameEvent{Type: EventReceiveDeskFrame, User: user, Frame: frame}
}

type RemoveFrameEvent struct {
	Type string `json:"type"`
	User string `json:"user"`
}

func NewRemoveFrame(user string) RemoveFrameEvent {
	return RemoveFrameEvent{Type: EventRemoveFrame, User: user}
}

func NewRemoveDeskFrame(user string) RemoveFrameEvent {
	return RemoveFrameEvent{Type: EventRemoveDeskFrame, User: user}
}

type DeskFrameRefusedEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewDeskFrameRefused(message string) DeskFrameRefusedEvent {
	return DeskFrameRefusedEvent{Type: EventDeskFrameRefused, Message: message}
}

type ReceiveAudioEvent struct {
	Type  string       `json:"type"`
	User  string       `json:"user"`
	Chunk MediaPayload `json:"chunk"`
}

func NewReceiveAudio(user string, chunk MediaPayload) ReceiveAudioEvent {
	return ReceiveAudioEvent{Type: EventReceiveAudio, User: user, Chunk: chunk}
}

// SignalEvent carries an opaque negotiation payload to a single peer,
// annotated with the sender's identity.
type SignalEvent struct {
	Type    string          `json:"type"`
	From    ConnID          `json:"from"`
	User    string          `json:"user"`
	Payload json.RawMessage `json:"payload"`
}

func NewSignal(from ConnID, user string, payload json.RawMessage) SignalEvent {
	return SignalEvent{Type: EventSignal, From: from, User: user, Payload: payload}
}

type CurrentParticipantsEvent struct {
	Type         string   `json:"type"`
	Participants []ConnID `json:"participants"`
}

func NewCurrentParticipants(participants []ConnID) CurrentParticipantsEvent {
	return CurrentParticipantsEvent{Type: EventCurrentParticipants, Participants: participants}
}

type ReceiveCommentEvent struct {
	Type      string `json:"type"`
	User      string `json:"user"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func NewReceiveComment(user, message, timestamp string) ReceiveCommentEvent {
	return ReceiveCommentEvent{Type: EventReceiveComment, User: user, Message: message, Timestamp: timestamp}
}

type MeetingCanceledEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewMeetingCanceled(message string) MeetingCanceledEvent {
	return MeetingCanceledEvent{Type: EventMeetingCanceled, Message: message}
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewError(message string) ErrorEvent {
	return ErrorEvent{Type: EventError, Message: message}
}
