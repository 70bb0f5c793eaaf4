package domain

// SessionKind tags a chat session as one-to-one or group.
// The set of variants is closed: DirectMessage and Group.
type SessionKind interface {
	isSessionKind()
}

// DirectMessage is a one-to-one session with PeerID on the other end.
type DirectMessage struct {
	PeerID string
}

// Group is a multi-member session; it has no single peer.
type Group struct{}

func (DirectMessage) isSessionKind() {}
func (Group) isSessionKind()         {}

// ChatSessionInfo is one conversation. It is a value: LastMessage is a copy
// and updating it yields a new ChatSessionInfo.
type ChatSessionInfo struct {
	ChatSessionID string
	SessionName   string
	LastMessage   Message
	Avatar        Icon
	Kind          SessionKind
}

func NewDirectSession(id, name, peerID string, avatar Icon) ChatSessionInfo {
	return ChatSessionInfo{
		ChatSessionID: id,
		SessionName:   name,
		Avatar:        avatar,
		Kind:          DirectMessage{PeerID: peerID},
	}
}

func NewGroupSession(id, name string, avatar Icon) ChatSessionInfo {
	return ChatSessionInfo{
		ChatSessionID: id,
		SessionName:   name,
		Avatar:        avatar,
		Kind:          Group{},
	}
}

// PeerID returns the other participant of a direct session.
func (s ChatSessionInfo) PeerID() (string, bool) {
	dm, ok := s.Kind.(DirectMessage)
	if !ok {
		return "", false
	}
	return dm.PeerID, true
}

func (s ChatSessionInfo) IsGroup() bool {
	_, ok := s.Kind.(Group)
	return ok
}

// UserID is the flat view older callers expect: the peer id for a direct
// session, empty otherwise.
func (s ChatSessionInfo) UserID() string {
	peer, _ := s.PeerID()
	return peer
}

// WithLastMessage returns a copy of s whose LastMessage is a deep copy of msg.
func (s ChatSessionInfo) WithLastMessage(msg Message) ChatSessionInfo {
	s.LastMessage = msg.Clone()
	return s
}
