// Package projection builds local timelines from created or received messages.
// Handles ordering and keeps the session's last message current.
// Does not persist, send, or render anything.
package projection

import (
	"chat-core/domain"
	"chat-core/errors"
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Timeline holds the history of one chat session.
type Timeline struct {
	mu       sync.RWMutex
	log      *slog.Logger
	session  domain.ChatSessionInfo
	messages []domain.Message
	seen     map[string]struct{}
}

func NewTimeline(session domain.ChatSessionInfo, log *slog.Logger) *Timeline {
	return &Timeline{
		log:     log,
		session: session,
		seen:    make(map[string]struct{}),
	}
}

// Append records msg. The zero message and messages of other sessions are
// refused; a message id already seen is ignored.
func (t *Timeline) Append(msg domain.Message) error {
	if err := domain.ValidateMessage(msg); err != nil {
		return err
	}
	if msg.ChatSessionID != t.session.ChatSessionID {
		return fmt.Errorf("%w: got %s, timeline is %s",
			errors.ErrSessionMismatch, msg.ChatSessionID, t.session.ChatSessionID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, dup := t.seen[msg.MessageID]; dup {
		t.log.Debug("Duplicate message ignored", "message_id", msg.MessageID)
		return nil
	}
	t.seen[msg.MessageID] = struct{}{}
	t.messages = append(t.messages, msg.Clone())
	// Ties keep arrival order, so the later arrival becomes the last message.
	if t.session.LastMessage.IsZero() || msg.CreatedAt >= t.session.LastMessage.CreatedAt {
		t.session = t.session.WithLastMessage(msg)
	}
	return nil
}

// Messages returns a deep copy of the history ordered by CreatedAt, arrival
// order breaking ties.
func (t *Timeline) Messages() []domain.Message {
	t.mu.RLock()
	out := lo.Map(t.messages, func(m domain.Message, _ int) domain.Message { return m.Clone() })
	t.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b domain.Message) int {
		return cmp.Compare(a.CreatedAt, b.CreatedAt)
	})
	return out
}

// ByType returns the ordered messages of one variant.
func (t *Timeline) ByType(kind domain.MessageType) []domain.Message {
	return lo.Filter(t.Messages(), func(m domain.Message, _ int) bool {
		return m.MessageType == kind
	})
}

// PendingUploads returns the ordered non-text messages still waiting for a file id.
func (t *Timeline) PendingUploads() []domain.Message {
	return lo.Filter(t.Messages(), func(m domain.Message, _ int) bool {
		return m.MessageType.CarriesFile() && m.FileID == ""
	})
}

// Replace swaps in an updated version of a known message, such as the copy
// returned after an upload assigned its file id. The update must keep the
// session and the timestamp of the stored message.
func (t *Timeline) Replace(msg domain.Message) error {
	if err := domain.ValidateMessage(msg); err != nil {
		return err
	}
	if msg.ChatSessionID != t.session.ChatSessionID {
		return fmt.Errorf("%w: got %s, timeline is %s",
			errors.ErrSessionMismatch, msg.ChatSessionID, t.session.ChatSessionID)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, idx, found := lo.FindIndexOf(t.messages, func(m domain.Message) bool {
		return m.MessageID == msg.MessageID
	})
	if !found {
		return fmt.Errorf("%w: unknown message %s", errors.ErrInvalidMessage, msg.MessageID)
	}
	if t.messages[idx].CreatedAt != msg.CreatedAt {
		return fmt.Errorf("%w: message %s moved from %d to %d",
			errors.ErrInvalidMessage, msg.MessageID, t.messages[idx].CreatedAt, msg.CreatedAt)
	}
	t.messages[idx] = msg.Clone()
	if t.session.LastMessage.MessageID == msg.MessageID {
		t.session = t.session.WithLastMessage(msg)
	}
	return nil
}

// Session returns the session with LastMessage set to the newest message.
func (t *Timeline) Session() domain.ChatSessionInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s := t.session
	s.LastMessage = s.LastMessage.Clone()
	return s
}

func (t *Timeline) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
