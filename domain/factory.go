package domain

import (
	"bytes"
	"chat-core/domain/stamp"
	"chat-core/errors"
	"fmt"
	"log/slog"
)

// Factory builds fully populated messages from a uniform input tuple.
// It holds no mutable state and is safe for concurrent use.
type Factory struct {
	log   *slog.Logger
	clock stamp.Clock
	newID stamp.IDGenerator
}

type FactoryOption func(*Factory)

func WithClock(clock stamp.Clock) FactoryOption {
	return func(f *Factory) {
		f.clock = clock
	}
}

func WithIDGenerator(gen stamp.IDGenerator) FactoryOption {
	return func(f *Factory) {
		f.newID = gen
	}
}

func NewFactory(log *slog.Logger, opts ...FactoryOption) *Factory {
	f := &Factory{
		log:   log,
		clock: stamp.CurrentEpochSeconds,
		newID: stamp.NewMessageID,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFactory = NewFactory(slog.New(slog.DiscardHandler))

// MakeMessage builds a message with the default factory.
func MakeMessage(kind MessageType, sessionID string, sender UserInfo, content []byte, extra string) Message {
	return defaultFactory.MakeMessage(kind, sessionID, sender, content, extra)
}

// NewMessage builds a message with the default factory.
func NewMessage(kind MessageType, sessionID string, sender UserInfo, content []byte, extra string) (Message, error) {
	return defaultFactory.NewMessage(kind, sessionID, sender, content, extra)
}

// MakeMessage never fails: UnknownType and any unrecognized kind yield the
// zero Message. Use NewMessage to tell the two apart.
func (f *Factory) MakeMessage(kind MessageType, sessionID string, sender UserInfo, content []byte, extra string) Message {
	msg, err := f.NewMessage(kind, sessionID, sender, content, extra)
	if err != nil {
		f.log.Warn("Falling back to an empty message", "kind", int(kind), "session_id", sessionID, "error", err)
		return Message{}
	}
	return msg
}

// NewMessage dispatches on kind. extra is the display file name and is only
// read for FileType. Neither sessionID nor content is validated here.
func (f *Factory) NewMessage(kind MessageType, sessionID string, sender UserInfo, content []byte, extra string) (Message, error) {
	switch kind {
	case TextType:
		return f.makeTextMessage(sessionID, sender, content), nil
	case ImageType:
		return f.makeImageMessage(sessionID, sender, content), nil
	case FileType:
		return f.makeFileMessage(sessionID, sender, content, extra), nil
	case SpeechType:
		return f.makeSpeechMessage(sessionID, sender, content), nil
	default:
		return Message{}, fmt.Errorf("%w: %s (%d)", errors.ErrUnsupportedKind, kind, int(kind))
	}
}

// base performs the steps shared by every variant: id, time, session, sender, content.
func (f *Factory) base(kind MessageType, sessionID string, sender UserInfo, content []byte) Message {
	msg := Message{
		MessageID:     f.newID(),
		ChatSessionID: sessionID,
		CreatedAt:     f.clock(),
		MessageType:   kind,
		Sender:        sender,
		Content:       bytes.Clone(content),
	}
	f.log.Debug("Message created", "message_id", msg.MessageID, "kind", kind.String(), "session_id", sessionID)
	return msg
}

func (f *Factory) makeTextMessage(sessionID string, sender UserInfo, content []byte) Message {
	return f.base(TextType, sessionID, sender, content)
}

// Image, file and speech leave FileID empty until WithFileID is applied after upload.
func (f *Factory) makeImageMessage(sessionID string, sender UserInfo, content []byte) Message {
	return f.base(ImageType, sessionID, sender, content)
}

func (f *Factory) makeFileMessage(sessionID string, sender UserInfo, content []byte, fileName string) Message {
	msg := f.base(FileType, sessionID, sender, content)
	msg.FileName = fileName
	return msg
}

func (f *Factory) makeSpeechMessage(sessionID string, sender UserInfo, content []byte) Message {
	return f.base(SpeechType, sessionID, sender, content)
}
