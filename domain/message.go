// Package domain contains core concepts of the chat client.
// This file defines Message records and their per-variant rules.
// Messages are immutable: every change returns a new value.
package domain

import (
	"bytes"
	"chat-core/domain/stamp"
	"chat-core/errors"
	"time"
)

type MessageType int

const (
	TextType MessageType = iota
	ImageType
	FileType
	SpeechType
	UnknownType
)

func (t MessageType) String() string {
	switch t {
	case TextType:
		return "text"
	case ImageType:
		return "image"
	case FileType:
		return "file"
	case SpeechType:
		return "speech"
	default:
		return "unknown"
	}
}

// IsKnown reports whether the factory can build this kind.
func (t MessageType) IsKnown() bool {
	return t >= TextType && t < UnknownType
}

// CarriesFile reports whether the kind is expected to get a file id after upload.
func (t MessageType) CarriesFile() bool {
	return t == ImageType || t == FileType || t == SpeechType
}

// Message represents an immutable chat event.
//
// MessageID is opaque. FileID and FileName use the empty string as the "not
// applicable" sentinel: Text has neither, Image and Speech have no FileName,
// File carries whatever name the caller gave.
type Message struct {
	MessageID     string `validate:"required"`
	ChatSessionID string `validate:"required"`
	// CreatedAt is epoch seconds, the only value to order messages by.
	CreatedAt   int64 `validate:"required"`
	MessageType MessageType
	Sender      UserInfo
	Content     []byte
	FileID      string
	FileName    string
}

// Time is the display string of CreatedAt in local time.
func (m Message) Time() string {
	return stamp.FormatTimestamp(m.CreatedAt)
}

// TimeIn is the display string of CreatedAt in loc.
func (m Message) TimeIn(loc *time.Location) string {
	return stamp.FormatTimestampIn(m.CreatedAt, loc)
}

// IsZero reports whether m is the default value the total factory falls back to.
func (m Message) IsZero() bool {
	return m.MessageID == ""
}

// Clone returns a copy of m that shares no memory with it.
func (m Message) Clone() Message {
	m.Content = bytes.Clone(m.Content)
	m.Sender.Avatar.Data = bytes.Clone(m.Sender.Avatar.Data)
	return m
}

// WithFileID returns a copy of m carrying the id handed back by an upload.
// The receiver is left untouched.
func (m Message) WithFileID(fileID string) (Message, error) {
	if !m.MessageType.CarriesFile() {
		return m, errors.ErrFileIDNotApplicable
	}
	if fileID == "" {
		return m, errors.ErrEmptyFileID
	}
	if m.FileID != "" {
		return m, errors.ErrFileIDAlreadyAssigned
	}
	updated := m
	updated.FileID = fileID
	return updated, nil
}
