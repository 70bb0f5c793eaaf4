package errors

import "fmt"

var (
	ErrUnsupportedKind       = fmt.Errorf("unsupported message kind")
	ErrFileIDNotApplicable   = fmt.Errorf("message kind does not carry a file id")
	ErrEmptyFileID           = fmt.Errorf("file id is empty")
	ErrFileIDAlreadyAssigned = fmt.Errorf("file id already assigned")
	ErrInvalidMessage        = fmt.Errorf("invalid message")
	ErrSessionMismatch       = fmt.Errorf("message belongs to another session")
	ErrInvalidImage          = fmt.Errorf("content is not a decodable image")
	ErrOpenFile              = fmt.Errorf("file open failed")
	ErrNoContent             = fmt.Errorf("message has no content to save")
	ErrInvalidTimeZone       = fmt.Errorf("invalid time zone")
)
