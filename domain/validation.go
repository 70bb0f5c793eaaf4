package domain

import (
	"chat-core/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(messageVariantRules, Message{})
	return v
}

// messageVariantRules enforces the sentinel fields of each variant.
func messageVariantRules(sl validator.StructLevel) {
	msg := sl.Current().Interface().(Message)
	switch msg.MessageType {
	case TextType:
		if msg.FileID != "" {
			sl.ReportError(msg.FileID, "FileID", "FileID", "empty_for_text", "")
		}
		if msg.FileName != "" {
			sl.ReportError(msg.FileName, "FileName", "FileName", "empty_for_text", "")
		}
	case ImageType, SpeechType:
		if msg.FileName != "" {
			sl.ReportError(msg.FileName, "FileName", "FileName", "empty_for_media", "")
		}
	case FileType:
		// The name is caller-supplied and may be empty.
	default:
		sl.ReportError(msg.MessageType, "MessageType", "MessageType", "known_kind", "")
	}
}

// ValidateMessage checks a message handed in from outside the factory, or
// detects the factory's empty fallback. Errors wrap errors.ErrInvalidMessage.
func ValidateMessage(msg Message) error {
	if err := validate.Struct(msg); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidMessage, err)
	}
	return nil
}
