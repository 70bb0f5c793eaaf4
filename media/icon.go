// Package media turns raw bytes into the opaque image handles the domain
// carries in avatars, and sniffs the payload type of message content.
package media

import (
	"bytes"
	"chat-core/domain"
	"chat-core/domain/mimetypes"
	"chat-core/errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeIcon sniffs data and reads its dimensions. Only formats registered
// with the image package (png, jpeg, gif, bmp, webp) are accepted.
func DecodeIcon(data []byte) (domain.Icon, error) {
	if len(data) == 0 {
		return domain.Icon{}, fmt.Errorf("%w: empty payload", errors.ErrInvalidImage)
	}
	detected := DetectContent(data)
	if !detected.IsImage() {
		return domain.Icon{}, fmt.Errorf("%w: detected %s", errors.ErrInvalidImage, detected)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.Icon{}, fmt.Errorf("%w: %w", errors.ErrInvalidImage, err)
	}
	return domain.Icon{
		Data:   bytes.Clone(data),
		MIME:   detected,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// MakeIcon is DecodeIcon without the error: undecodable bytes give the null icon.
func MakeIcon(data []byte) domain.Icon {
	icon, err := DecodeIcon(data)
	if err != nil {
		return domain.Icon{}
	}
	return icon
}

// DetectContent returns the sniffed media type of content without parameters.
func DetectContent(content []byte) mimetypes.MIME {
	return mimetypes.ToMIME(mimetype.Detect(content).String())
}

// ImageOf decodes the payload of an image message.
func ImageOf(msg domain.Message) (domain.Icon, error) {
	if msg.MessageType != domain.ImageType {
		return domain.Icon{}, fmt.Errorf("%w: message %s is %s", errors.ErrInvalidImage, msg.MessageID, msg.MessageType)
	}
	return DecodeIcon(msg.Content)
}
