// Package domain contains core concepts of the chat client.
// This file defines user identity snapshots and the avatar handle.
// No runtime, network, or UI logic should be added here.
package domain

import "chat-core/domain/mimetypes"

// Icon is an opaque decoded image handle. The zero value is the null icon.
type Icon struct {
	Data   []byte
	MIME   mimetypes.MIME
	Width  int
	Height int
}

func (i Icon) IsZero() bool {
	return len(i.Data) == 0
}

// UserInfo is copied by value wherever it is embedded, so a later profile
// change never rewrites historical messages.
type UserInfo struct {
	UserID      string
	Nickname    string
	Description string
	Phone       string
	Avatar      Icon
}

// IsZero reports the "unset" sentinel: an empty UserID.
func (u UserInfo) IsZero() bool {
	return u.UserID == ""
}
