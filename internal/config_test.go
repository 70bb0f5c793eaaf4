package internal

import (
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/mocks"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	for _, key := range []string{"LOG_LEVEL", "CHAT_TIME_ZONE", "CHAT_DATA_DIR"} {
		t.Setenv(key, "")
		req.NoError(os.Unsetenv(key))
	}

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("INFO", config.LogLevel)
	req.Equal("Local", config.TimeZone)
	req.Equal("data", config.DataDir)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CHAT_TIME_ZONE", "UTC")
	t.Setenv("CHAT_DATA_DIR", "/srv/chat")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("DEBUG", config.LogLevel)
	req.Equal("UTC", config.TimeZone)
	req.Equal("/srv/chat", config.DataDir)
	req.NotNil(config.Logger())
}

func TestConfig_Location(t *testing.T) {
	req := require.New(t)

	loc, err := Config{TimeZone: "Local"}.Location()
	req.NoError(err)
	req.Equal(time.Local, loc)

	loc, err = Config{TimeZone: "UTC"}.Location()
	req.NoError(err)
	req.Equal(time.UTC, loc)

	_, err = Config{TimeZone: "Mars/Olympus_Mons"}.Location()
	req.ErrorIs(err, errors.ErrInvalidTimeZone)
}

func TestNewMessageService(t *testing.T) {
	ctrl := gomock.NewController(t)
	uploader := mocks.NewMockFileUploader(ctrl)

	t.Run("should assemble a working service", func(t *testing.T) {
		req := require.New(t)

		svc, err := NewMessageService(Config{LogLevel: "DEBUG", TimeZone: "UTC"}, uploader)
		req.NoError(err)

		msg, err := svc.Compose(domain.TextType, "s-1", domain.UserInfo{UserID: "u-1"}, []byte("hi"), "")
		req.NoError(err)
		req.NoError(domain.ValidateMessage(msg))
	})

	t.Run("should fail fast on a bad time zone", func(t *testing.T) {
		_, err := NewMessageService(Config{LogLevel: "INFO", TimeZone: "Nowhere/Land"}, uploader)
		require.ErrorIs(t, err, errors.ErrInvalidTimeZone)
	})
}
