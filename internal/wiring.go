package internal

import (
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/services"
	"chat-core/storage"
)

// NewMessageService assembles the service over the OS filesystem with the
// configured logger and data directory. The zone is checked here so a bad CHAT_TIME_ZONE fails
// at startup rather than at the first rendered timestamp.
func NewMessageService(config Config, uploader contract.FileUploader) (*services.MessageService, error) {
	if _, err := config.Location(); err != nil {
		return nil, err
	}
	log := config.Logger()
	return services.NewMessageService(log, domain.NewFactory(log), storage.NewOSDisk(log), uploader, config.DataDir), nil
}
