package services

import (
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/media"
	"chat-core/storage"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/samber/lo"
)

type IMessageService interface {
	Compose(kind domain.MessageType, sessionID string, sender domain.UserInfo, content []byte, extra string) (domain.Message, error)
	ComposeFromFile(kind domain.MessageType, sessionID string, sender domain.UserInfo, path string) (domain.Message, error)
	AttachUpload(ctx context.Context, msg domain.Message) (domain.Message, error)
	SaveContent(msg domain.Message, dir string) (string, error)
}

// MessageService wires the message factory to the disk, media and upload
// collaborators. It never mutates a message in place.
type MessageService struct {
	log      *slog.Logger
	factory  *domain.Factory
	disk     *storage.Disk
	uploader contract.FileUploader
	dataDir  string
}

// NewMessageService builds the service. dataDir receives payloads saved
// without an explicit directory.
func NewMessageService(log *slog.Logger, factory *domain.Factory, disk *storage.Disk, uploader contract.FileUploader, dataDir string) *MessageService {
	return &MessageService{
		log:      log,
		factory:  factory,
		disk:     disk,
		uploader: uploader,
		dataDir:  dataDir,
	}
}

func (s *MessageService) Compose(kind domain.MessageType, sessionID string, sender domain.UserInfo, content []byte, extra string) (domain.Message, error) {
	msg, err := s.factory.NewMessage(kind, sessionID, sender, content, extra)
	if err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

// ComposeFromFile reads the payload at path. For FileType the base name of
// path becomes the display file name; ImageType payloads must decode.
func (s *MessageService) ComposeFromFile(kind domain.MessageType, sessionID string, sender domain.UserInfo, path string) (domain.Message, error) {
	if !kind.IsKnown() {
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedKind, kind)
	}
	content, err := s.disk.ReadBytes(path)
	if err != nil {
		return domain.Message{}, err
	}

	var extra string
	switch kind {
	case domain.FileType:
		extra = storage.FileName(path)
	case domain.ImageType:
		if _, err = media.DecodeIcon(content); err != nil {
			s.log.Warn("Refusing image message", "path", path, "error", err)
			return domain.Message{}, err
		}
	}
	return s.Compose(kind, sessionID, sender, content, extra)
}

// AttachUpload hands the payload to the uploader and returns msg carrying the
// assigned file id.
func (s *MessageService) AttachUpload(ctx context.Context, msg domain.Message) (domain.Message, error) {
	if !msg.MessageType.CarriesFile() {
		return msg, errors.ErrFileIDNotApplicable
	}
	if msg.FileID != "" {
		return msg, errors.ErrFileIDAlreadyAssigned
	}
	name := lo.CoalesceOrEmpty(msg.FileName, msg.MessageID)
	fileID, err := s.uploader.Upload(ctx, msg.ChatSessionID, name, msg.Content)
	if err != nil {
		return msg, fmt.Errorf("uploading message %s: %w", msg.MessageID, err)
	}
	updated, err := msg.WithFileID(fileID)
	if err != nil {
		return msg, err
	}
	s.log.Debug("File id assigned", "message_id", msg.MessageID, "file_id", fileID)
	return updated, nil
}

// SaveContent writes the payload of a non-text message under dir, or under
// the data directory when dir is empty, and returns the written path. The
// name is the file name, or the message id when the variant has none.
func (s *MessageService) SaveContent(msg domain.Message, dir string) (string, error) {
	if !msg.MessageType.CarriesFile() || len(msg.Content) == 0 {
		return "", fmt.Errorf("%w: message %s", errors.ErrNoContent, msg.MessageID)
	}
	name := storage.FileName(lo.CoalesceOrEmpty(msg.FileName, msg.MessageID))
	path := filepath.Join(lo.CoalesceOrEmpty(dir, s.dataDir), name)
	if err := s.disk.WriteBytes(path, msg.Content); err != nil {
		return "", err
	}
	return path, nil
}
