package storage

import (
	"chat-core/errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// Disk reads and writes whole files as byte slices. It is used to hydrate
// message content and avatars, and to persist received payloads.
type Disk struct {
	fs  afero.Fs
	log *slog.Logger
}

func NewDisk(fs afero.Fs, log *slog.Logger) *Disk {
	return &Disk{fs: fs, log: log}
}

// NewOSDisk is a Disk over the real filesystem.
func NewOSDisk(log *slog.Logger) *Disk {
	return NewDisk(afero.NewOsFs(), log)
}

// ReadBytes returns the whole content of path. Open failures wrap errors.ErrOpenFile.
func (d *Disk) ReadBytes(path string) ([]byte, error) {
	file, err := d.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrOpenFile, path, err)
	}
	defer file.Close()

	content, err := afero.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return content, nil
}

// WriteBytes truncates path and writes content to it, creating missing
// parent directories.
func (d *Disk) WriteBytes(path string, content []byte) error {
	if err := d.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrOpenFile, path, err)
	}
	file, err := d.fs.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrOpenFile, path, err)
	}
	if _, err = file.Write(content); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return file.Close()
}

// LoadBytes is ReadBytes that swallows the failure: it logs and returns nil.
func (d *Disk) LoadBytes(path string) []byte {
	content, err := d.ReadBytes(path)
	if err != nil {
		d.log.Error("File open failed", "path", path, "error", err)
		return nil
	}
	return content
}

// StoreBytes is WriteBytes that swallows the failure after logging it.
func (d *Disk) StoreBytes(path string, content []byte) {
	if err := d.WriteBytes(path, content); err != nil {
		d.log.Error("File write failed", "path", path, "error", err)
	}
}

// FileName returns the last element of path, e.g. "report.pdf".
func FileName(path string) string {
	return filepath.Base(path)
}
