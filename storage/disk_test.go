package storage

import (
	"chat-core/errors"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newMemDisk(t *testing.T) (*Disk, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewDisk(fs, logs.GetLoggerFromLevel(slog.LevelDebug)), fs
}

func TestDisk_WriteThenRead(t *testing.T) {
	req := require.New(t)
	disk, _ := newMemDisk(t)
	content := []byte{0x00, 0x01, 0xfe, 0xff}

	req.NoError(disk.WriteBytes("/avatars/alice.png", content))
	got, err := disk.ReadBytes("/avatars/alice.png")

	req.NoError(err)
	req.Equal(content, got)
}

func TestDisk_WriteTruncates(t *testing.T) {
	req := require.New(t)
	disk, _ := newMemDisk(t)

	req.NoError(disk.WriteBytes("/a.txt", []byte("a much longer first version")))
	req.NoError(disk.WriteBytes("/a.txt", []byte("short")))

	got, err := disk.ReadBytes("/a.txt")
	req.NoError(err)
	req.Equal([]byte("short"), got)
}

func TestDisk_WriteCreatesParents(t *testing.T) {
	req := require.New(t)
	disk, fs := newMemDisk(t)

	req.NoError(disk.WriteBytes("/data/s-1/voice.amr", []byte("v")))

	exists, err := afero.DirExists(fs, "/data/s-1")
	req.NoError(err)
	req.True(exists)
}

func TestDisk_ReadMissingFile(t *testing.T) {
	req := require.New(t)
	disk, _ := newMemDisk(t)

	got, err := disk.ReadBytes("/missing.bin")

	req.ErrorIs(err, errors.ErrOpenFile)
	req.Nil(got)
}

func TestDisk_LoadBytes_SwallowsFailure(t *testing.T) {
	req := require.New(t)
	disk, fs := newMemDisk(t)

	req.Empty(disk.LoadBytes("/missing.bin"))

	req.NoError(afero.WriteFile(fs, "/present.bin", []byte("ok"), 0o644))
	req.Equal([]byte("ok"), disk.LoadBytes("/present.bin"))
}

func TestDisk_StoreBytes_SwallowsFailure(t *testing.T) {
	req := require.New(t)
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	disk := NewDisk(fs, logs.GetLoggerFromLevel(slog.LevelDebug))

	req.NotPanics(func() { disk.StoreBytes("/denied.bin", []byte("x")) })
	req.ErrorIs(disk.WriteBytes("/denied.bin", []byte("x")), errors.ErrOpenFile)
}

func TestFileName(t *testing.T) {
	req := require.New(t)

	req.Equal("report.pdf", FileName("/home/alice/docs/report.pdf"))
	req.Equal("report.pdf", FileName("report.pdf"))
}
