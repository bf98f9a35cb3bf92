package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pixil98/go-log/log"
)

const backupTimestampLayout = "20060102T150405Z"

// FileBackend is the default Backend: one JSON file per game under dir,
// written via a write-temp-then-rename atomic swap (spec.md §4.8),
// generalizing storage.FileStore's os.WriteFile write path. Backups live
// under dir/backups and are rotated beyond KeepCount.
type FileBackend struct {
	Dir       string
	KeepCount int
}

// NewFileBackend creates a FileBackend rooted at dir, with the spec's
// default retention of 10 backups, *enforced* (spec.md §9 flags the
// source's never-enforced retention as a bug this rewrite fixes).
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{Dir: dir, KeepCount: 10}
}

func (b *FileBackend) path(gameID string) string {
	return filepath.Join(b.Dir, fmt.Sprintf("%s_world_state.json", gameID))
}

func (b *FileBackend) backupsDir() string {
	return filepath.Join(b.Dir, "backups")
}

func (b *FileBackend) backupPath(gameID string, at time.Time) string {
	return filepath.Join(b.backupsDir(), fmt.Sprintf("%s_world_state_backup_%s.json", gameID, at.UTC().Format(backupTimestampLayout)))
}

// Save atomically writes blob to <dir>/<gameID>_world_state.json via a
// temp file + rename.
func (b *FileBackend) Save(ctx context.Context, gameID string, blob []byte) error {
	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return fmt.Errorf("creating save dir: %w", err)
	}

	final := b.path(gameID)
	tmp := final + ".tmp"

	if err := os.WriteFile(tmp, blob, 0644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, final); err != nil {
		return fmt.Errorf("renaming temp file into place: %w", err)
	}
	return nil
}

// Load reads a game's saved blob. The bool is false (with a nil error) if
// no save exists yet.
func (b *FileBackend) Load(ctx context.Context, gameID string) ([]byte, bool, error) {
	blob, err := os.ReadFile(b.path(gameID))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading save file: %w", err)
	}
	return blob, true, nil
}

// Delete removes a game's save file, if any.
func (b *FileBackend) Delete(ctx context.Context, gameID string) error {
	err := os.Remove(b.path(gameID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting save file: %w", err)
	}
	return nil
}

// List returns every known game id with a save file in Dir.
func (b *FileBackend) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(b.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing save dir: %w", err)
	}

	const suffix = "_world_state.json"
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), suffix))
	}
	sort.Strings(ids)
	return ids, nil
}

// Backup copies the current save file under backups/ with a UTC timestamp
// suffix, then trims the oldest beyond KeepCount (spec.md §4.8).
func (b *FileBackend) Backup(ctx context.Context, gameID string) error {
	blob, ok, err := b.Load(ctx, gameID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := os.MkdirAll(b.backupsDir(), 0755); err != nil {
		return fmt.Errorf("creating backups dir: %w", err)
	}

	dest := b.backupPath(gameID, time.Now())
	if err := os.WriteFile(dest, blob, 0644); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}

	return b.rotate(ctx, gameID)
}

func (b *FileBackend) rotate(ctx context.Context, gameID string) error {
	keep := b.KeepCount
	if keep <= 0 {
		keep = 10
	}

	entries, err := os.ReadDir(b.backupsDir())
	if err != nil {
		return fmt.Errorf("listing backups dir: %w", err)
	}

	prefix := gameID + "_world_state_backup_"
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names) // timestamp suffix sorts chronologically

	if len(names) <= keep {
		return nil
	}

	toRemove := names[:len(names)-keep]
	for _, name := range toRemove {
		if err := os.Remove(filepath.Join(b.backupsDir(), name)); err != nil {
			log.GetLogger(ctx).Errorf("trimming old backup %s: %s", name, err.Error())
		}
	}
	return nil
}
