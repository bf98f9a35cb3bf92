package persistence

import (
	"context"
	"time"

	"github.com/pixil98/go-log/log"
)

// ShouldAutoSave reports whether an auto-save is due, per spec.md §4.8:
// enabled, an active session, at least one dirty section, and either no
// prior save, the interval has elapsed, or enough sections have gone dirty
// to warrant saving early.
func (m *Manager) ShouldAutoSave() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.AutoSaveEnabled || !m.activeSession || !m.dirty.any() {
		return false
	}
	if m.lastSaveAt.IsZero() {
		return true
	}
	if time.Since(m.lastSaveAt) >= m.AutoSaveInterval {
		return true
	}
	return m.dirty.count() >= m.DirtyCountThreshold
}

// ShouldBackup reports whether a backup rotation is due: an active session
// and either no prior backup or the backup interval has elapsed.
func (m *Manager) ShouldBackup() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.activeSession {
		return false
	}
	if m.lastBackupAt.IsZero() {
		return true
	}
	return time.Since(m.lastBackupAt) >= m.BackupInterval
}

// Start drives auto-save and backup on independent tickers until ctx is
// canceled, mirroring the teacher's MudDriver.Start tick loop generalized
// to two timers instead of one (spec.md §4.8/§5). The signature matches
// service.Worker so a Manager can be registered directly in a WorkerList.
func (m *Manager) Start(ctx context.Context) error {
	saveTicker := time.NewTicker(tickInterval(m.AutoSaveInterval))
	defer saveTicker.Stop()
	backupTicker := time.NewTicker(tickInterval(m.BackupInterval))
	defer backupTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-saveTicker.C:
			if m.ShouldAutoSave() {
				if err := m.Save(ctx, true); err != nil {
					log.GetLogger(ctx).Errorf("auto-save for %s failed: %s", m.GameID, err.Error())
				}
			}
		case <-backupTicker.C:
			if m.ShouldBackup() {
				if err := m.Backend.Backup(ctx, m.GameID); err != nil {
					log.GetLogger(ctx).Errorf("backup for %s failed: %s", m.GameID, err.Error())
					continue
				}
				m.mu.Lock()
				m.lastBackupAt = time.Now().UTC()
				m.mu.Unlock()
			}
		}
	}
}

// tickInterval clamps a check interval to something reasonably fine-grained
// relative to the configured save/backup interval, so ShouldAutoSave's
// dirty-count early trigger is noticed promptly rather than only once per
// full interval.
func tickInterval(configured time.Duration) time.Duration {
	if configured <= 0 {
		return 30 * time.Second
	}
	tick := configured / 10
	if tick < time.Second {
		tick = time.Second
	}
	return tick
}
