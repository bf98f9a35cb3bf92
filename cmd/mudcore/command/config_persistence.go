package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// PersistenceConfig configures the World-State Persistence Manager
// (spec.md §4.8): where saves land and how often auto-save/backup fire.
type PersistenceConfig struct {
	Dir                 string `json:"dir"`
	KeepCount           int    `json:"keep_count"`
	AutoSaveEnabled     bool   `json:"auto_save_enabled"`
	AutoSaveInterval    string `json:"auto_save_interval"`
	BackupInterval      string `json:"backup_interval"`
	DirtyCountThreshold int    `json:"dirty_count_threshold"`
}

func (c *PersistenceConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Dir == "" {
		el.Add(fmt.Errorf("dir is required"))
	}

	if c.AutoSaveInterval != "" {
		if _, err := time.ParseDuration(c.AutoSaveInterval); err != nil {
			el.Add(fmt.Errorf("parsing auto_save_interval: %w", err))
		}
	}
	if c.BackupInterval != "" {
		if _, err := time.ParseDuration(c.BackupInterval); err != nil {
			el.Add(fmt.Errorf("parsing backup_interval: %w", err))
		}
	}

	return el.Err()
}

func (c *PersistenceConfig) autoSaveInterval() time.Duration {
	if c.AutoSaveInterval == "" {
		return 300 * time.Second
	}
	d, err := time.ParseDuration(c.AutoSaveInterval)
	if err != nil {
		return 300 * time.Second
	}
	return d
}

func (c *PersistenceConfig) backupInterval() time.Duration {
	if c.BackupInterval == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(c.BackupInterval)
	if err != nil {
		return time.Hour
	}
	return d
}
