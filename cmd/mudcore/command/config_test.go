package command

import (
	"os"
	"testing"

	"github.com/pixil98/go-testutil"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		GameID:          "game-1",
		DefaultEntityID: "hero",
		DefaultLocation: "village_1",
		TickInterval:    "2s",
		Storage:         StorageConfig{CatalogDir: dir},
		Persistence:     PersistenceConfig{Dir: dir},
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(c *Config)
		wantErr bool
	}{
		"valid config": {
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		"missing game id": {
			mutate:  func(c *Config) { c.GameID = "" },
			wantErr: true,
		},
		"missing default entity": {
			mutate:  func(c *Config) { c.DefaultEntityID = "" },
			wantErr: true,
		},
		"bad tick interval": {
			mutate:  func(c *Config) { c.TickInterval = "not-a-duration" },
			wantErr: true,
		},
		"tick interval too short": {
			mutate:  func(c *Config) { c.TickInterval = "100ms" },
			wantErr: true,
		},
		"missing catalog dir": {
			mutate:  func(c *Config) { c.Storage.CatalogDir = "" },
			wantErr: true,
		},
		"nonexistent catalog dir": {
			mutate:  func(c *Config) { c.Storage.CatalogDir = "/nonexistent/path/xyz" },
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig(t)
			tc.mutate(cfg)
			err := cfg.Validate()
			testutil.AssertEqual(t, "has error", err != nil, tc.wantErr)
		})
	}
}

func TestPersistenceConfig_DefaultsWhenUnset(t *testing.T) {
	c := &PersistenceConfig{Dir: os.TempDir()}
	if c.autoSaveInterval().Seconds() != 300 {
		t.Fatalf("expected default auto-save interval of 300s, got %v", c.autoSaveInterval())
	}
	if c.backupInterval().Hours() != 1 {
		t.Fatalf("expected default backup interval of 1h, got %v", c.backupInterval())
	}
}

func TestLLMConfig_DefaultsToMockClient(t *testing.T) {
	c := &LLMConfig{}
	client := c.newClient()
	if client == nil {
		t.Fatal("expected a non-nil default client")
	}
}
