package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if config.Size != 30 || config.Delay != 2*time.Second || config.RandomProbability != 0.2 {
		t.Errorf("unexpected defaults: %+v", config)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"size": 12, "delay": 500000000, "workers": 4, "seed": 9}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Size != 12 || config.Delay != 500*time.Millisecond || config.Workers != 4 || config.Seed != 9 {
		t.Errorf("fields not loaded: %+v", config)
	}
	// Unset fields keep their defaults
	if config.RandomProbability != 0.2 || config.StartDelay != time.Second {
		t.Errorf("defaults not kept: %+v", config)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("cause should be a not-exist error, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"size": `)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"size": -3}`))
	if errors.Cause(err) != ErrInvalidConfig {
		t.Errorf("cause = %v, want ErrInvalidConfig", errors.Cause(err))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative delay", func(c *Config) { c.Delay = -time.Second }},
		{"negative start delay", func(c *Config) { c.StartDelay = -1 }},
		{"probability below zero", func(c *Config) { c.RandomProbability = -0.1 }},
		{"probability above one", func(c *Config) { c.RandomProbability = 1.5 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
