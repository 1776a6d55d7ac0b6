// config_test.go
// Copyright (C) 2024 Mike Werezak

package scrabble

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}
	if config != DefaultConfig() {
		t.Errorf("Empty path should yield the defaults, got %+v", config)
	}
	// A missing file also yields the defaults
	config, err = LoadConfig("no/such/config.toml")
	if err != nil || config != DefaultConfig() {
		t.Errorf("Missing file should yield the defaults, got %+v, %v", config, err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "wordlist = \"/opt/words.txt\"\nlimit = 25\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Wordlist != "/opt/words.txt" || config.Limit != 25 {
		t.Errorf("Config = %+v", config)
	}
	// Unset fields keep their defaults
	if config.Port != DefaultConfig().Port {
		t.Errorf("Port = %q, want the default %q", config.Port, DefaultConfig().Port)
	}
}
