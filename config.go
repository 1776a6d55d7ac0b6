// config.go
// Copyright (C) 2024 Mike Werezak

// This file loads the optional TOML configuration shared by the
// command line tool and the HTTP service.

package scrabble

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tool's settings. Every field has a working
// zero-config default; a config file and command line flags both
// override it.
type Config struct {
	// Wordlist is the path of the newline-delimited word list
	Wordlist string `toml:"wordlist"`
	// Limit caps the number of results returned per query;
	// zero means unbounded
	Limit int `toml:"limit"`
	// Port is the HTTP service listen port
	Port string `toml:"port"`
}

// DefaultConfig returns the builtin defaults
func DefaultConfig() Config {
	return Config{
		Wordlist: "wordlist.txt",
		Limit:    0,
		Port:     "8080",
	}
}

// LoadConfig reads a TOML config file over the builtin defaults.
// A path of "" or a missing file yields the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return config, fmt.Errorf("config file %s: %w", path, err)
	}
	return config, nil
}
