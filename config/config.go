// Copyright 2024 - 2026, the gettext authors
// SPDX-License-Identifier: MIT

// Package config loads merge settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"

	"github.com/olafura/gettext/catalog"
)

// Config mirrors the on-disk YAML settings file.
type Config struct {
	// ProtectedPattern is a regular expression over source reference paths.
	// Entries with a matching reference survive purging even when
	// autogenerated.
	ProtectedPattern string `yaml:"protectedPattern"`

	// MarkObsoleteFuzzy flags surviving obsolete entries for human review.
	MarkObsoleteFuzzy bool `yaml:"markObsoleteFuzzy"`
}

// Load reads the settings file at path and compiles it into merge options.
// A missing file is not an error; it yields the zero options, meaning no
// protection and no fuzzy marking.
func Load(path string) (catalog.Options, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return catalog.Options{}, nil
	}

	if err != nil {
		return catalog.Options{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return catalog.Options{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg.Options()
}

// Options compiles the raw settings into merge options.
func (c Config) Options() (catalog.Options, error) {
	opts := catalog.Options{MarkObsoleteFuzzy: c.MarkObsoleteFuzzy}

	if c.ProtectedPattern != "" {
		re, err := regexp.Compile(c.ProtectedPattern)
		if err != nil {
			return catalog.Options{}, fmt.Errorf("invalid protectedPattern: %w", err)
		}

		opts.Protected = re
	}

	return opts, nil
}
