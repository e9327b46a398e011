// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/istdoc"
)

// fileConfig holds render settings read from a YAML config file.
type fileConfig struct {
	AnchorPrefix string   `yaml:"anchor_prefix"`
	WrapWidth    int      `yaml:"wrap_width"`
	Exclude      []string `yaml:"exclude"`
}

// loadFileConfig reads config file; empty path yields zero config.
func loadFileConfig(path string) (fileConfig, error) {
	var config fileConfig

	path = strings.TrimSpace(path)
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config file %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("decode config file %q: %w", path, err)
	}

	return config, nil
}

// options merges config file values with flags; explicit flags win and exclude patterns add up.
func (config fileConfig) options(renderFlags texRenderFlags) istdoc.Options {
	options := istdoc.Options{
		AnchorPrefix: config.AnchorPrefix,
		WrapWidth:    config.WrapWidth,
	}

	if strings.TrimSpace(renderFlags.AnchorPrefix) != "" {
		options.AnchorPrefix = renderFlags.AnchorPrefix
	}

	if renderFlags.WrapWidth != 0 {
		options.WrapWidth = renderFlags.WrapWidth
	}

	options.Exclude = make([]string, 0, len(config.Exclude)+len(renderFlags.Exclude))
	options.Exclude = append(options.Exclude, config.Exclude...)
	options.Exclude = append(options.Exclude, renderFlags.Exclude...)
	return options
}
