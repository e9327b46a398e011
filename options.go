// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import (
	"log/slog"
	"strings"
)

const (
	// defaultAnchorPrefix prefixes every hyperlink target and link.
	defaultAnchorPrefix = "IT::"
	// defaultWrapWidth wraps description paragraphs at this width.
	defaultWrapWidth = 80
)

// DocHook emits supplementary documentation markup for an abstract record.
type DocHook func(tex *TexList, node *AbstractRecord)

// Options configures loading and LaTeX rendering.
type Options struct {
	// AnchorPrefix prefixes hyperlink targets (default "IT::").
	AnchorPrefix string
	// WrapWidth wraps description lines; negative disables wrapping (default 80).
	WrapWidth int
	// Exclude lists path.Match patterns; loaded nodes with matching names are not formatted.
	Exclude []string
	// Logger receives progress notes; nil discards them.
	Logger *slog.Logger
	// AddDoc fills the supplementary documentation group of abstract records.
	AddDoc DocHook
}

// logger returns configured logger or a discarding one.
func (opt Options) logger() *slog.Logger {
	if opt.Logger != nil {
		return opt.Logger
	}

	return slog.New(slog.DiscardHandler)
}

// normalizeAnchorPrefix trims prefix and falls back to default.
func normalizeAnchorPrefix(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultAnchorPrefix
	}

	return value
}

// normalizeWrapWidth falls back to default for zero and disables wrapping for negative values.
func normalizeWrapWidth(value int) int {
	switch {
	case value == 0:
		return defaultWrapWidth
	case value < 0:
		return 0
	default:
		return value
	}
}
