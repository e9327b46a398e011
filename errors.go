// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import "errors"

var (
	// ErrUnknownDefaultType is returned when a key default has a type outside the known set.
	ErrUnknownDefaultType = errors.New("unknown default type")
	// ErrFormatItem is returned when one schema node fails to format.
	ErrFormatItem = errors.New("format item")
	// ErrReadInputFile is returned when input tree file loading fails.
	ErrReadInputFile = errors.New("read input file")
	// ErrDecodeInput is returned when input tree JSON or YAML decoding fails.
	ErrDecodeInput = errors.New("decode input")
	// ErrUnresolvedReference is returned when a node refers to an id that is not declared.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrBadExcludePattern is returned when an exclude pattern is malformed.
	ErrBadExcludePattern = errors.New("bad exclude pattern")
	// ErrDuplicateNodeID is returned when two nodes share one id.
	ErrDuplicateNodeID = errors.New("duplicate node id")
	// ErrUnknownRootRecord is returned when example root is not a declared record.
	ErrUnknownRootRecord = errors.New("unknown root record")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExampleJSON is returned when generated example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleYAML is returned when generated example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
	// ErrParseMacrosTemplate is returned when the built-in macro preamble fails to parse.
	ErrParseMacrosTemplate = errors.New("parse macros template")
	// ErrExecuteMacrosTemplate is returned when the macro preamble template execution fails.
	ErrExecuteMacrosTemplate = errors.New("execute macros template")
)
