// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// defaultReadTimeLabel annotates values computed at read time.
const defaultReadTimeLabel = "read time"

// templateFS stores the built-in LaTeX macro preamble.
//
//go:embed templates/macros.tex.gotmpl
var templateFS embed.FS

// macrosTemplatePath is the embedded preamble template path.
const macrosTemplatePath = "templates/macros.tex.gotmpl"

// MacrosOptions configures the macro preamble.
type MacrosOptions struct {
	// ReadTimeLabel is printed by \TypeName after read time values.
	ReadTimeLabel string
}

// macrosView is the view model passed to the preamble template.
type macrosView struct {
	ReadTimeLabel string
}

// Macros renders the LaTeX preamble defining every macro emitted by Format.
func Macros(opt MacrosOptions) (string, error) {
	data, err := templateFS.ReadFile(macrosTemplatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParseMacrosTemplate, err)
	}

	parsed, err := template.New("macros").Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParseMacrosTemplate, err)
	}

	label := sanitizeText(opt.ReadTimeLabel)
	if label == "" {
		label = defaultReadTimeLabel
	}

	var out strings.Builder
	if err := parsed.Execute(&out, macrosView{ReadTimeLabel: escapeLatex(label)}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMacrosTemplate, err)
	}

	return out.String(), nil
}
