// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import (
	"io"
	"strings"
)

const (
	// TypeNameMarker follows raw values computed at read time.
	TypeNameMarker = `\TypeName`
	// linkSeparator separates consecutive links inside one group.
	linkSeparator = ", "
)

// TexList is an ordered buffer of LaTeX markup fragments.
//
// Groups are balanced: Group always emits the closing brace, also when its body
// fails or returns early.
type TexList struct {
	parts        []string
	anchorPrefix string
	wrapWidth    int
}

// NewTexList creates an empty buffer using anchor and wrapping settings from options.
func NewTexList(opt Options) *TexList {
	return &TexList{
		anchorPrefix: normalizeAnchorPrefix(opt.AnchorPrefix),
		wrapWidth:    normalizeWrapWidth(opt.WrapWidth),
	}
}

// child returns an empty buffer sharing settings with tex.
func (tex *TexList) child() *TexList {
	return &TexList{
		anchorPrefix: tex.anchorPrefix,
		wrapWidth:    tex.wrapWidth,
	}
}

// Add appends raw markup fragments.
func (tex *TexList) Add(fragments ...string) {
	tex.parts = append(tex.parts, fragments...)
}

// AddEscaped appends plain text with LaTeX special characters escaped.
func (tex *TexList) AddEscaped(text string) {
	tex.parts = append(tex.parts, escapeLatex(text))
}

// Extend appends all fragments of other buffer.
func (tex *TexList) Extend(other *TexList) {
	if other == nil {
		return
	}

	tex.parts = append(tex.parts, other.parts...)
}

// Begin opens a LaTeX environment.
func (tex *TexList) Begin(name string) {
	tex.Add(`\begin{` + name + `}`)
}

// End closes a LaTeX environment and terminates the line.
func (tex *TexList) End(name string) {
	tex.Add(`\end{`+name+`}`, "\n")
}

// Group wraps markup emitted by body into one brace-delimited macro argument.
func (tex *TexList) Group(body func() error) error {
	tex.Add("{")
	defer tex.Add("}")

	if body == nil {
		return nil
	}

	return body()
}

// Item emits a macro call by name followed by argument groups written in body.
func (tex *TexList) Item(name string, body func() error) error {
	tex.Add(`\` + name)
	if body == nil {
		return nil
	}

	return body()
}

// Newline starts a new line of generated source.
func (tex *TexList) Newline() {
	tex.Add("\n")
}

// Tab indents generated source by count tabs.
func (tex *TexList) Tab(count int) {
	if count <= 0 {
		return
	}

	tex.Add(strings.Repeat("\t", count))
}

// HyperB emits a named hyperlink target.
func (tex *TexList) HyperB(id, name string) {
	tex.Add(`\hyperB{`+tex.anchor(id)+`}{`, escapeLatex(name), "}")
}

// ALink emits a cross-reference link to ref.
func (tex *TexList) ALink(ref Reference) {
	name := ref.Name
	if name == "" {
		name = ref.ID
	}

	tex.Add(`\Alink{`+tex.anchor(ref.ID)+`}{`, escapeLatex(name), "}")
}

// ALinks emits links to all refs separated by commas.
func (tex *TexList) ALinks(refs []Reference) {
	for index, ref := range refs {
		if index > 0 {
			tex.Add(linkSeparator)
		}

		tex.ALink(ref)
	}
}

// TextLRAngle emits text wrapped in angle brackets.
func (tex *TexList) TextLRAngle(text string) {
	tex.Add(`\textlangle{`, escapeLatex(text), `}\textrangle`)
}

// Description emits rendered free text.
func (tex *TexList) Description(text string) {
	if rendered := renderDescription(text, tex.wrapWidth); rendered != "" {
		tex.Add(rendered)
	}
}

// Parts returns a copy of buffered fragments.
func (tex *TexList) Parts() []string {
	out := make([]string, len(tex.parts))
	copy(out, tex.parts)
	return out
}

// Len returns number of buffered fragments.
func (tex *TexList) Len() int {
	return len(tex.parts)
}

// String joins all fragments into LaTeX source.
func (tex *TexList) String() string {
	var out strings.Builder
	for _, part := range tex.parts {
		out.WriteString(part)
	}

	return out.String()
}

// WriteTo writes LaTeX source to w.
func (tex *TexList) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, part := range tex.parts {
		n, err := io.WriteString(w, part)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// anchor builds prefixed hyperlink target name.
func (tex *TexList) anchor(id string) string {
	return tex.anchorPrefix + sanitizeAnchor(id)
}
