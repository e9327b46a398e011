// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// latexEscaper replaces characters with special meaning in LaTeX text mode.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`_`, `\_`,
	`^`, `\^{}`,
	`~`, `\textasciitilde{}`,
)

// escapeLatex escapes plain text for LaTeX output.
func escapeLatex(text string) string {
	return latexEscaper.Replace(text)
}

// sanitizeAnchor encodes an id into a hyperlink target name.
//
// ASCII letters, digits and ":._" are kept; every other byte, including "-",
// becomes "-XX" with its upper-case hex value, so distinct ids never share
// a target.
func sanitizeAnchor(id string) string {
	id = strings.TrimSpace(id)

	var out strings.Builder
	out.Grow(len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			out.WriteByte(c)
		case c == ':', c == '.', c == '_':
			out.WriteByte(c)
		default:
			out.WriteByte('-')
			out.WriteByte(anchorHex[c>>4])
			out.WriteByte(anchorHex[c&0x0f])
		}
	}

	return out.String()
}

// anchorHex holds digits for escaped anchor bytes.
const anchorHex = "0123456789ABCDEF"

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(value string) string {
	if value == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(r)) + strings.ToLower(value[size:])
}

// valueText converts a default value into its textual form.
func valueText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		if typed == math.Trunc(typed) && math.Abs(typed) < 1e15 {
			return strconv.FormatInt(int64(typed), 10)
		}

		return strconv.FormatFloat(typed, 'g', -1, 64)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32:
		return fmt.Sprint(typed)
	case json.Number:
		return typed.String()
	default:
		return mustJSONInline(typed)
	}
}

// mustJSONInline marshals values as single-line JSON text.
func mustJSONInline(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// renderDescription converts free text into escaped LaTeX paragraphs.
func renderDescription(text string, wrapWidth int) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	paragraphs := splitParagraphs(text)
	out := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		lines := wrapParagraph(paragraph, wrapWidth)
		if len(lines) == 0 {
			continue
		}

		out = append(out, renderInline(strings.Join(lines, "\n")))
	}

	return strings.Join(out, "\n\n")
}

// splitParagraphs splits text on blank lines.
func splitParagraphs(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, 2)
	current := make([]string, 0, len(lines))

	flush := func() {
		if len(current) == 0 {
			return
		}

		out = append(out, strings.Join(current, " "))
		current = current[:0]
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}

		current = append(current, trimmed)
	}

	flush()
	return out
}

// renderInline escapes text and converts markdown code spans and strong emphasis.
func renderInline(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	for text != "" {
		switch {
		case strings.HasPrefix(text, "`"):
			end := strings.Index(text[1:], "`")
			if end < 0 {
				out.WriteString(escapeLatex(text))
				return out.String()
			}

			out.WriteString(`\texttt{` + escapeLatex(text[1:1+end]) + `}`)
			text = text[end+2:]
		case strings.HasPrefix(text, "**"):
			end := strings.Index(text[2:], "**")
			if end <= 0 {
				out.WriteString("**")
				text = text[2:]
				continue
			}

			out.WriteString(`\textbf{` + escapeLatex(text[2:2+end]) + `}`)
			text = text[end+4:]
		default:
			next := strings.IndexAny(text, "`*")
			switch {
			case next < 0:
				out.WriteString(escapeLatex(text))
				return out.String()
			case next == 0:
				out.WriteString(text[:1])
				text = text[1:]
			default:
				out.WriteString(escapeLatex(text[:next]))
				text = text[next:]
			}
		}
	}

	return out.String()
}

// wrapParagraph wraps one plain paragraph to max rune width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	out = append(out, current)
	return out
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}
