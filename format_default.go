// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import "fmt"

// FormatDefault renders a key default into tex.
//
// Values computed at read time are emitted followed by TypeNameMarker; the
// value text is LaTeX-escaped, so "a_b" becomes `a\_b\TypeName`. All other
// known types are capitalized and wrapped in angle brackets. The type is
// matched ignoring case and "-"/"_" separators ("value-at-read-time" equals
// DefaultReadTime). Unknown types fail with ErrUnknownDefaultType.
func FormatDefault(tex *TexList, def Default) error {
	text := valueText(def.Value)

	switch def.Type.normalize() {
	case DefaultReadTime:
		tex.AddEscaped(text)
		tex.Add(TypeNameMarker)
	case DefaultDeclaration, DefaultOptional, DefaultObligatory, DefaultGeneric:
		tex.TextLRAngle(capitalize(text))
	default:
		return fmt.Errorf("%w %q", ErrUnknownDefaultType, def.Type)
	}

	return nil
}
