// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import "fmt"

// formatRecord renders one RecordType environment:
//
//	\begin{RecordType}
//		{<hypertarget>}
//		{<implemented abstract records>}
//		{<conversion key>}
//		{}
//		{<description>}
//
//			\KeyItem
//				{<hypertarget>}
//				{<type>}
//				{<default>}
//				{}
//				{<description>}
//	\end{RecordType}
func formatRecord(tex *TexList, record *Record) error {
	tex.Begin("RecordType")

	groups := []func() error{
		func() error {
			tex.HyperB(record.NodeID(), record.Name)
			return nil
		},
		func() error {
			tex.ALinks(record.Implements)
			return nil
		},
		func() error {
			if record.ReducibleToKey != nil {
				tex.ALink(*record.ReducibleToKey)
			}

			return nil
		},
		// reserved for a link into hand written text
		nil,
		func() error {
			tex.Description(record.Description)
			return nil
		},
	}

	for _, group := range groups {
		tex.Newline()
		tex.Tab(1)
		if err := tex.Group(group); err != nil {
			return err
		}
	}

	for _, key := range record.Keys {
		tex.Newline()
		tex.Newline()
		tex.Tab(2)
		err := tex.Item("KeyItem", func() error {
			return formatRecordKey(tex, record, key)
		})
		if err != nil {
			return fmt.Errorf("key %q: %w", key.Name, err)
		}
	}

	tex.Newline()
	tex.End("RecordType")
	return nil
}

// formatRecordKey renders five argument groups of one KeyItem.
func formatRecordKey(tex *TexList, record *Record, key RecordKey) error {
	keyID := key.ID
	if keyID == "" {
		keyID = memberID(record.NodeID(), key.Name)
	}

	groups := []func() error{
		func() error {
			tex.HyperB(keyID, key.Name)
			return nil
		},
		func() error {
			formatKeyType(tex, key.Type)
			return nil
		},
		func() error {
			return FormatDefault(tex, key.Default)
		},
		nil,
		func() error {
			tex.Description(key.Description)
			return nil
		},
	}

	for _, group := range groups {
		tex.Newline()
		tex.Tab(3)
		if err := tex.Group(group); err != nil {
			return err
		}
	}

	return nil
}

// formatKeyType emits type label and, for main types, a link to the type.
func formatKeyType(tex *TexList, ref Reference) {
	tex.AddEscaped(capitalize(ref.InputType.String()))
	if !ref.InputType.IsMain() {
		return
	}

	tex.Add(": ")
	tex.ALink(ref)
}
