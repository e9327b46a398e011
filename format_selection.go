// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import "fmt"

// formatSelection renders one SelectionType environment with a KeyItem per value.
func formatSelection(tex *TexList, selection *Selection) error {
	tex.Begin("SelectionType")

	groups := []func() error{
		func() error {
			tex.HyperB(selection.NodeID(), selection.Name)
			return nil
		},
		func() error {
			tex.Description(selection.Description)
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

	for _, value := range selection.Values {
		tex.Newline()
		tex.Newline()
		tex.Tab(2)
		err := tex.Item("KeyItem", func() error {
			return formatSelectionValue(tex, selection, value)
		})
		if err != nil {
			return fmt.Errorf("value %q: %w", value.Name, err)
		}
	}

	tex.Newline()
	tex.End("SelectionType")
	return nil
}

// formatSelectionValue renders two argument groups of one value KeyItem.
func formatSelectionValue(tex *TexList, selection *Selection, value SelectionValue) error {
	valueID := value.ID
	if valueID == "" {
		valueID = memberID(selection.NodeID(), value.Name)
	}

	groups := []func() error{
		func() error {
			tex.HyperB(valueID, value.Name)
			return nil
		},
		func() error {
			tex.Description(value.Description)
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
