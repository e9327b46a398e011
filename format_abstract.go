// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

// formatAbstractRecord renders one AbstractType environment with a Descendant
// item per implementation.
func formatAbstractRecord(tex *TexList, abstract *AbstractRecord, addDoc DocHook) error {
	tex.Begin("AbstractType")

	groups := []func() error{
		func() error {
			tex.HyperB(abstract.NodeID(), abstract.Name)
			return nil
		},
		func() error {
			if abstract.DefaultDescendant != nil {
				tex.ALink(*abstract.DefaultDescendant)
			}

			return nil
		},
		func() error {
			if addDoc != nil {
				addDoc(tex, abstract)
			}

			return nil
		},
		func() error {
			tex.Description(abstract.Description)
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

	for _, impl := range abstract.Implementations {
		tex.Newline()
		tex.Tab(2)
		err := tex.Item("Descendant", func() error {
			return tex.Group(func() error {
				tex.ALink(impl)
				return nil
			})
		})
		if err != nil {
			return err
		}
	}

	tex.Newline()
	tex.End("AbstractType")
	return nil
}
