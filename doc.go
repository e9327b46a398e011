// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

/*
Package istdoc renders LaTeX reference markup from input type trees.

An input type tree describes a configuration schema as records (with keys and
their defaults), abstract records and selections. Every formatted node becomes
one LaTeX environment (RecordType, AbstractType or SelectionType) with a fixed
set of argument groups; the macros are defined by the preamble returned from
Macros.

Render directly from file:

	tex, err := istdoc.RenderFile("input_types.json", istdoc.Options{})
	if err != nil {
		return err
	}

	fmt.Print(tex)

Format an already built tree:

	nodes, err := istdoc.LoadFile("input_types.yaml", istdoc.Options{
		Exclude: []string{"Tmp*"},
	})
	if err != nil {
		return err
	}

	tex, err := istdoc.Format(nodes, istdoc.Options{WrapWidth: 100})
	if err != nil {
		return err
	}

	_, err = tex.WriteTo(os.Stdout)

Print macro preamble:

	preamble, err := istdoc.Macros(istdoc.MacrosOptions{})
	if err != nil {
		return err
	}

	fmt.Print(preamble)

Generate example input for one record:

	yamlExample, err := istdoc.GenerateExample(nodes, "Root", istdoc.ExampleModeRequired, istdoc.ExampleFormatYAML)
	if err != nil {
		return err
	}

	fmt.Print(string(yamlExample))
*/
package istdoc
