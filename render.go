// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import (
	"fmt"
	"os"
)

// RenderFile reads an input tree from file and renders LaTeX markup.
func RenderFile(path string, opt Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInputFile, err)
	}

	return Render(data, opt)
}

// Render decodes input tree bytes and renders LaTeX markup for all nodes.
func Render(data []byte, opt Options) (string, error) {
	nodes, err := Load(data, opt)
	if err != nil {
		return "", err
	}

	tex, err := Format(nodes, opt)
	if err != nil {
		return "", err
	}

	return tex.String(), nil
}

// Format renders items in order into one buffer.
//
// Excluded items and items of kinds without a formatter are skipped. When an
// item fails, markup of the preceding items stays in the returned buffer.
func Format(items []SchemaNode, opt Options) (*TexList, error) {
	logger := opt.logger()
	tex := NewTexList(opt)

	logger.Info("processing items", "count", len(items))
	for _, item := range items {
		if item == nil {
			continue
		}

		if !item.IncludeInFormat() {
			logger.Info("item skipped", "item", nodeLabel(item))
			continue
		}

		logger.Info("formatting item", "item", nodeLabel(item))

		out := tex.child()
		var err error
		switch node := item.(type) {
		case *Record:
			err = formatRecord(out, node)
		case *AbstractRecord:
			err = formatAbstractRecord(out, node, opt.AddDoc)
		case *Selection:
			err = formatSelection(out, node)
		default:
			continue
		}

		if err != nil {
			return tex, fmt.Errorf("%w %q: %w", ErrFormatItem, item.NodeID(), err)
		}

		tex.Extend(out)
	}

	return tex, nil
}

// nodeLabel describes a node for diagnostics.
func nodeLabel(node SchemaNode) string {
	return nodeInputType(node).String() + " " + node.NodeID()
}
