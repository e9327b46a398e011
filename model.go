// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import "strings"

// InputType classifies a type node of the input tree.
type InputType string

const (
	InputTypeRecord         InputType = "record"
	InputTypeAbstractRecord InputType = "abstract record"
	InputTypeSelection      InputType = "selection"
	InputTypeArray          InputType = "array"
	InputTypeInteger        InputType = "integer"
	InputTypeDouble         InputType = "double"
	InputTypeBool           InputType = "bool"
	InputTypeString         InputType = "string"
	InputTypeFilename       InputType = "filename"
	InputTypeUnknown        InputType = "unknown"
)

// IsMain reports whether the type is a documented main type that can be linked to.
func (t InputType) IsMain() bool {
	switch t {
	case InputTypeRecord, InputTypeAbstractRecord, InputTypeSelection:
		return true
	default:
		return false
	}
}

// String returns the classification label.
func (t InputType) String() string {
	if strings.TrimSpace(string(t)) == "" {
		return string(InputTypeUnknown)
	}

	return string(t)
}

// DefaultType tells where the value of a record key comes from.
type DefaultType string

const (
	// DefaultReadTime marks a value computed when the input is read.
	DefaultReadTime DefaultType = "value at read time"
	// DefaultDeclaration marks a value fixed at key declaration.
	DefaultDeclaration DefaultType = "value at declaration"
	// DefaultOptional marks a key that may be omitted.
	DefaultOptional DefaultType = "optional"
	// DefaultObligatory marks a key that must be present.
	DefaultObligatory DefaultType = "obligatory"
	// DefaultGeneric marks a plain default value.
	DefaultGeneric DefaultType = "default"
)

// normalize lower-cases the type and maps "-" and "_" separators to single spaces.
func (t DefaultType) normalize() DefaultType {
	normalized := defaultTypeSeparators.Replace(strings.ToLower(string(t)))
	return DefaultType(strings.Join(strings.Fields(normalized), " "))
}

// defaultTypeSeparators maps alternative word separators of default types to spaces.
var defaultTypeSeparators = strings.NewReplacer("-", " ", "_", " ")

// SchemaNode is one top-level node of the input tree.
//
// Record, AbstractRecord and Selection are formatted; any other implementation
// is skipped by Format.
type SchemaNode interface {
	NodeID() string
	NodeName() string
	NodeDescription() string
	IncludeInFormat() bool
}

// Node holds attributes shared by all schema nodes.
type Node struct {
	ID          string
	Name        string
	Description string
	// Excluded hides the node from formatted output.
	Excluded bool
}

// NodeID returns node identity used for hyperlink targets, falling back to name.
func (n *Node) NodeID() string {
	if n.ID != "" {
		return n.ID
	}

	return n.Name
}

// NodeName returns display name.
func (n *Node) NodeName() string { return n.Name }

// NodeDescription returns free text description.
func (n *Node) NodeDescription() string { return n.Description }

// IncludeInFormat reports whether the node is rendered.
func (n *Node) IncludeInFormat() bool { return !n.Excluded }

// Reference is a resolved handle to another node or record key.
type Reference struct {
	ID        string
	Name      string
	InputType InputType
}

// Default describes the declared default of one record key.
type Default struct {
	Type  DefaultType
	Value any
}

// RecordKey is one key of a record.
type RecordKey struct {
	ID          string
	Name        string
	Description string
	Type        Reference
	Default     Default
}

// Record is a concrete record type with ordered keys.
type Record struct {
	Node
	Implements     []Reference
	ReducibleToKey *Reference
	Keys           []RecordKey
}

// AbstractRecord is a record interface implemented by concrete descendants.
type AbstractRecord struct {
	Node
	DefaultDescendant *Reference
	Implementations   []Reference
}

// SelectionValue is one named value of a selection.
type SelectionValue struct {
	ID          string
	Name        string
	Description string
}

// Selection is an enumeration of named values.
type Selection struct {
	Node
	Values []SelectionValue
}

// ScalarType is any other type of the tree (integers, strings, arrays...).
// It is referenced by keys but never formatted on its own.
type ScalarType struct {
	Node
	InputType InputType
}

// memberID builds identity of a key or value nested in a parent node.
func memberID(parentID, name string) string {
	if parentID == "" {
		return name
	}

	return parentID + "::" + name
}

// referenceTo builds a reference pointing at a node.
func referenceTo(node SchemaNode) Reference {
	return Reference{
		ID:        node.NodeID(),
		Name:      node.NodeName(),
		InputType: nodeInputType(node),
	}
}

// nodeInputType returns classification of a node.
func nodeInputType(node SchemaNode) InputType {
	switch typed := node.(type) {
	case *Record:
		return InputTypeRecord
	case *AbstractRecord:
		return InputTypeAbstractRecord
	case *Selection:
		return InputTypeSelection
	case *ScalarType:
		return typed.InputType
	default:
		return InputTypeUnknown
	}
}
