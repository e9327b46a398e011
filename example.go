// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds example with all declared keys.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds example with obligatory keys only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation key coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for generated example payload.
type ExampleFormat string

// abstractTypeKey selects the descendant of an abstract record in input files.
const abstractTypeKey = "TYPE"

// exampleBuilder converts schema nodes into an example input document.
type exampleBuilder struct {
	byID       map[string]SchemaNode
	activeRefs map[string]int
	mode       ExampleMode
}

// GenerateExample returns example input for root record encoded in selected format.
func GenerateExample(nodes []SchemaNode, root string, mode ExampleMode, format ExampleFormat) ([]byte, error) {
	format, err := normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExampleFormatJSON:
		return GenerateExampleJSON(nodes, root, mode)
	case ExampleFormatYAML:
		return GenerateExampleYAML(nodes, root, mode)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// GenerateExampleYAML returns example input encoded as YAML with key descriptions as comments.
func GenerateExampleYAML(nodes []SchemaNode, root string, mode ExampleMode) ([]byte, error) {
	rootNode, err := buildExampleNode(nodes, root, mode)
	if err != nil {
		return nil, err
	}

	data, err := marshalExampleYAMLNode(rootNode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	return data, nil
}

// GenerateExampleJSON returns example input encoded as pretty JSON with keys in declaration order.
func GenerateExampleJSON(nodes []SchemaNode, root string, mode ExampleMode) ([]byte, error) {
	rootNode, err := buildExampleNode(nodes, root, mode)
	if err != nil {
		return nil, err
	}

	var raw bytes.Buffer
	if err := appendExampleJSON(&raw, rootNode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	out.WriteByte('\n')
	return out.Bytes(), nil
}

// appendExampleJSON writes node as compact JSON keeping mapping key order.
func appendExampleJSON(out *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out.WriteByte('{')
		for index := 0; index+1 < len(node.Content); index += 2 {
			if index > 0 {
				out.WriteByte(',')
			}

			key, err := marshalExampleJSON(node.Content[index].Value)
			if err != nil {
				return err
			}

			out.Write(key)
			out.WriteByte(':')
			if err := appendExampleJSON(out, node.Content[index+1]); err != nil {
				return err
			}
		}

		out.WriteByte('}')
	case yaml.SequenceNode:
		out.WriteByte('[')
		for index, item := range node.Content {
			if index > 0 {
				out.WriteByte(',')
			}

			if err := appendExampleJSON(out, item); err != nil {
				return err
			}
		}

		out.WriteByte(']')
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return err
		}

		data, err := marshalExampleJSON(value)
		if err != nil {
			return err
		}

		out.Write(data)
	default:
		return fmt.Errorf("unsupported example node kind %d", node.Kind)
	}

	return nil
}

// buildExampleNode finds root record and builds its example tree.
func buildExampleNode(nodes []SchemaNode, root string, mode ExampleMode) (*yaml.Node, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	builder := exampleBuilder{
		byID:       make(map[string]SchemaNode, len(nodes)),
		activeRefs: make(map[string]int),
		mode:       mode,
	}

	root = strings.TrimSpace(root)
	var record *Record
	for _, node := range nodes {
		if node == nil {
			continue
		}

		builder.byID[node.NodeID()] = node
		if typed, ok := node.(*Record); ok && record == nil {
			if typed.NodeID() == root || typed.Name == root {
				record = typed
			}
		}
	}

	if record == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownRootRecord, root)
	}

	return builder.buildRecord(record), nil
}

// normalizeExampleMode validates and normalizes caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeExampleFormat validates and normalizes caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// buildRecord builds a mapping of record keys in declaration order.
func (builder *exampleBuilder) buildRecord(record *Record) *yaml.Node {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	release, ok := builder.enter(record.NodeID())
	if !ok {
		return mapping
	}
	defer release()

	for _, key := range record.Keys {
		if builder.mode == ExampleModeRequired && key.Default.Type.normalize() != DefaultObligatory {
			continue
		}

		keyNode := yamlScalarNode("!!str", key.Name)
		if comment := sanitizeText(key.Description); comment != "" {
			keyNode.HeadComment = comment
		}

		mapping.Content = append(mapping.Content, keyNode, builder.buildKey(key))
	}

	return mapping
}

// buildKey builds value for one key from its declared default or its type.
func (builder *exampleBuilder) buildKey(key RecordKey) *yaml.Node {
	switch key.Default.Type.normalize() {
	case DefaultDeclaration, DefaultGeneric:
		if text, ok := key.Default.Value.(string); ok {
			if node, ok := typedScalar(text, key.Type.InputType); ok {
				return node
			}
		}

		if key.Default.Value != nil {
			if node, err := yamlNodeForValue(key.Default.Value); err == nil {
				return node
			}
		}
	case DefaultReadTime:
		if text := sanitizeText(valueText(key.Default.Value)); text != "" {
			return yamlScalarNode("!!str", "<"+text+">")
		}
	}

	return builder.buildType(key.Type)
}

// buildType builds a placeholder or nested value for a referenced type.
func (builder *exampleBuilder) buildType(ref Reference) *yaml.Node {
	switch typed := builder.byID[ref.ID].(type) {
	case *Record:
		return builder.buildRecord(typed)
	case *AbstractRecord:
		return builder.buildAbstractRecord(typed)
	case *Selection:
		if len(typed.Values) > 0 {
			return yamlScalarNode("!!str", typed.Values[0].Name)
		}
	}

	return scalarPlaceholder(ref.InputType)
}

// buildAbstractRecord builds the default or first descendant tagged with its type key.
func (builder *exampleBuilder) buildAbstractRecord(abstract *AbstractRecord) *yaml.Node {
	descendant := abstract.DefaultDescendant
	if descendant == nil && len(abstract.Implementations) > 0 {
		descendant = &abstract.Implementations[0]
	}

	if descendant == nil {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}

	record, ok := builder.byID[descendant.ID].(*Record)
	if !ok {
		return scalarPlaceholder(descendant.InputType)
	}

	mapping := builder.buildRecord(record)
	typeKey := yamlScalarNode("!!str", abstractTypeKey)
	typeValue := yamlScalarNode("!!str", record.Name)
	mapping.Content = append([]*yaml.Node{typeKey, typeValue}, mapping.Content...)
	return mapping
}

// enter marks record as active and reports false on recursion.
func (builder *exampleBuilder) enter(id string) (func(), bool) {
	if builder.activeRefs[id] > 0 {
		return nil, false
	}

	builder.activeRefs[id]++
	return func() {
		builder.activeRefs[id]--
	}, true
}

// scalarPlaceholder returns fallback value for a type without declared default.
func scalarPlaceholder(inputType InputType) *yaml.Node {
	switch inputType {
	case InputTypeInteger:
		return yamlScalarNode("!!int", "0")
	case InputTypeDouble:
		return yamlScalarNode("!!float", "0.0")
	case InputTypeBool:
		return yamlScalarNode("!!bool", "false")
	case InputTypeArray:
		return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	case InputTypeUnknown:
		return yamlScalarNode("!!null", "null")
	default:
		return yamlScalarNode("!!str", "<"+inputType.String()+">")
	}
}

// typedScalar converts textual defaults of numeric and boolean keys into typed scalars.
func typedScalar(text string, inputType InputType) (*yaml.Node, bool) {
	text = strings.TrimSpace(text)
	switch inputType {
	case InputTypeInteger:
		if _, err := strconv.ParseInt(text, 10, 64); err == nil {
			return yamlScalarNode("!!int", text), true
		}
	case InputTypeDouble:
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			return yamlScalarNode("!!float", text), true
		}
	case InputTypeBool:
		if value, err := strconv.ParseBool(text); err == nil {
			return yamlScalarNode("!!bool", strconv.FormatBool(value)), true
		}
	}

	return nil, false
}

// marshalExampleJSON serializes one value as compact JSON without HTML escaping.
func marshalExampleJSON(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return bytes.TrimRight(out.Bytes(), "\n"), nil
}

// marshalExampleYAMLNode serializes example payload as YAML.
func marshalExampleYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// yamlNodeForValue builds deterministic yaml.Node tree from decoded input value.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil
	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil
	case string:
		return yamlScalarNode("!!str", typed), nil
	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil
	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil
	case uint64:
		return yamlScalarNode("!!int", strconv.FormatUint(typed, 10)), nil
	case float64:
		text := valueText(typed)
		if strings.ContainsAny(text, ".eE") {
			return yamlScalarNode("!!float", text), nil
		}

		return yamlScalarNode("!!int", text), nil
	case json.Number:
		if int64Value, err := typed.Int64(); err == nil {
			return yamlScalarNode("!!int", strconv.FormatInt(int64Value, 10)), nil
		}

		return yamlScalarNode("!!float", typed.String()), nil
	case []any:
		sequence := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			child, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			sequence.Content = append(sequence.Content, child)
		}

		return sequence, nil
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range keys {
			child, err := yamlNodeForValue(typed[key])
			if err != nil {
				return nil, err
			}

			mapping.Content = append(mapping.Content, yamlScalarNode("!!str", key), child)
		}

		return mapping, nil
	default:
		return nil, fmt.Errorf("unsupported example value type %T", value)
	}
}

// yamlScalarNode builds one tagged scalar node.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
