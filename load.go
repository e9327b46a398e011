// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// inputDocument is the object form of an input tree file.
type inputDocument struct {
	Version string      `json:"version" yaml:"version"`
	Nodes   []inputNode `json:"nodes" yaml:"nodes"`
}

// inputNode is one decoded node before reference resolution.
type inputNode struct {
	ID                string       `json:"id" yaml:"id"`
	InputType         string       `json:"input_type" yaml:"input_type"`
	Name              string       `json:"name" yaml:"name"`
	Description       string       `json:"description" yaml:"description"`
	Hidden            bool         `json:"hidden" yaml:"hidden"`
	Implements        []string     `json:"implements" yaml:"implements"`
	ReducibleToKey    string       `json:"reducible_to_key" yaml:"reducible_to_key"`
	Keys              []inputKey   `json:"keys" yaml:"keys"`
	DefaultDescendant string       `json:"default_descendant" yaml:"default_descendant"`
	Implementations   []string     `json:"implementations" yaml:"implementations"`
	Values            []inputValue `json:"values" yaml:"values"`
}

// inputKey is one decoded record key.
type inputKey struct {
	Key         string       `json:"key" yaml:"key"`
	Description string       `json:"description" yaml:"description"`
	Type        string       `json:"type" yaml:"type"`
	Default     inputDefault `json:"default" yaml:"default"`
}

// inputDefault is one decoded key default.
type inputDefault struct {
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

// inputValue is one decoded selection value.
type inputValue struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// nodeLoader resolves decoded nodes into the schema node tree.
type nodeLoader struct {
	nodes   []SchemaNode
	byID    map[string]SchemaNode
	exclude []string
}

// LoadFile reads an input tree from file.
func LoadFile(filePath string, opt Options) ([]SchemaNode, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInputFile, err)
	}

	return Load(data, opt)
}

// Load decodes a JSON or YAML input tree into schema nodes in document order.
//
// The document is either a list of nodes or an object with a "nodes" list.
// References between nodes are resolved; nodes marked hidden or matching
// Options.Exclude are kept but excluded from formatting.
func Load(data []byte, opt Options) ([]SchemaNode, error) {
	for _, pattern := range opt.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadExcludePattern, pattern, err)
		}
	}

	raw, err := decodeInput(data)
	if err != nil {
		return nil, err
	}

	loader := nodeLoader{
		nodes:   make([]SchemaNode, 0, len(raw)),
		byID:    make(map[string]SchemaNode, len(raw)),
		exclude: opt.Exclude,
	}

	for index, item := range raw {
		if err := loader.declare(index, item); err != nil {
			return nil, err
		}
	}

	for index, item := range raw {
		if err := loader.resolve(loader.nodes[index], item); err != nil {
			return nil, fmt.Errorf("node %q: %w", loader.nodes[index].NodeID(), err)
		}
	}

	return loader.nodes, nil
}

// decodeInput detects document shape and decodes it with JSON or YAML decoder.
func decodeInput(data []byte) ([]inputNode, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecodeInput)
	}

	switch trimmed[0] {
	case '[':
		var nodes []inputNode
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeInput, err)
		}

		return nodes, nil
	case '{':
		var doc inputDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeInput, err)
		}

		return doc.Nodes, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(trimmed, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeInput, err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecodeInput)
	}

	content := root.Content[0]
	switch content.Kind {
	case yaml.SequenceNode:
		var nodes []inputNode
		if err := content.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeInput, err)
		}

		return nodes, nil
	case yaml.MappingNode:
		var doc inputDocument
		if err := content.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeInput, err)
		}

		return doc.Nodes, nil
	default:
		return nil, fmt.Errorf("%w: document must be a list or a mapping", ErrDecodeInput)
	}
}

// declare creates the typed node for one input item and indexes it by id.
func (loader *nodeLoader) declare(index int, item inputNode) error {
	base := Node{
		ID:          strings.TrimSpace(item.ID),
		Name:        strings.TrimSpace(item.Name),
		Description: item.Description,
	}

	if base.ID == "" && base.Name == "" {
		return fmt.Errorf("%w: node %d has neither id nor name", ErrDecodeInput, index)
	}

	base.Excluded = item.Hidden || loader.excluded(base.NodeName()) || loader.excluded(base.NodeID())

	var node SchemaNode
	switch kind := parseInputType(item.InputType); kind {
	case InputTypeRecord:
		node = &Record{Node: base}
	case InputTypeAbstractRecord:
		node = &AbstractRecord{Node: base}
	case InputTypeSelection:
		node = &Selection{Node: base}
	default:
		node = &ScalarType{Node: base, InputType: kind}
	}

	id := node.NodeID()
	if _, exists := loader.byID[id]; exists {
		return fmt.Errorf("%w %q", ErrDuplicateNodeID, id)
	}

	loader.byID[id] = node
	loader.nodes = append(loader.nodes, node)
	return nil
}

// resolve fills kind specific attributes and references of one node.
func (loader *nodeLoader) resolve(node SchemaNode, item inputNode) error {
	switch typed := node.(type) {
	case *Record:
		return loader.resolveRecord(typed, item)
	case *AbstractRecord:
		return loader.resolveAbstractRecord(typed, item)
	case *Selection:
		typed.Values = make([]SelectionValue, 0, len(item.Values))
		for _, value := range item.Values {
			name := strings.TrimSpace(value.Name)
			typed.Values = append(typed.Values, SelectionValue{
				ID:          memberID(typed.NodeID(), name),
				Name:        name,
				Description: value.Description,
			})
		}
	}

	return nil
}

// resolveRecord resolves implemented interfaces, keys and conversion key of a record.
func (loader *nodeLoader) resolveRecord(record *Record, item inputNode) error {
	implements, err := loader.references(item.Implements)
	if err != nil {
		return fmt.Errorf("implements: %w", err)
	}

	record.Implements = implements
	record.Keys = make([]RecordKey, 0, len(item.Keys))
	for _, key := range item.Keys {
		name := strings.TrimSpace(key.Key)
		keyType := Reference{InputType: InputTypeUnknown}
		if typeID := strings.TrimSpace(key.Type); typeID != "" {
			keyType, err = loader.reference(typeID)
			if err != nil {
				return fmt.Errorf("key %q type: %w", name, err)
			}
		}

		record.Keys = append(record.Keys, RecordKey{
			ID:          memberID(record.NodeID(), name),
			Name:        name,
			Description: key.Description,
			Type:        keyType,
			Default: Default{
				Type:  parseDefaultType(key.Default.Type),
				Value: key.Default.Value,
			},
		})
	}

	conversionKey := strings.TrimSpace(item.ReducibleToKey)
	if conversionKey == "" {
		return nil
	}

	for _, key := range record.Keys {
		if key.Name != conversionKey {
			continue
		}

		record.ReducibleToKey = &Reference{
			ID:        key.ID,
			Name:      key.Name,
			InputType: key.Type.InputType,
		}

		return nil
	}

	return fmt.Errorf("reducible_to_key: %w %q", ErrUnresolvedReference, conversionKey)
}

// resolveAbstractRecord resolves default descendant and implementations.
func (loader *nodeLoader) resolveAbstractRecord(abstract *AbstractRecord, item inputNode) error {
	if id := strings.TrimSpace(item.DefaultDescendant); id != "" {
		ref, err := loader.reference(id)
		if err != nil {
			return fmt.Errorf("default_descendant: %w", err)
		}

		abstract.DefaultDescendant = &ref
	}

	implementations, err := loader.references(item.Implementations)
	if err != nil {
		return fmt.Errorf("implementations: %w", err)
	}

	abstract.Implementations = implementations
	return nil
}

// references resolves a list of node ids preserving order.
func (loader *nodeLoader) references(ids []string) ([]Reference, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	out := make([]Reference, 0, len(ids))
	for _, id := range ids {
		ref, err := loader.reference(strings.TrimSpace(id))
		if err != nil {
			return nil, err
		}

		out = append(out, ref)
	}

	return out, nil
}

// reference resolves one node id.
func (loader *nodeLoader) reference(id string) (Reference, error) {
	node, ok := loader.byID[id]
	if !ok {
		return Reference{}, fmt.Errorf("%w %q", ErrUnresolvedReference, id)
	}

	return referenceTo(node), nil
}

// excluded reports whether node name matches any exclude pattern.
func (loader *nodeLoader) excluded(name string) bool {
	for _, pattern := range loader.exclude {
		if matched, err := path.Match(pattern, name); err == nil && matched {
			return true
		}
	}

	return false
}

// parseInputType maps input_type spellings onto known classifications.
func parseInputType(value string) InputType {
	compact := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(value)))
	switch compact {
	case "record", "typerecord":
		return InputTypeRecord
	case "abstractrecord", "abstract", "typeabstract", "typeabstractrecord":
		return InputTypeAbstractRecord
	case "selection", "typeselection":
		return InputTypeSelection
	case "array", "typearray":
		return InputTypeArray
	case "integer", "int", "typeinteger":
		return InputTypeInteger
	case "double", "float", "typedouble":
		return InputTypeDouble
	case "bool", "boolean", "typebool":
		return InputTypeBool
	case "string", "typestring":
		return InputTypeString
	case "filename", "filenametype", "typefilename":
		return InputTypeFilename
	case "":
		return InputTypeUnknown
	default:
		return InputType(strings.ToLower(strings.TrimSpace(value)))
	}
}

// parseDefaultType normalizes separators of default type spellings.
//
// Unknown spellings are kept as is and rejected when the key is formatted.
func parseDefaultType(value string) DefaultType {
	return DefaultType(value).normalize()
}
