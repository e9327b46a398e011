// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadFixture loads the shared input tree fixture.
func loadFixture(t testing.TB, opt Options) []SchemaNode {
	t.Helper()

	nodes, err := LoadFile(filepath.Join("testdata", "tree.fixture.yaml"), opt)
	require.NoError(t, err)
	return nodes
}

// nodeByID finds a loaded node by id.
func nodeByID(t testing.TB, nodes []SchemaNode, id string) SchemaNode {
	t.Helper()

	for _, node := range nodes {
		if node.NodeID() == id {
			return node
		}
	}

	t.Fatalf("node %q not found", id)
	return nil
}

func TestLoadFixtureKindsAndOrder(t *testing.T) {
	t.Parallel()

	nodes := loadFixture(t, Options{})

	ids := make([]string, 0, len(nodes))
	kinds := make([]InputType, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.NodeID())
		kinds = append(kinds, nodeInputType(node))
	}

	assert.Equal(t, []string{"Root", "Problem", "Flow", "Solver", "Integer", "Bool", "TmpRecord"}, ids)
	assert.Equal(t, []InputType{
		InputTypeRecord,
		InputTypeAbstractRecord,
		InputTypeRecord,
		InputTypeSelection,
		InputTypeInteger,
		InputTypeBool,
		InputTypeRecord,
	}, kinds)

	assert.False(t, nodeByID(t, nodes, "TmpRecord").IncludeInFormat())
	assert.True(t, nodeByID(t, nodes, "Root").IncludeInFormat())
}

func TestLoadFixtureResolvesReferences(t *testing.T) {
	t.Parallel()

	nodes := loadFixture(t, Options{})

	root, ok := nodeByID(t, nodes, "Root").(*Record)
	require.True(t, ok)
	require.Len(t, root.Keys, 2)
	assert.Equal(t, RecordKey{
		ID:          "Root::problem",
		Name:        "problem",
		Description: "Problem to solve.",
		Type:        Reference{ID: "Problem", Name: "Problem", InputType: InputTypeAbstractRecord},
		Default:     Default{Type: DefaultObligatory, Value: "OBLIGATORY"},
	}, root.Keys[0])
	assert.Equal(t, DefaultDeclaration, root.Keys[1].Default.Type)

	flow, ok := nodeByID(t, nodes, "Flow").(*Record)
	require.True(t, ok)
	assert.Equal(t, []Reference{{ID: "Problem", Name: "Problem", InputType: InputTypeAbstractRecord}}, flow.Implements)
	require.NotNil(t, flow.ReducibleToKey)
	assert.Equal(t, Reference{ID: "Flow::dim", Name: "dim", InputType: InputTypeInteger}, *flow.ReducibleToKey)
	assert.Equal(t, DefaultReadTime, flow.Keys[0].Default.Type)

	problem, ok := nodeByID(t, nodes, "Problem").(*AbstractRecord)
	require.True(t, ok)
	require.NotNil(t, problem.DefaultDescendant)
	assert.Equal(t, "Flow", problem.DefaultDescendant.ID)
	assert.Equal(t, []Reference{{ID: "Flow", Name: "Flow", InputType: InputTypeRecord}}, problem.Implementations)

	solver, ok := nodeByID(t, nodes, "Solver").(*Selection)
	require.True(t, ok)
	assert.Equal(t, []SelectionValue{
		{ID: "Solver::petsc", Name: "petsc", Description: "PETSc solver."},
		{ID: "Solver::bddc", Name: "bddc", Description: "BDDC solver."},
	}, solver.Values)
}

func TestLoadJSONDocumentForm(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"version": "1",
		"nodes": [
			{"id": "Mode", "input_type": "Selection", "name": "Mode", "values": [{"name": "fast"}]},
			{"name": "Cfg", "input_type": "record", "keys": [{"key": "mode", "type": "Mode", "default": {"type": "optional"}}]}
		]
	}`)

	nodes, err := Load(data, Options{})
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	cfg, ok := nodes[1].(*Record)
	require.True(t, ok)
	assert.Equal(t, "Cfg", cfg.NodeID())
	assert.Equal(t, "Cfg::mode", cfg.Keys[0].ID)
	assert.Equal(t, InputTypeSelection, cfg.Keys[0].Type.InputType)
	assert.Nil(t, cfg.Keys[0].Default.Value)
}

func TestLoadYAMLListForm(t *testing.T) {
	t.Parallel()

	data := []byte(`
- id: Cfg
  input_type: Record
  name: Cfg
  keys:
    - key: any
      default:
        type: value-at-read-time
        value: 5
`)

	nodes, err := Load(data, Options{})
	require.NoError(t, err)

	cfg, ok := nodes[0].(*Record)
	require.True(t, ok)
	assert.Equal(t, InputTypeUnknown, cfg.Keys[0].Type.InputType)
	assert.Equal(t, DefaultReadTime, cfg.Keys[0].Default.Type)
	assert.Equal(t, 5, cfg.Keys[0].Default.Value)
}

func TestLoadExcludePatterns(t *testing.T) {
	t.Parallel()

	nodes := loadFixture(t, Options{Exclude: []string{"Sol*", "Flow"}})

	assert.False(t, nodeByID(t, nodes, "Solver").IncludeInFormat())
	assert.False(t, nodeByID(t, nodes, "Flow").IncludeInFormat())
	assert.True(t, nodeByID(t, nodes, "Problem").IncludeInFormat())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		data    string
		opt     Options
		wantErr error
	}{
		{
			name:    "empty input",
			data:    "  \n",
			wantErr: ErrDecodeInput,
		},
		{
			name:    "broken json",
			data:    `[{"id": `,
			wantErr: ErrDecodeInput,
		},
		{
			name:    "scalar document",
			data:    "just text",
			wantErr: ErrDecodeInput,
		},
		{
			name:    "node without identity",
			data:    `[{"input_type": "Record"}]`,
			wantErr: ErrDecodeInput,
		},
		{
			name:    "duplicate id",
			data:    `[{"id": "A", "input_type": "Record"}, {"id": "A", "input_type": "Selection"}]`,
			wantErr: ErrDuplicateNodeID,
		},
		{
			name:    "unresolved key type",
			data:    `[{"id": "A", "input_type": "Record", "keys": [{"key": "k", "type": "Missing"}]}]`,
			wantErr: ErrUnresolvedReference,
		},
		{
			name:    "unresolved implementation",
			data:    `[{"id": "A", "input_type": "AbstractRecord", "implementations": ["Missing"]}]`,
			wantErr: ErrUnresolvedReference,
		},
		{
			name:    "unresolved conversion key",
			data:    `[{"id": "A", "input_type": "Record", "reducible_to_key": "nope"}]`,
			wantErr: ErrUnresolvedReference,
		},
		{
			name:    "bad exclude pattern",
			data:    `[]`,
			opt:     Options{Exclude: []string{"["}},
			wantErr: ErrBadExcludePattern,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load([]byte(tc.data), tc.opt)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseInputType(t *testing.T) {
	t.Parallel()

	cases := map[string]InputType{
		"Record":          InputTypeRecord,
		"AbstractRecord":  InputTypeAbstractRecord,
		"abstract_record": InputTypeAbstractRecord,
		"Selection":       InputTypeSelection,
		"Array":           InputTypeArray,
		"Integer":         InputTypeInteger,
		"Double":          InputTypeDouble,
		"Bool":            InputTypeBool,
		"String":          InputTypeString,
		"FileName":        InputTypeFilename,
		"":                InputTypeUnknown,
		"Tuple":           InputType("tuple"),
	}

	for input, want := range cases {
		assert.Equal(t, want, parseInputType(input), "parseInputType(%q)", input)
	}
}

func TestParseDefaultType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultReadTime, parseDefaultType("Value_At_Read_Time"))
	assert.Equal(t, DefaultDeclaration, parseDefaultType(" value  at declaration "))
	assert.Equal(t, DefaultObligatory, parseDefaultType("OBLIGATORY"))
	assert.Equal(t, DefaultType("whatever"), parseDefaultType("whatever"))
}
