// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

package istdoc

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updateGolden = flag.Bool("update", false, "update golden files")

// opaqueNode is a schema node kind without a formatter.
type opaqueNode struct {
	Node
}

func TestFormatRecordScenario(t *testing.T) {
	t.Parallel()

	record := &Record{
		Node: Node{Name: "Foo", Description: "desc"},
		Keys: []RecordKey{
			{
				Name:        "key1",
				Description: "key desc",
				Type:        Reference{ID: "Integer", Name: "Integer", InputType: InputTypeInteger},
				Default:     Default{Type: DefaultOptional, Value: "bar"},
			},
		},
	}

	tex, err := Format([]SchemaNode{record}, Options{})
	require.NoError(t, err)

	want := "\\begin{RecordType}\n" +
		"\t{\\hyperB{IT::Foo}{Foo}}\n" +
		"\t{}\n" +
		"\t{}\n" +
		"\t{}\n" +
		"\t{desc}\n" +
		"\n" +
		"\t\t\\KeyItem\n" +
		"\t\t\t{\\hyperB{IT::Foo::key1}{key1}}\n" +
		"\t\t\t{Integer}\n" +
		"\t\t\t{\\textlangle{Bar}\\textrangle}\n" +
		"\t\t\t{}\n" +
		"\t\t\t{key desc}\n" +
		"\\end{RecordType}\n"
	assertTexEqual(t, want, tex.String())
}

func TestFormatRecordWithoutKeys(t *testing.T) {
	t.Parallel()

	tex, err := Format([]SchemaNode{&Record{Node: Node{ID: "Empty", Name: "Empty"}}}, Options{})
	require.NoError(t, err)

	got := tex.String()
	want := "\\begin{RecordType}\n" +
		"\t{\\hyperB{IT::Empty}{Empty}}\n" +
		"\t{}\n" +
		"\t{}\n" +
		"\t{}\n" +
		"\t{}\n" +
		"\\end{RecordType}\n"
	assertTexEqual(t, want, got)
	assert.NotContains(t, got, `\KeyItem`)
}

func TestFormatRecordLinks(t *testing.T) {
	t.Parallel()

	record := &Record{
		Node: Node{ID: "Flow", Name: "Flow"},
		Implements: []Reference{
			{ID: "Problem", Name: "Problem", InputType: InputTypeAbstractRecord},
			{ID: "Equation", Name: "Equation", InputType: InputTypeAbstractRecord},
		},
		ReducibleToKey: &Reference{ID: "Flow::dim", Name: "dim", InputType: InputTypeInteger},
		Keys: []RecordKey{
			{
				Name:    "solver",
				Type:    Reference{ID: "Solver", Name: "Solver", InputType: InputTypeSelection},
				Default: Default{Type: DefaultObligatory, Value: "OBLIGATORY"},
			},
		},
	}

	tex, err := Format([]SchemaNode{record}, Options{})
	require.NoError(t, err)

	got := tex.String()
	assert.Contains(t, got, "\t{\\Alink{IT::Problem}{Problem}, \\Alink{IT::Equation}{Equation}}\n")
	assert.Contains(t, got, "\t{\\Alink{IT::Flow::dim}{dim}}\n")
	assert.Contains(t, got, "\t\t\t{Selection: \\Alink{IT::Solver}{Solver}}\n")
}

func TestFormatAbstractRecordScenario(t *testing.T) {
	t.Parallel()

	abstract := &AbstractRecord{
		Node: Node{ID: "Problem", Name: "Problem", Description: "Abstract problem."},
		Implementations: []Reference{
			{ID: "Flow", Name: "Flow", InputType: InputTypeRecord},
			{ID: "Heat", Name: "Heat", InputType: InputTypeRecord},
		},
	}

	tex, err := Format([]SchemaNode{abstract}, Options{})
	require.NoError(t, err)

	want := "\\begin{AbstractType}\n" +
		"\t{\\hyperB{IT::Problem}{Problem}}\n" +
		"\t{}\n" +
		"\t{}\n" +
		"\t{Abstract problem.}\n" +
		"\t\t\\Descendant{\\Alink{IT::Flow}{Flow}}\n" +
		"\t\t\\Descendant{\\Alink{IT::Heat}{Heat}}\n" +
		"\\end{AbstractType}\n"
	assertTexEqual(t, want, tex.String())
}

func TestFormatAbstractRecordDocHook(t *testing.T) {
	t.Parallel()

	var seen string
	opt := Options{
		AddDoc: func(tex *TexList, node *AbstractRecord) {
			seen = node.NodeID()
			tex.Add(`\AddDoc{`, node.Name, `}`)
		},
	}

	abstract := &AbstractRecord{
		Node:              Node{ID: "Problem", Name: "Problem"},
		DefaultDescendant: &Reference{ID: "Flow", Name: "Flow", InputType: InputTypeRecord},
	}

	tex, err := Format([]SchemaNode{abstract}, opt)
	require.NoError(t, err)
	assert.Equal(t, "Problem", seen)

	want := "\\begin{AbstractType}\n" +
		"\t{\\hyperB{IT::Problem}{Problem}}\n" +
		"\t{\\Alink{IT::Flow}{Flow}}\n" +
		"\t{\\AddDoc{Problem}}\n" +
		"\t{}\n" +
		"\\end{AbstractType}\n"
	assertTexEqual(t, want, tex.String())
}

func TestFormatSelectionScenario(t *testing.T) {
	t.Parallel()

	selection := &Selection{
		Node: Node{ID: "Mode", Name: "Mode", Description: "Run mode."},
		Values: []SelectionValue{
			{ID: "Mode::A", Name: "A", Description: "first"},
			{ID: "Mode::B", Name: "B", Description: "second"},
		},
	}

	tex, err := Format([]SchemaNode{selection}, Options{})
	require.NoError(t, err)

	want := "\\begin{SelectionType}\n" +
		"\t{\\hyperB{IT::Mode}{Mode}}\n" +
		"\t{Run mode.}\n" +
		"\n" +
		"\t\t\\KeyItem\n" +
		"\t\t\t{\\hyperB{IT::Mode::A}{A}}\n" +
		"\t\t\t{first}\n" +
		"\n" +
		"\t\t\\KeyItem\n" +
		"\t\t\t{\\hyperB{IT::Mode::B}{B}}\n" +
		"\t\t\t{second}\n" +
		"\\end{SelectionType}\n"
	assertTexEqual(t, want, tex.String())
}

func TestFormatDistinctAnchorsForSimilarIDs(t *testing.T) {
	t.Parallel()

	items := []SchemaNode{
		&Record{Node: Node{ID: "a b", Name: "first"}},
		&Record{Node: Node{ID: "a/b", Name: "second"}},
	}

	tex, err := Format(items, Options{})
	require.NoError(t, err)

	got := tex.String()
	assert.Contains(t, got, `\hyperB{IT::a-20b}{first}`)
	assert.Contains(t, got, `\hyperB{IT::a-2Fb}{second}`)
}

func TestFormatSkipsExcludedItems(t *testing.T) {
	t.Parallel()

	items := []SchemaNode{
		&Record{Node: Node{ID: "A", Name: "A", Excluded: true}},
		&Record{Node: Node{ID: "B", Name: "B"}},
	}

	tex, err := Format(items, Options{})
	require.NoError(t, err)

	got := tex.String()
	assert.NotContains(t, got, "IT::A")
	assert.Contains(t, got, `\hyperB{IT::B}{B}`)
	assert.Equal(t, 1, strings.Count(got, `\begin{RecordType}`))
}

func TestFormatSkipsUnknownKinds(t *testing.T) {
	t.Parallel()

	items := []SchemaNode{
		&ScalarType{Node: Node{ID: "Integer", Name: "Integer"}, InputType: InputTypeInteger},
		&opaqueNode{Node: Node{ID: "X", Name: "X"}},
		nil,
		&Selection{Node: Node{ID: "S", Name: "S"}},
	}

	tex, err := Format(items, Options{})
	require.NoError(t, err)

	want := "\\begin{SelectionType}\n" +
		"\t{\\hyperB{IT::S}{S}}\n" +
		"\t{}\n" +
		"\\end{SelectionType}\n"
	assertTexEqual(t, want, tex.String())
}

func TestFormatEmptyInput(t *testing.T) {
	t.Parallel()

	tex, err := Format(nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, tex.String())
}

func TestFormatPreservesOrder(t *testing.T) {
	t.Parallel()

	items := []SchemaNode{
		&Record{Node: Node{ID: "A", Name: "A"}},
		&Selection{Node: Node{ID: "B", Name: "B"}},
		&AbstractRecord{Node: Node{ID: "C", Name: "C"}},
	}

	tex, err := Format(items, Options{})
	require.NoError(t, err)

	var want strings.Builder
	for _, item := range items {
		single, err := Format([]SchemaNode{item}, Options{})
		require.NoError(t, err)
		want.WriteString(single.String())
	}

	assertTexEqual(t, want.String(), tex.String())
}

func TestFormatKeepsPrecedingOutputOnError(t *testing.T) {
	t.Parallel()

	good := &Record{Node: Node{ID: "Good", Name: "Good"}}
	bad := &Record{
		Node: Node{ID: "Bad", Name: "Bad"},
		Keys: []RecordKey{
			{Name: "k", Default: Default{Type: "unknown", Value: "x"}},
		},
	}
	after := &Record{Node: Node{ID: "After", Name: "After"}}

	tex, err := Format([]SchemaNode{good, bad, after}, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFormatItem)
	require.ErrorIs(t, err, ErrUnknownDefaultType)
	assert.Contains(t, err.Error(), `"Bad"`)
	assert.Contains(t, err.Error(), `key "k"`)

	only, err := Format([]SchemaNode{good}, Options{})
	require.NoError(t, err)
	assertTexEqual(t, only.String(), tex.String())
}

func TestFormatLogsProgress(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	opt := Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))}

	items := []SchemaNode{
		&Record{Node: Node{ID: "Hidden", Name: "Hidden", Excluded: true}},
		&Record{Node: Node{ID: "Shown", Name: "Shown"}},
	}

	_, err := Format(items, opt)
	require.NoError(t, err)

	got := logs.String()
	assert.Contains(t, got, `msg="processing items" count=2`)
	assert.Contains(t, got, `msg="item skipped" item="record Hidden"`)
	assert.Contains(t, got, `msg="formatting item" item="record Shown"`)
}

func TestFormatWrapsDescriptions(t *testing.T) {
	t.Parallel()

	selection := &Selection{Node: Node{ID: "S", Name: "S", Description: "one two three four"}}

	tex, err := Format([]SchemaNode{selection}, Options{WrapWidth: 10})
	require.NoError(t, err)
	assert.Contains(t, tex.String(), "\t{one two\nthree four}\n")
}

func TestRenderGolden(t *testing.T) {
	t.Parallel()

	got, err := RenderFile(filepath.Join("testdata", "tree.fixture.yaml"), Options{})
	require.NoError(t, err)

	goldenPath := filepath.Join("testdata", "tree.golden.tex")
	if *updateGolden {
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o600))
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err)

	if string(want) != got {
		t.Fatalf("golden mismatch; run `go test . -run TestRenderGolden -update`\n%s", texDiff(string(want), got))
	}
}

func TestRenderJSONMatchesYAML(t *testing.T) {
	t.Parallel()

	fromYAML, err := RenderFile(filepath.Join("testdata", "tree.fixture.yaml"), Options{})
	require.NoError(t, err)

	fromJSON, err := RenderFile(filepath.Join("testdata", "tree.fixture.json"), Options{})
	require.NoError(t, err)

	assertTexEqual(t, fromYAML, fromJSON)
}

func TestRenderFileMissing(t *testing.T) {
	t.Parallel()

	_, err := RenderFile(filepath.Join(t.TempDir(), "missing.json"), Options{})
	require.ErrorIs(t, err, ErrReadInputFile)
}

// assertTexEqual compares generated markup and prints a unified diff on mismatch.
func assertTexEqual(t *testing.T, want, got string) {
	t.Helper()

	if want != got {
		t.Fatalf("markup mismatch\n%s", texDiff(want, got))
	}
}

// texDiff returns a unified diff between expected and generated markup.
func texDiff(want, got string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}

	return diff
}
