// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/istdoc

// istdoc generates LaTeX reference markup from input type trees.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/istdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/istdoc"
	_buildTime string
)

// cliOptions describes istdoc CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Tex     texCommand     `command:"tex" description:"Convert input type tree to LaTeX markup"`
	Macros  macrosCommand  `command:"macros" description:"Print LaTeX macro preamble"`
	Example exampleCommand `command:"example" description:"Generate example input document for one record"`
}

// texRenderFlags groups LaTeX rendering flags.
type texRenderFlags struct {
	ConfigPath   string   `short:"c" long:"config" description:"Path to YAML config file with render settings"`
	AnchorPrefix string   `short:"p" long:"anchor-prefix" description:"Prefix of hyperlink targets (default: IT::)"`
	WrapWidth    int      `short:"w" long:"wrap" description:"Wrap width for descriptions; negative disables wrapping (default: 80)"`
	Exclude      []string `short:"x" long:"exclude" description:"Glob pattern of node names to leave out (repeatable)"`
	Verbose      bool     `short:"v" long:"verbose" description:"Log progress to stderr"`
}

// texCommand converts an input tree to LaTeX.
type texCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input tree file path, JSON or YAML (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output LaTeX file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	RenderFlags texRenderFlags `group:"LaTeX Render"`
}

// Execute runs tex subcommand.
func (command *texCommand) Execute(_ []string) error {
	return command.runner.runTex(command.RenderFlags, command.Args.Input, command.Args.Output)
}

// macrosCommand exports LaTeX macro preamble.
type macrosCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output preamble file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	ReadTimeLabel string `short:"l" long:"read-time-label" description:"Label printed after values computed at read time" default:"read time"`
}

// Execute runs macros subcommand.
func (command *macrosCommand) Execute(_ []string) error {
	return command.runner.runMacros(command.ReadTimeLabel, command.Args.Output)
}

// exampleCommand generates example input document.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input tree file path, JSON or YAML (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output example file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Root   string `short:"r" long:"root" description:"Id or name of root record" required:"yes"`
	Mode   string `short:"m" long:"mode" description:"Key coverage" choice:"all" choice:"required" default:"all"`
	Format string `short:"f" long:"format" description:"Example encoding" choice:"yaml" choice:"json" default:"yaml"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.Root, command.Mode, command.Format, command.Args.Input, command.Args.Output)
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "istdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runTex renders LaTeX from input tree and writes result to stdout or file.
func (runner *cliRunner) runTex(renderFlags texRenderFlags, inputPath, outputPath string) error {
	config, err := loadFileConfig(renderFlags.ConfigPath)
	if err != nil {
		return err
	}

	options := config.options(renderFlags)
	if renderFlags.Verbose {
		options.Logger = slog.New(slog.NewTextHandler(runner.stderr, nil))
	}

	data, err := runner.readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	rendered, err := istdoc.Render(data, options)
	if err != nil {
		return fmt.Errorf("render latex: %w", err)
	}

	return runner.writeOutput(outputPath, "latex", []byte(rendered))
}

// runMacros writes LaTeX macro preamble to stdout or file.
func (runner *cliRunner) runMacros(readTimeLabel, outputPath string) error {
	preamble, err := istdoc.Macros(istdoc.MacrosOptions{ReadTimeLabel: readTimeLabel})
	if err != nil {
		return fmt.Errorf("render macros: %w", err)
	}

	return runner.writeOutput(outputPath, "macros", []byte(preamble))
}

// runExample writes example input document for root record to stdout or file.
func (runner *cliRunner) runExample(root, mode, format, inputPath, outputPath string) error {
	data, err := runner.readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	nodes, err := istdoc.Load(data, istdoc.Options{})
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	example, err := istdoc.GenerateExample(nodes, root, istdoc.ExampleMode(mode), istdoc.ExampleFormat(format))
	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	return runner.writeOutput(outputPath, "example", example)
}

// readInput reads input tree from file path or stdin.
func (runner *cliRunner) readInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read input file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read input from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read input from stdin: empty input")
	}

	return data, nil
}

// writeOutput writes generated content to stdout when path is empty, otherwise to file.
func (runner *cliRunner) writeOutput(path, kind string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, path, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Tex.runner = runner
	options.Macros.runner = runner
	options.Example.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"tex": strings.TrimSpace(fmt.Sprintf(`
Convert input type tree (JSON or YAML) to LaTeX markup.
Reads the tree from file argument or stdin; writes markup to file argument or stdout.

Examples:
> $ %s tex input_types.json > input_reference.tex
> $ cat input_types.yaml | %s tex -x 'Tmp*' -w 100 > input_reference.tex
`, programName, programName)),
		"macros": strings.TrimSpace(fmt.Sprintf(`
Print LaTeX preamble defining RecordType, AbstractType, SelectionType and helper macros.
Include it before the generated markup.

Examples:
> $ %s macros > istdoc_macros.tex
`, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate example input document for one root record from key defaults.

Examples:
> $ %s example --root Root input_types.json > example.yaml
> $ %s example --root Root --mode required --format json input_types.json example.json
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build information.
func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
