// Command ecmaparse is the driver for the ES2015 parser: it resolves a
// source file or stdin, detects script-vs-module source type, runs the
// scanner -> parser pipeline, and reports the resulting Program as ESTree
// JSON or the single SyntaxError that stopped it.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/ecmaparse/internal/ast"
	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/parser"
	"github.com/funvibe/ecmaparse/internal/pipeline"
	"github.com/funvibe/ecmaparse/internal/scanner"
)

// runID tags this invocation, threaded into the cache's run_id column so
// concurrent invocations writing to the same cache file can be told
// apart.
var runID = uuid.New().String()

var errColor = color.New(color.FgRed, color.Bold)

func init() {
	// Color only interactive sessions.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			errColor.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(2)
		}
	}()

	args := os.Args[1:]
	if len(args) == 0 {
		runParseCommand(nil)
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
	case "repl":
		runREPL()
	case "check":
		os.Exit(runCheckCommand(args[1:]))
	default:
		runParseCommand(args)
	}
}

func printUsage() {
	fmt.Println(`ecmaparse -- an ES2015 recursive-descent parser

Usage:
  ecmaparse [--module] [file]     parse a file (or stdin) and print its ESTree JSON
  ecmaparse check [--cache=path] [paths...]
                                   parse every source file under paths, using a
                                   persistent cache to skip files already proven clean
  ecmaparse repl                  start an interactive parse REPL
  ecmaparse -h | --help           show this message`)
}

// runParseCommand implements the default `ecmaparse [--module] [file]` form.
func runParseCommand(args []string) {
	forceModule := false
	var path string
	for _, a := range args {
		switch {
		case a == "--module":
			forceModule = true
		case !strings.HasPrefix(a, "-"):
			path = a
		}
	}

	source, err := readSource(path)
	if err != nil {
		errColor.Fprintf(os.Stderr, "ecmaparse: %s\n", err)
		os.Exit(1)
	}

	sourceType := detectSourceType(path, forceModule)
	prog, perr := parseSource(source, sourceType)
	if perr != nil {
		reportSyntaxError(path, perr)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(prog, "", "  ")
	if err != nil {
		errColor.Fprintf(os.Stderr, "ecmaparse: encoding AST: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", fmt.Errorf("usage: ecmaparse [--module] <file> or pipe source on stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// detectSourceType picks the script/module split: an explicit --module
// flag, or a ".mjs" extension, selects module source; anything else
// defaults to script.
func detectSourceType(path string, forceModule bool) pipeline.SourceType {
	if forceModule || strings.HasSuffix(path, ".mjs") {
		return pipeline.Module
	}
	return pipeline.Script
}

// parseSource runs the two-stage scanner -> parser pipeline over source
// and returns either the resulting Program or the terminating SyntaxError.
func parseSource(source string, sourceType pipeline.SourceType) (*ast.Program, error) {
	ctx := pipeline.NewPipelineContext(source, sourceType)
	pl := pipeline.New(&scanner.Processor{}, &parser.Processor{})
	ctx = pl.Run(ctx)

	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors[0]
	}
	return ctx.AstRoot, nil
}

func reportSyntaxError(path string, err error) {
	label := path
	if label == "" {
		label = "<stdin>"
	}
	if se, ok := err.(*diagnostics.SyntaxError); ok {
		errColor.Fprintf(os.Stderr, "%s: %s\n", label, se.Error())
		return
	}
	errColor.Fprintf(os.Stderr, "%s: %s\n", label, err)
}
