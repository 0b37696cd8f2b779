package main

import (
	"encoding/json"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/funvibe/ecmaparse/internal/diagnostics"
	"github.com/funvibe/ecmaparse/internal/pipeline"
)

// runREPL starts an interactive parse loop: each line is fed through the
// same parseSource entry point the file-mode CLI uses, and either the
// resulting AST or the SyntaxError is printed. Readline provides line editing and history;
// `.exit` quits, and a per-line panic recovery wrapper keeps one bad
// input from killing the session.
func runREPL() {
	var (
		blueColor   = color.New(color.FgBlue)
		yellowColor = color.New(color.FgYellow)
		redColor    = color.New(color.FgRed)
		greenColor  = color.New(color.FgGreen)
	)

	greenColor.Println("ecmaparse -- ES2015 parser REPL")
	blueColor.Println("Type a statement or expression and press enter. '.exit' to quit, '.module' to toggle module mode.")

	rl, err := readline.New("ecmaparse> ")
	if err != nil {
		redColor.Printf("readline: %s\n", err)
		return
	}
	defer rl.Close()

	sourceType := pipeline.Script

	for {
		line, err := rl.Readline()
		if err != nil {
			blueColor.Println("Good bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			blueColor.Println("Good bye!")
			return
		}
		if line == ".module" {
			if sourceType == pipeline.Script {
				sourceType = pipeline.Module
				yellowColor.Println("(module mode on)")
			} else {
				sourceType = pipeline.Script
				yellowColor.Println("(module mode off)")
			}
			continue
		}

		rl.SaveHistory(line)
		replEval(line, sourceType, yellowColor, redColor)
	}
}

func replEval(line string, sourceType pipeline.SourceType, yellowColor, redColor *color.Color) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Printf("[internal error] %v\n", r)
		}
	}()

	prog, err := parseSource(line, sourceType)
	if err != nil {
		if se, ok := err.(*diagnostics.SyntaxError); ok {
			redColor.Println(se.Error())
			return
		}
		redColor.Println(err.Error())
		return
	}

	out, err := json.MarshalIndent(prog, "", "  ")
	if err != nil {
		redColor.Printf("encoding AST: %s\n", err)
		return
	}
	yellowColor.Println(string(out))
}
