package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/funvibe/ecmaparse/internal/cache"
)

// recognizedExtensions are the two source extensions the check walk
// picks up.
var recognizedExtensions = []string{".js", ".mjs"}

func isSourceFile(name string) bool {
	for _, ext := range recognizedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// runCheckCommand implements `ecmaparse check [--cache=path] [paths...]`:
// walk every path (file or directory), parse each recognized source file
// not already in the cache, record newly-clean parses, and print a
// humanize-formatted summary. Returns the process exit code.
func runCheckCommand(args []string) int {
	cachePath := ".ecmaparse-cache.db"
	var roots []string
	for _, a := range args {
		if strings.HasPrefix(a, "--cache=") {
			cachePath = strings.TrimPrefix(a, "--cache=")
			continue
		}
		roots = append(roots, a)
	}
	if len(roots) == 0 {
		roots = []string{"."}
	}

	c, err := cache.Open(cachePath)
	if err != nil {
		errColor.Fprintf(os.Stderr, "ecmaparse check: %s\n", err)
		return 1
	}
	defer c.Close()

	start := time.Now()
	var files []string
	for _, root := range roots {
		files = append(files, collectSourceFiles(root)...)
	}

	var (
		totalBytes int64
		skipped    int
		parsed     int
		failed     int
	)

	okColor := color.New(color.FgGreen)
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			errColor.Fprintf(os.Stderr, "%s: %s\n", path, err)
			failed++
			continue
		}
		totalBytes += int64(len(source))

		sourceType := detectSourceType(path, false)
		hash := cache.HashSource(string(source), string(sourceType))

		hit, err := c.Lookup(hash)
		if err != nil {
			errColor.Fprintf(os.Stderr, "%s: cache lookup: %s\n", path, err)
		} else if hit {
			skipped++
			continue
		}

		prog, perr := parseSource(string(source), sourceType)
		if perr != nil {
			reportSyntaxError(path, perr)
			failed++
			continue
		}

		parsed++
		if err := c.Record(hash, path, string(sourceType), len(source), countNodes(prog), runID); err != nil {
			errColor.Fprintf(os.Stderr, "%s: cache record: %s\n", path, err)
		}
	}

	stats, _ := c.Stats()
	okColor.Fprintf(os.Stdout, "ecmaparse check: %d parsed, %d cached (skipped), %d failed\n", parsed, skipped, failed)
	fmt.Printf("  %s scanned across %d files in %s (cache now holds %d entries)\n",
		humanize.Bytes(uint64(totalBytes)), len(files), time.Since(start).Round(time.Millisecond), stats.Entries)

	if failed > 0 {
		return 1
	}
	return 0
}

func collectSourceFiles(root string) []string {
	info, err := os.Stat(root)
	if err != nil {
		errColor.Fprintf(os.Stderr, "%s: %s\n", root, err)
		return nil
	}
	if !info.IsDir() {
		return []string{root}
	}

	var files []string
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if isSourceFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files
}

// countNodes gives a cheap approximate AST size for the cache's
// node_count column: rather than maintaining an 80-case tree walker for
// a cosmetic number, the count is read back out of the same JSON encoding
// runParseCommand already produces for output.
func countNodes(prog interface{}) int {
	data, err := json.Marshal(prog)
	if err != nil {
		return 0
	}
	return strings.Count(string(data), `"type":`)
}
