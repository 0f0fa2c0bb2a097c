package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	mdformat "github.com/wonkodv/markdown-format"
)

// outputExtension replaces the input file's extension on the formatted
// sibling file.
const outputExtension = ".formatted-md"

func init() {
	version.SetDefaultModule("github.com/wonkodv/markdown-format")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		quiet       bool
		showVersion bool
	)
	flags := pflag.NewFlagSet("mdformat", pflag.ExitOnError)
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file progress output")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdformat [flags] paths...\n")
		fmt.Fprintln(stderr, "\nEach file is rewritten next to its source with the extension replaced")
		fmt.Fprintln(stderr, "by "+outputExtension+". Directories are walked recursively; paths that")
		fmt.Fprintln(stderr, "do not exist are skipped.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if !isTerminal(stdout) {
		color.NoColor = true
	}
	p := &processor{stdout: stdout, stderr: stderr, quiet: quiet}
	for _, arg := range flags.Args() {
		p.walk(arg)
	}
	if p.failed {
		return 1
	}
	return 0
}

type processor struct {
	stdout io.Writer
	stderr io.Writer
	quiet  bool
	failed bool
}

// walk formats a file, or every regular file under a directory in
// traversal order. Paths that do not exist are skipped silently and count
// as neither success nor failure.
func (p *processor) walk(path string) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		p.report(path, err)
		return
	}
	if !info.IsDir() {
		p.processFile(path)
		return
	}
	err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
		if err != nil {
			p.report(entry, err)
			return nil
		}
		if d.Type().IsRegular() {
			p.processFile(entry)
		}
		return nil
	})
	if err != nil {
		p.report(path, err)
	}
}

// processFile formats one file and writes the result beside it. Failures
// are reported and recorded but never stop the batch.
func (p *processor) processFile(path string) {
	if !p.quiet {
		fmt.Fprintf(p.stdout, "Processing %s\n", path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		p.report(path, err)
		return
	}
	out, err := mdformat.Format(src)
	if err != nil {
		p.report(path, err)
		return
	}
	if err := os.WriteFile(outputPath(path), out, 0o644); err != nil {
		p.report(path, err)
	}
}

// outputPath replaces the file's extension with outputExtension, or
// appends it when the file has none.
func outputPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + outputExtension
}

var errorColor = color.New(color.FgRed, color.Bold)

func (p *processor) report(path string, err error) {
	_, _ = errorColor.Fprintf(p.stderr, "Error processing %s: %v\n", path, err)
	p.failed = true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
