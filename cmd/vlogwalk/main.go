package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/vlog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

const usageText = `Usage: vlogwalk [flags] [dir]

Walk a directory tree and log it with indented output, one level of
indentation per directory. Serves as a working example of the vlog API.

Configuration is read from a .vlogwalk.yml discovered from the walked
directory upward (keys: skip, max-depth); flags take precedence.

Flags:
`

func run(args []string) int {
	fs := flag.NewFlagSet("vlogwalk", flag.ContinueOnError)
	var (
		configPath string
		skip       []string
		maxDepth   int
		quiet      bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringArrayVarP(&skip, "skip", "s", nil, "Glob pattern to skip (repeatable)")
	fs.IntVarP(&maxDepth, "max-depth", "d", 0, "Descend at most this many levels (0 = unlimited)")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Disable the logger (no output)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "vlogwalk: %v\n", err)
		return 2
	}

	if fs.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "vlogwalk: expected at most one directory argument\n")
		return 2
	}
	root := "."
	if fs.NArg() == 1 {
		root = fs.Arg(0)
	}

	if maxDepth < 0 {
		fmt.Fprintf(os.Stderr, "vlogwalk: --max-depth must not be negative\n")
		return 2
	}

	cfg, err := loadConfig(configPath, root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vlogwalk: %v\n", err)
		return 2
	}
	cfg = cfg.mergeFlags(skip, maxDepth)

	w, err := newWalker(vlog.New(!quiet), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vlogwalk: %v\n", err)
		return 2
	}

	if err := w.walk(root); err != nil {
		fmt.Fprintf(os.Stderr, "vlogwalk: %v\n", err)
		return 2
	}
	return 0
}
