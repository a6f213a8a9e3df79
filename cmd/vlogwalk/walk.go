package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/jeduden/vlog"
)

// walker logs a directory tree through a vlog.Logger, one entry per line
// and one indentation level per directory. Entries come out in ReadDir
// order (lexical); symbolic links are logged but not followed.
type walker struct {
	logger   *vlog.Logger
	skip     []glob.Glob
	maxDepth int // 0 means unlimited

	dirs  int
	files int
}

// newWalker compiles the config's skip patterns. Invalid patterns are
// reported, not silently dropped.
func newWalker(logger *vlog.Logger, cfg *config) (*walker, error) {
	w := &walker{logger: logger, maxDepth: cfg.MaxDepth}
	for _, pattern := range cfg.Skip {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid skip pattern %q: %w", pattern, err)
		}
		w.skip = append(w.skip, g)
	}
	return w, nil
}

// walk logs the tree rooted at dir and a closing summary line. The root
// itself is not counted in the summary.
func (w *walker) walk(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	w.logger.Logf("%s\n", filepath.Clean(dir))
	w.walkDir(dir, 1)

	w.logger.Logf("\n%d directories, %d files\n", w.dirs, w.files)
	return nil
}

// walkDir logs the entries of dir at the given depth. Unreadable
// directories produce a nested note and the walk continues.
func (w *walker) walkDir(dir string, depth int) {
	if w.maxDepth > 0 && depth > w.maxDepth {
		return
	}

	w.logger.Indent()
	defer w.logger.Exdent()

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Logf("(unreadable: %v)\n", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)
		if w.skipped(path, name) {
			continue
		}
		if entry.IsDir() {
			w.dirs++
			w.logger.Logf("%s/\n", name)
			w.walkDir(path, depth+1)
			continue
		}
		w.files++
		w.logger.Logf("%s\n", name)
	}
}

// skipped reports whether any skip pattern matches the path, the cleaned
// path, or the base name.
func (w *walker) skipped(path, base string) bool {
	clean := filepath.Clean(path)
	for _, g := range w.skip {
		if g.Match(path) || g.Match(clean) || g.Match(base) {
			return true
		}
	}
	return false
}
