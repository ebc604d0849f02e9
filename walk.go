package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// excludedDirs are never descended into, at any depth below the root.
var excludedDirs = map[string]bool{
	".git":         true,
	"bin":          true,
	"obj":          true,
	"node_modules": true,
	".vs":          true,
	".vscode":      true,
	"__pycache__":  true,
}

// walkTree calls visit once for every file under root, skipping excluded
// directories with their whole subtree. The first error from the walk or from
// visit stops the traversal and is returned.
func walkTree(root string, visit func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access %s: %w", path, err)
		}

		if d.IsDir() {
			if path != root && excludedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !isFileEntry(path, d) {
			return nil
		}

		return visit(path)
	})
}

// isFileEntry reports whether d should be handed to the dispatcher. Symlinks
// count when they point at a regular file; WalkDir never follows them into
// directories. A dangling link is passed through so reading it fails loudly.
func isFileEntry(path string, d fs.DirEntry) bool {
	mode := d.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.Mode().IsRegular()
}
