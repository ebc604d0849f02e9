// Package fileutil reads and rewrites the UTF-8 source files the stripper
// works on.
package fileutil

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ReadText reads the whole file at path and rejects content that is not
// valid UTF-8. A byte order mark is kept as part of the text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
		return "", fmt.Errorf("failed to decode %s as UTF-8: %w", path, err)
	}

	return string(data), nil
}

// WriteText overwrites the file at path with text in place. The file keeps
// its inode, owner and permission bits, so hard links and symbolic links
// keep pointing at the rewritten content.
func WriteText(path string, text string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// The mode only applies on create; an existing file is truncated as is
	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
