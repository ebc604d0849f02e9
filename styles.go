package main

import (
	"path/filepath"
	"strings"
)

// commentStyle selects which scanner strips a file.
type commentStyle int

const (
	styleCLike commentStyle = iota + 1
	styleMarkup
	styleHash
)

// styleByExtension maps lowercased extensions to the scanner that handles them.
var styleByExtension = map[string]commentStyle{
	".js":  styleCLike,
	".jsx": styleCLike,
	".ts":  styleCLike,
	".tsx": styleCLike,
	".cs":  styleCLike,
	".c":   styleCLike,
	".cpp": styleCLike,
	".h":   styleCLike,
	".mjs": styleCLike,

	".xaml":   styleMarkup,
	".xml":    styleMarkup,
	".csproj": styleMarkup,
	".resx":   styleMarkup,
	".config": styleMarkup,
	".axml":   styleMarkup,

	".ps1":  styleHash,
	".sh":   styleHash,
	".bash": styleHash,
}

// String names the style for log and test messages.
func (s commentStyle) String() string {
	switch s {
	case styleCLike:
		return "c-like"
	case styleMarkup:
		return "markup"
	case styleHash:
		return "hash"
	default:
		return "none"
	}
}

func (s commentStyle) strip(content string) string {
	switch s {
	case styleCLike:
		return removeCLikeComments(content)
	case styleMarkup:
		return removeMarkupComments(content)
	case styleHash:
		return removeHashComments(content)
	default:
		return content
	}
}

// fileExtension returns the lowercased suffix of the base name starting at its
// last dot. Dot files such as ".config" and names ending in a dot have none.
func fileExtension(path string) string {
	name := filepath.Base(path)
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx:])
}

// styleFor picks the scanner for path; ok is false for unsupported extensions.
func styleFor(path string) (commentStyle, bool) {
	style, ok := styleByExtension[fileExtension(path)]
	return style, ok
}
