package main

import (
	"strings"
)

// scanState is the mode a comment scanner is in before consuming the next byte.
type scanState int

const (
	stateNormal scanState = iota
	stateString
	stateLineComment
	stateBlockComment
)

// removeCLikeComments strips // line comments and /* */ block comments.
// Everything between matching ", ' or ` delimiters is copied verbatim, and a
// backslash inside a literal always travels with the byte after it so an
// escaped quote cannot close the literal early.
func removeCLikeComments(content string) string {
	var result strings.Builder
	result.Grow(len(content))

	state := stateNormal
	var delim byte

	for i := 0; i < len(content); {
		ch := content[i]
		next := byteAt(content, i+1)

		switch state {
		case stateLineComment:
			// Keep the line ending so line numbers in the output stay stable.
			// A \r ends the comment whether or not a \n follows it.
			if ch == '\n' || ch == '\r' {
				result.WriteByte(ch)
				state = stateNormal
			}
			i++

		case stateBlockComment:
			// No nesting: the first */ closes the comment whatever it contains
			if ch == '*' && next == '/' {
				state = stateNormal
				i += 2
				continue
			}
			i++

		case stateString:
			result.WriteByte(ch)
			if ch == '\\' && i+1 < len(content) {
				result.WriteByte(content[i+1])
				i += 2
				continue
			}
			if ch == delim {
				state = stateNormal
			}
			i++

		default:
			switch {
			case ch == '"' || ch == '\'' || ch == '`':
				state, delim = stateString, ch
				result.WriteByte(ch)
				i++
			case ch == '/' && next == '/':
				state = stateLineComment
				i += 2
			case ch == '/' && next == '*':
				state = stateBlockComment
				i += 2
			default:
				result.WriteByte(ch)
				i++
			}
		}
	}

	return result.String()
}

// byteAt returns content[i], or 0 past the end of content.
func byteAt(content string, i int) byte {
	if i < len(content) {
		return content[i]
	}
	return 0
}
