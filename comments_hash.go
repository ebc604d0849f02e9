package main

import (
	"strings"
)

// removeHashComments strips # line comments and <# #> block comments as used
// by PowerShell and POSIX shells. Quoting mirrors removeCLikeComments but only
// " and ' open a literal.
func removeHashComments(content string) string {
	var result strings.Builder
	result.Grow(len(content))

	state := stateNormal
	var delim byte

	for i := 0; i < len(content); {
		ch := content[i]
		next := byteAt(content, i+1)

		switch state {
		case stateBlockComment:
			if ch == '#' && next == '>' {
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
			case ch == '"' || ch == '\'':
				state, delim = stateString, ch
				result.WriteByte(ch)
				i++
			case ch == '<' && next == '#':
				state = stateBlockComment
				i += 2
			case ch == '#':
				// Skip to the line ending but leave it for the normal scan to copy
				end := strings.IndexAny(content[i:], "\r\n")
				if end == -1 {
					i = len(content)
				} else {
					i += end
				}
			default:
				result.WriteByte(ch)
				i++
			}
		}
	}

	return result.String()
}
