package main

import (
	"regexp"
)

// markupCommentPattern matches the shortest <!-- ... --> run, across newlines.
var markupCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// removeMarkupComments strips <!-- --> comments from XML-family documents.
// Removal repeats until nothing matches, since deleting one comment can join
// the pieces of another (<!<!-- a -->-- b -->).
func removeMarkupComments(content string) string {
	for markupCommentPattern.MatchString(content) {
		content = markupCommentPattern.ReplaceAllLiteralString(content, "")
	}
	return content
}
