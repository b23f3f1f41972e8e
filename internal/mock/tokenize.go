package mock

import "regexp"

// Matches whitespace runs, sentence punctuation, and individual CJK ideographs.
// Everything between matches is kept as a single token, so "Hello world!"
// becomes ["Hello", " ", "world", "!"].
var tokenBoundary = regexp.MustCompile(`\s+|[.,!?;]|[\x{4e00}-\x{9fa5}]`)

// Tokenize splits content into streaming tokens, keeping the boundary runs as
// tokens of their own. Concatenating the result always reproduces the input.
func Tokenize(content string) []string {
	var tokens []string
	last := 0
	for _, loc := range tokenBoundary.FindAllStringIndex(content, -1) {
		if loc[0] > last {
			tokens = append(tokens, content[last:loc[0]])
		}
		tokens = append(tokens, content[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(content) {
		tokens = append(tokens, content[last:])
	}
	return tokens
}
