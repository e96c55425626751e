// Package autocomplete computes Tab completions for a partially typed command
// line. It is stateless: each call inspects the tree and returns the new line
// plus, when several names match, the list to show the player.
package autocomplete

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vvka-141/termhunt/internal/interpreter"
	"github.com/vvka-141/termhunt/internal/vfs"
)

// FS is the part of the tree completion reads.
type FS interface {
	Resolve(currentDir, fragment string) (string, error)
	Children(path string) []vfs.Node
}

// Completion is the result of one Tab press.
type Completion struct {
	// Line is the new input line; equal to the input when nothing applies.
	Line string
	// Listed holds every candidate when more than one matched.
	Listed []string
}

// verbs whose argument is a path.
var pathVerbs = map[string]bool{
	"ls":  true,
	"cd":  true,
	"cat": true,
	"rm":  true,
}

// Complete completes the trailing token of line.
//
// With a single token the command names are completed; a unique match gets a
// trailing space. After a path verb the names in the current directory (or in
// the directory typed before the last "/") are completed. A unique match
// replaces the token; several matches are listed and the token grows to their
// common prefix when that adds anything.
func Complete(fs FS, cwd, line string) Completion {
	tokens := tokenize(line)
	trailing := tokens[len(tokens)-1]
	head := line[:len(line)-len(trailing)]

	if len(tokens) == 1 {
		return apply(line, head, trailing, filter(interpreter.Verbs, trailing), " ")
	}

	if !pathVerbs[strings.ToLower(tokens[0])] {
		return Completion{Line: line}
	}

	dir := cwd
	prefix := trailing
	if i := strings.LastIndex(trailing, "/"); i >= 0 {
		d, err := fs.Resolve(cwd, trailing[:i+1])
		if err != nil {
			return Completion{Line: line}
		}
		dir = d
		head += trailing[:i+1]
		prefix = trailing[i+1:]
	}

	var names []string
	for _, n := range fs.Children(dir) {
		names = append(names, n.Name)
	}
	return apply(line, head, prefix, filter(names, prefix), "")
}

// tokenize splits on whitespace. A line that is empty or ends in whitespace
// gets an empty trailing token, so there is always at least one token.
func tokenize(line string) []string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || strings.TrimRightFunc(line, unicode.IsSpace) != line {
		tokens = append(tokens, "")
	}
	return tokens
}

func filter(names []string, prefix string) []string {
	lowPrefix := strings.ToLower(prefix)
	var matches []string
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

func apply(line, head, typed string, matches []string, suffix string) Completion {
	switch len(matches) {
	case 0:
		return Completion{Line: line}
	case 1:
		return Completion{Line: head + matches[0] + suffix}
	}

	out := Completion{Line: line, Listed: matches}
	common := longestCommonPrefix(matches)
	if utf8.RuneCountInString(common) > utf8.RuneCountInString(typed) {
		out.Line = head + common
	}
	return out
}

// longestCommonPrefix finds the longest common prefix among strs, comparing
// case-insensitively. The result keeps the casing of strs[0].
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	first := []rune(strs[0])
	n := len(first)
	for _, s := range strs[1:] {
		r := []rune(s)
		i := 0
		for i < n && i < len(r) && unicode.ToLower(first[i]) == unicode.ToLower(r[i]) {
			i++
		}
		n = i
	}
	return string(first[:n])
}
