// Package glob implements shell-style name matching with fnmatch semantics.
//
// Supported syntax:
//
//	*       matches any run of characters, including '/' and '.'
//	?       matches exactly one character
//	[seq]   matches one character in seq; ranges such as a-z are allowed
//	[!seq]  matches one character not in seq
//
// An unterminated '[' matches itself literally. A pattern is always matched
// against the whole name.
package glob

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pattern is a compiled glob pattern.
type Pattern struct {
	re *regexp.Regexp
}

// Compile translates a glob pattern into a Pattern. It fails for patterns whose
// character classes are invalid, such as reversed ranges.
func Compile(pattern string) (*Pattern, error) {
	re, err := regexp.Compile(translate(pattern))
	if err != nil {
		return nil, err
	}

	return &Pattern{re: re}, nil
}

// Match reports whether name matches the whole pattern.
func (p *Pattern) Match(name string) bool {
	return p.re.MatchString(name)
}

// Match reports whether name matches pattern. Malformed patterns match nothing.
func Match(pattern, name string) bool {
	p, err := Compile(pattern)
	if err != nil {
		return false
	}

	return p.Match(name)
}

func translate(pattern string) string {
	var sb strings.Builder
	sb.WriteString(`^(?s:`)

	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		i += size

		switch r {
		case '*':
			// Collapse runs of '*'.
			for i < len(pattern) && pattern[i] == '*' {
				i++
			}
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.`)
		case '[':
			end := classEnd(pattern, i)
			if end < 0 {
				sb.WriteString(`\[`)
				continue
			}
			writeClass(&sb, pattern[i:end])
			i = end + 1
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	sb.WriteString(`)$`)

	return sb.String()
}

// classEnd returns the index of the ']' closing a class that starts at start,
// or -1 when the class is unterminated. A ']' directly after the opening
// bracket (or after '!') is part of the class.
func classEnd(pattern string, start int) int {
	j := start
	if j < len(pattern) && pattern[j] == '!' {
		j++
	}
	if j < len(pattern) && pattern[j] == ']' {
		j++
	}
	for j < len(pattern) && pattern[j] != ']' {
		j++
	}
	if j >= len(pattern) {
		return -1
	}

	return j
}

func writeClass(sb *strings.Builder, body string) {
	sb.WriteByte('[')
	if strings.HasPrefix(body, "!") {
		sb.WriteByte('^')
		body = body[1:]
	}
	for _, r := range body {
		switch {
		case r == '-':
			sb.WriteRune(r)
		case r < utf8.RuneSelf && !unicode.IsLetter(r) && !unicode.IsDigit(r):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(']')
}
