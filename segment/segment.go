package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options configures which separators bind neighbouring word runs together.
//
// An empty set means every non-word character belongs to it.
type Options struct {
	// WordJoiners bind two word runs when they sit directly between them,
	// e.g. the apostrophe in "don't".
	WordJoiners string

	// DigitGroupers bind two digit runs, e.g. the comma in "3,000". They only
	// apply when the character before is a digit and the one after is a digit.
	DigitGroupers string
}

func DefaultOptions() Options {
	return Options{
		WordJoiners:   "':",
		DigitGroupers: ",;.",
	}
}

// Segmenter tokenizes text. The zero value treats every non-word character
// as both a joiner and a grouper; use Default or New(DefaultOptions()) for
// the usual behaviour.
type Segmenter struct {
	opt Options
}

func New(opt Options) Segmenter { return Segmenter{opt: opt} }

func Default() Segmenter { return New(DefaultOptions()) }

func (s Segmenter) Options() Options { return s.opt }

// Tokens returns the tokens of text in order. Concatenating them yields text.
func (s Segmenter) Tokens(text string) []string {
	lengths := s.Lengths(text)
	if len(lengths) == 0 {
		return nil
	}
	out := make([]string, 0, len(lengths))
	i := 0
	for _, n := range lengths {
		out = append(out, text[i:i+n])
		i += n
	}
	return out
}

// Lengths returns the byte length of every token of text in order.
func (s Segmenter) Lengths(text string) []int {
	var out []int
	i := 0
	for i < len(text) {
		start := i
		r, _ := utf8.DecodeRuneInString(text[i:])
		if isWordRune(r) {
			i = s.scanWord(text, i)
		}
		i = scanNonWord(text, i)
		out = append(out, i-start)
	}
	return out
}

// LastLen returns the byte length of the final token of text, or 0 for "".
func (s Segmenter) LastLen(text string) int {
	lengths := s.Lengths(text)
	if len(lengths) == 0 {
		return 0
	}
	return lengths[len(lengths)-1]
}

// scanWord consumes a word starting at i, including any joined or grouped
// continuation runs, and returns the offset just past it.
func (s Segmenter) scanWord(text string, i int) int {
	lastDigit := false
	for {
		for i < len(text) {
			r, n := utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				break
			}
			lastDigit = unicode.IsDigit(r)
			i += n
		}
		if i >= len(text) {
			return i
		}

		sep, n := utf8.DecodeRuneInString(text[i:])
		if i+n >= len(text) {
			return i
		}
		next, _ := utf8.DecodeRuneInString(text[i+n:])
		if !isWordRune(next) {
			return i
		}

		switch {
		case inSet(s.opt.WordJoiners, sep):
			i += n
		case lastDigit && unicode.IsDigit(next) && inSet(s.opt.DigitGroupers, sep):
			i += n
		default:
			return i
		}
	}
}

func scanNonWord(text string, i int) int {
	for i < len(text) {
		r, n := utf8.DecodeRuneInString(text[i:])
		if isWordRune(r) {
			break
		}
		i += n
	}
	return i
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// inSet is only asked about non-word runes.
func inSet(set string, r rune) bool {
	if set == "" {
		return true
	}
	return strings.ContainsRune(set, r)
}
