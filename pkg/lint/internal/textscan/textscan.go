// Package textscan holds the matching primitives shared by the prose rules:
// word classification, sentence-start detection and phrase matching.
package textscan

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r can be part of a word.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// sentenceTerminators end a sentence or an independent clause.
const sentenceTerminators = ".!?;"

// IsSentenceTerminator reports whether r ends a sentence or clause.
func IsSentenceTerminator(r rune) bool {
	return strings.ContainsRune(sentenceTerminators, r)
}

// IsSentenceStart reports whether byte offset i begins a sentence: the start
// of the text (ignoring leading whitespace), the start of a line, or a
// position after sentence-terminal punctuation followed by whitespace.
func IsSentenceStart(text string, i int) bool {
	if i < 0 || i > len(text) {
		return false
	}

	j := i
	sawSpace := false
	for j > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:j])
		if !unicode.IsSpace(r) {
			break
		}
		if r == '\n' || r == '\r' {
			return true
		}
		sawSpace = true
		j -= size
	}
	if j == 0 {
		return true
	}

	prev, _ := utf8.DecodeLastRuneInString(text[:j])
	return sawSpace && IsSentenceTerminator(prev)
}

// RuneAfter returns the rune starting at byte offset i, or utf8.RuneError and
// false at the end of text.
func RuneAfter(text string, i int) (rune, bool) {
	if i >= len(text) {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return r, true
}

// Word is a maximal run of word runes (apostrophes allowed inside).
type Word struct {
	Start int
	End   int
}

// Len returns the byte length of the word.
func (w Word) Len() int {
	return w.End - w.Start
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+(?:['’][\p{L}\p{N}_]+)*`)

// Words splits text into words, in order.
func Words(text string) []Word {
	locs := wordPattern.FindAllStringIndex(text, -1)
	words := make([]Word, 0, len(locs))
	for _, loc := range locs {
		words = append(words, Word{Start: loc[0], End: loc[1]})
	}
	return words
}

// IsBlank reports whether s is non-empty and only whitespace.
func IsBlank(s string) bool {
	if s == "" {
		return false
	}
	return strings.TrimSpace(s) == ""
}

// PhraseMatcher finds whole-word, case-insensitive occurrences of any phrase
// from a fixed list. Build it once and share it; it is safe for concurrent use.
type PhraseMatcher struct {
	re *regexp.Regexp
}

// NewPhraseMatcher compiles phrases into a single matcher. Longer phrases win
// when several start at the same position. Spaces inside a phrase match any
// run of spaces or tabs, never a line break.
func NewPhraseMatcher(phrases []string) *PhraseMatcher {
	sorted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p = strings.TrimSpace(p); p != "" {
			sorted = append(sorted, p)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	alternatives := make([]string, 0, len(sorted))
	for _, p := range sorted {
		alternatives = append(alternatives, phrasePattern(p))
	}
	if len(alternatives) == 0 {
		return &PhraseMatcher{}
	}
	return &PhraseMatcher{re: regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`)}
}

// NewPatternMatcher wraps a raw case-insensitive pattern. The pattern is
// responsible for its own boundaries.
func NewPatternMatcher(pattern string) *PhraseMatcher {
	return &PhraseMatcher{re: regexp.MustCompile(`(?i)` + pattern)}
}

// phrasePattern turns one literal phrase into a regexp alternative with word
// boundaries on whichever ends are word runes.
func phrasePattern(phrase string) string {
	fields := strings.Fields(phrase)
	quoted := make([]string, len(fields))
	for i, f := range fields {
		q := regexp.QuoteMeta(f)
		quoted[i] = strings.NewReplacer("'", "['’]", "’", "['’]").Replace(q)
	}
	body := strings.Join(quoted, `[ \t]+`)

	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)
	if IsWordRune(first) {
		body = `\b` + body
	}
	if IsWordRune(last) {
		body += `\b`
	}
	return body
}

// FindAll returns the [start, end) byte offsets of every non-overlapping match.
// A match that touches a letter, digit or underscore outside it, as "few" in
// "caféfew", is part of a longer word and is skipped.
func (m *PhraseMatcher) FindAll(text string) [][2]int {
	if m == nil || m.re == nil || text == "" {
		return nil
	}
	spans := make([][2]int, 0)
	for pos := 0; pos < len(text); {
		loc := m.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && isWholeWord(text, start, end) {
			spans = append(spans, [2]int{start, end})
			pos = end
			continue
		}
		// RE2's \b only knows ASCII word characters; retry one rune later.
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return spans
}

// isWholeWord reports whether text[start:end] does not continue a word on
// either side.
func isWholeWord(text string, start, end int) bool {
	first, _ := utf8.DecodeRuneInString(text[start:end])
	if IsWordRune(first) && start > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		if IsWordRune(before) {
			return false
		}
	}
	last, _ := utf8.DecodeLastRuneInString(text[start:end])
	if after, ok := RuneAfter(text, end); ok && IsWordRune(last) && IsWordRune(after) {
		return false
	}
	return true
}
