// normalise.go implements identifier normalisation shared by Find and Validate.
//
// Stored keys are display strings ("Getting Started") while requests arrive as
// slugs ("getting_started") or loosely typed names ("getting started"). The
// two operations compare differently: Find compares Slug forms, Validate
// compares TitleCase forms. Snake is the on-disk form.

package nav

import (
	"strings"
	"unicode"
)

// Slug lower-cases s and treats underscores as spaces.
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", " ")
}

// TitleCase converts s to start case: words are split on separators and
// case/digit boundaries, the first letter of each word is upper-cased and the
// words are joined with single spaces. "getting_started" and "gettingStarted"
// both become "Getting Started".
func TitleCase(s string) string {
	ws := words(s)
	for i, w := range ws {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		ws[i] = string(r)
	}
	return strings.Join(ws, " ")
}

// Snake converts s to lower-case words joined by underscores.
func Snake(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "_")
}

// words splits s into words. Any rune that is not a letter or digit separates
// words; a lower-case letter followed by an upper-case one starts a new word,
// as does the last capital of an acronym followed by a lower-case letter
// ("HTTPServer" -> "HTTP", "Server"), and any letter/digit boundary.
func words(s string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}

	rs := []rune(s)
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				flush()
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}
