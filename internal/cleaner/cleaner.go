// Package cleaner strips release annotations from track names so that the
// remaining title is what a listener would actually say out loud.
package cleaner

import (
	"regexp"
	"strings"
	"unicode"
)

// ws matches one Unicode white space character, including the separators
// (\v, \x1c-\x1f, \x85) that RE2's \s leaves out.
const ws = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	reBracketed     = regexp.MustCompile(ws + `*\[.*?\]`)
	reParenthesized = regexp.MustCompile(ws + `*\(.*?\)`)
	reDashSuffix    = regexp.MustCompile(ws + `*-` + ws + `*.*\n?$`)
)

// CleanTrackName removes, in order, every [..] group, every (..) group and
// the first " - ..." suffix from name, each together with the white space
// in front of it, then trims the result. Unbalanced brackets are kept.
// The result may be empty.
func CleanTrackName(name string) string {
	name = reBracketed.ReplaceAllString(name, "")
	name = reParenthesized.ReplaceAllString(name, "")
	name = removeFirst(reDashSuffix, name)
	return strings.TrimFunc(name, isSpace)
}

func removeFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
