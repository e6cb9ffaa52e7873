// Package game holds the offline parts of the Hummify guessing game:
// deciding whether a guess names a track, and picking the next track to play.
package game

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"hummify/internal/playlist"
)

// ErrNoSongData is returned when the track to check against has no title or no artist
var ErrNoSongData = errors.New("no song data provided")

var (
	reAnnotations = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	reNoiseWords  = regexp.MustCompile(`(remaster(ed)?|version|edit|bonus track|mono|stereo|feat\.?|featuring|explicit|clean|single|album|mix|live|deluxe|original|demo|reissue|re-issue|re\s?record(ed)?|with .+|from .+|\d{4})`)
	rePunctuation = regexp.MustCompile(`[^a-z0-9\s\p{Z}]`)
)

// Verdict is the outcome of checking one guess
type Verdict struct {
	Correct      bool
	ActualTitle  string
	ActualArtist string
}

// Normalize lower-cases s, drops bracketed groups, release/version words and
// punctuation, and splits what is left into words.
// Noise words are matched anywhere, so "remix" loses its "mix" and "olive" its "live".
func Normalize(s string) []string {
	s = strings.ToLower(s)
	s = reAnnotations.ReplaceAllString(s, "")
	s = reNoiseWords.ReplaceAllString(s, "")
	s = rePunctuation.ReplaceAllString(s, "")
	return strings.Fields(s)
}

// CheckGuess reports whether guess contains every normalized word of the
// track's title and every normalized word of its artist, in any order.
func CheckGuess(guess string, t playlist.Track) (Verdict, error) {
	if t.Name == "" || t.Artists == "" {
		return Verdict{}, ErrNoSongData
	}

	guessWords := Normalize(guess)
	containsAll := func(words []string) bool {
		for _, w := range words {
			if !slices.Contains(guessWords, w) {
				return false
			}
		}
		return true
	}

	return Verdict{
		Correct:      containsAll(Normalize(t.Name)) && containsAll(Normalize(t.Artists)),
		ActualTitle:  t.Name,
		ActualArtist: t.Artists,
	}, nil
}
