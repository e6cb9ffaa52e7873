package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"hummify/internal/config"
	"hummify/internal/playlist"
	"hummify/internal/utils"
)

// PickerOption configures a Picker
type PickerOption func(*Picker)

// WithHistorySize sets how many picked tracks are remembered. Values below 1 are ignored.
func WithHistorySize(n int) PickerOption {
	return func(p *Picker) {
		if n > 0 {
			p.historySize = n
		}
	}
}

// WithRand sets the random source used for shuffling
func WithRand(r *rand.Rand) PickerOption {
	return func(p *Picker) {
		p.rand = r
	}
}

// Picker hands out tracks in random order, skipping the ones picked recently
type Picker struct {
	tracks      []playlist.Track
	recent      []playlist.Track // most recent first
	historySize int
	rand        *rand.Rand
}

// NewPicker creates a Picker over tracks. Tracks with an empty title cannot be guessed and are never picked.
func NewPicker(tracks []playlist.Track, opts ...PickerOption) *Picker {
	p := &Picker{
		historySize: config.RecentlyPlayedSize,
		rand:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, t := range tracks {
		if t.Name != "" {
			p.tracks = append(p.tracks, t)
		}
	}
	return p
}

// LoadTracks reads a cleaned track list written by the converter
func LoadTracks(path string) ([]playlist.Track, error) {
	tracks, err := utils.ReadJsonFile[playlist.Track](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load song list %s: %w", path, err)
	}
	return tracks, nil
}

// FindTrack returns the track of tracks with the given title and artist, compared case-insensitively
func FindTrack(tracks []playlist.Track, title, artist string) (playlist.Track, bool) {
	for _, t := range tracks {
		if sameTrack(t, playlist.Track{Name: title, Artists: artist}) {
			return t, true
		}
	}
	return playlist.Track{}, false
}

// Next returns a random track that was not picked recently and remembers it.
// It returns false when every track is in the recently played history.
func (p *Picker) Next() (playlist.Track, bool) {
	shuffled := make([]playlist.Track, len(p.tracks))
	copy(shuffled, p.tracks)
	p.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, t := range shuffled {
		if p.IsRecentlyPlayed(t) {
			continue
		}
		p.remember(t)
		return t, true
	}
	return playlist.Track{}, false
}

// IsRecentlyPlayed compares title and artist case-insensitively against the history
func (p *Picker) IsRecentlyPlayed(t playlist.Track) bool {
	for _, r := range p.recent {
		if sameTrack(r, t) {
			return true
		}
	}
	return false
}

// Recent returns the history, most recent first
func (p *Picker) Recent() []playlist.Track {
	out := make([]playlist.Track, len(p.recent))
	copy(out, p.recent)
	return out
}

func (p *Picker) remember(t playlist.Track) {
	p.recent = append([]playlist.Track{t}, p.recent...)
	if len(p.recent) > p.historySize {
		p.recent = p.recent[:p.historySize]
	}
}

func sameTrack(a, b playlist.Track) bool {
	return strings.EqualFold(a.Name, b.Name) && strings.EqualFold(a.Artists, b.Artists)
}
