package playlist

// Column names of a playlist export that hummify reads.
const (
	TrackNameColumn  = "Track Name"
	ArtistNameColumn = "Artist Name(s)"
)

// Track represents a single track/artist pair from a playlist export
type Track struct {
	Name    string `csv:"Track Name" json:"Track Name"`
	Artists string `csv:"Artist Name(s)" json:"Artist Name(s)"`
}

// Playlist represents the ordered tracks loaded from one file
type Playlist struct {
	Source string
	Tracks []Track
}

// TrackCount returns the number of tracks in the playlist
func (p Playlist) TrackCount() int {
	return len(p.Tracks)
}
