package porter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"

	"hummify/internal/cleaner"
	"hummify/internal/config"
	"hummify/internal/playlist"
	"hummify/internal/utils"
)

var (
	// ErrFileNotFound is returned when the input path is not an existing regular file
	ErrFileNotFound = errors.New("file not found")
	// ErrMissingColumns is returned when the CSV header lacks a required column
	ErrMissingColumns = errors.New("missing required columns")
)

// Logger is the subset of logging.Logger the porter reports progress to
type Logger interface {
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Porter converts playlist CSV exports into cleaned JSON track lists
type Porter struct {
	log Logger
}

// Result describes a finished conversion
type Result struct {
	Playlist   playlist.Playlist
	OutputPath string
	Bytes      int64
}

// NewPorter creates a new Porter reporting to log. A nil log discards progress messages.
func NewPorter(log Logger) *Porter {
	if log == nil {
		log = nopLogger{}
	}
	return &Porter{log: log}
}

// RequiredColumns returns the CSV columns a playlist export must have, in output order
func RequiredColumns() []string {
	return utils.StructToCsvHeader(reflect.TypeOf(playlist.Track{}))
}

// OutputPath returns where the cleaned list for csvPath is written:
// next to the input file, or in the current directory when csvPath has no directory part.
func OutputPath(csvPath string) string {
	return filepath.Join(filepath.Dir(csvPath), config.OutputFileName)
}

// ConvertCSVToCleanJSON converts the CSV at csvPath with a Porter that logs nothing
func ConvertCSVToCleanJSON(csvPath string) (Result, error) {
	return NewPorter(nil).ConvertCSVToCleanJSON(csvPath)
}

// ConvertCSVToCleanJSON reads the playlist export at csvPath, cleans every track name
// and writes the track/artist pairs, in file order, next to the input file.
// Nothing is written when the file is missing or lacks a required column.
func (s *Porter) ConvertCSVToCleanJSON(csvPath string) (Result, error) {
	pl, err := s.LoadPlaylistFromCSV(csvPath)
	if err != nil {
		return Result{}, err
	}

	for i := range pl.Tracks {
		pl.Tracks[i].Name = cleaner.CleanTrackName(pl.Tracks[i].Name)
	}

	outputPath := OutputPath(csvPath)
	n, err := utils.WriteToJsonFile(outputPath, pl.Tracks)
	if err != nil {
		return Result{}, fmt.Errorf("error writing JSON file: %w", err)
	}
	s.log.Debug("wrote %d tracks to %s (%s)", pl.TrackCount(), outputPath, humanize.Bytes(uint64(n)))

	return Result{Playlist: pl, OutputPath: outputPath, Bytes: n}, nil
}

// LoadPlaylistFromCSV reads the raw track/artist pairs of a playlist export
func (s *Porter) LoadPlaylistFromCSV(csvPath string) (playlist.Playlist, error) {
	info, err := os.Stat(csvPath)
	if err != nil || !info.Mode().IsRegular() {
		return playlist.Playlist{}, fmt.Errorf("%w: %s", ErrFileNotFound, csvPath)
	}
	s.log.Debug("reading %s (%s)", csvPath, humanize.Bytes(uint64(info.Size())))

	header, rows, err := utils.ReadCsvFile(csvPath)
	if err != nil {
		return playlist.Playlist{}, fmt.Errorf("error reading CSV file: %w", err)
	}

	columns := RequiredColumns()
	if missing := utils.MissingColumns(header, columns); len(missing) > 0 {
		return playlist.Playlist{}, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	projected, err := utils.ProjectColumns(header, rows, columns)
	if err != nil {
		return playlist.Playlist{}, err
	}

	tracks := make([]playlist.Track, 0, len(projected))
	for _, row := range projected {
		tracks = append(tracks, playlist.Track{Name: row[0], Artists: row[1]})
	}
	s.log.Debug("loaded %d rows, %d columns", len(tracks), len(header))

	return playlist.Playlist{Source: csvPath, Tracks: tracks}, nil
}
