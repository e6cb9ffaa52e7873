package porter

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"hummify/internal/config"
	"hummify/internal/playlist"
)

const exportCSV = `Track URI,Track Name,Album Name,Artist Name(s),Popularity
spotify:track:1,Song [Live],Album A,Artist One,10
spotify:track:2,Song (Remastered 2011),Album B,"Artist Two, Artist Three",20
spotify:track:3,Song - Radio Edit,Album C,Artist Four,30
spotify:track:4,Song [Live] (Bonus) - Edit,Album D,Artist <Five> & Co,40
spotify:track:5,Plain Title,Album E,Artist Six,50
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readOutput(t *testing.T, path string) []map[string]string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var records []map[string]string
	if err := json.Unmarshal(b, &records); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	return records
}

func TestConvertCSVToCleanJSON(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "playlist.csv", exportCSV)

	res, err := ConvertCSVToCleanJSON(csvPath)
	if err != nil {
		t.Fatalf("ConvertCSVToCleanJSON: %v", err)
	}

	wantPath := filepath.Join(dir, config.OutputFileName)
	if res.OutputPath != wantPath {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, wantPath)
	}

	records := readOutput(t, wantPath)
	want := []map[string]string{
		{"Track Name": "Song", "Artist Name(s)": "Artist One"},
		{"Track Name": "Song", "Artist Name(s)": "Artist Two, Artist Three"},
		{"Track Name": "Song", "Artist Name(s)": "Artist Four"},
		{"Track Name": "Song", "Artist Name(s)": "Artist <Five> & Co"},
		{"Track Name": "Plain Title", "Artist Name(s)": "Artist Six"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("got %v, want %v", records, want)
	}
	if res.Playlist.TrackCount() != len(want) {
		t.Errorf("TrackCount = %d, want %d", res.Playlist.TrackCount(), len(want))
	}

	info, _ := os.Stat(wantPath)
	if info.Size() != res.Bytes {
		t.Errorf("Bytes = %d, file size %d", res.Bytes, info.Size())
	}
}

func TestConvertCSVToCleanJSON_Format(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "p.csv", "Artist Name(s),Track Name\nA & B,Tune (Live)\n")

	if _, err := ConvertCSVToCleanJSON(csvPath); err != nil {
		t.Fatalf("ConvertCSVToCleanJSON: %v", err)
	}
	b, _ := os.ReadFile(filepath.Join(dir, config.OutputFileName))
	want := "[\n  {\n    \"Track Name\": \"Tune\",\n    \"Artist Name(s)\": \"A & B\"\n  }\n]\n"
	if string(b) != want {
		t.Errorf("got %q, want %q", string(b), want)
	}
}

func TestConvertCSVToCleanJSON_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var sb strings.Builder
	sb.WriteString("Track Name,Artist Name(s)\n")
	names := []string{"Zeta", "Alpha [x]", "Mu - y", "Beta (z)", "Alpha"}
	for i, n := range names {
		sb.WriteString(n + ",artist" + string(rune('0'+i)) + "\n")
	}
	csvPath := writeFile(t, dir, "order.csv", sb.String())

	if _, err := ConvertCSVToCleanJSON(csvPath); err != nil {
		t.Fatalf("ConvertCSVToCleanJSON: %v", err)
	}
	records := readOutput(t, filepath.Join(dir, config.OutputFileName))
	wantNames := []string{"Zeta", "Alpha", "Mu", "Beta", "Alpha"}
	if len(records) != len(wantNames) {
		t.Fatalf("got %d records, want %d", len(records), len(wantNames))
	}
	for i, r := range records {
		if len(r) != 2 {
			t.Errorf("record %d has keys %v", i, r)
		}
		if r["Track Name"] != wantNames[i] {
			t.Errorf("record %d Track Name = %q, want %q", i, r["Track Name"], wantNames[i])
		}
		if r["Artist Name(s)"] != "artist"+string(rune('0'+i)) {
			t.Errorf("record %d Artist Name(s) = %q", i, r["Artist Name(s)"])
		}
	}
}

func TestConvertCSVToCleanJSON_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "empty.csv", "Track Name,Artist Name(s)\n")
	if _, err := ConvertCSVToCleanJSON(csvPath); err != nil {
		t.Fatalf("ConvertCSVToCleanJSON: %v", err)
	}
	b, _ := os.ReadFile(filepath.Join(dir, config.OutputFileName))
	if string(b) != "[]\n" {
		t.Errorf("got %q", string(b))
	}
}

func TestConvertCSVToCleanJSON_ShortRow(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "short.csv", "Track Name,Artist Name(s)\nOnly Title\n")
	res, err := ConvertCSVToCleanJSON(csvPath)
	if err != nil {
		t.Fatalf("ConvertCSVToCleanJSON: %v", err)
	}
	want := []playlist.Track{{Name: "Only Title", Artists: ""}}
	if !reflect.DeepEqual(res.Playlist.Tracks, want) {
		t.Errorf("got %v, want %v", res.Playlist.Tracks, want)
	}
}

func TestConvertCSVToCleanJSON_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "bad.csv", "Track Name,Artist Name\nSong,Someone\n")

	_, err := ConvertCSVToCleanJSON(csvPath)
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("err = %v, want ErrMissingColumns", err)
	}
	if !strings.Contains(err.Error(), "Artist Name(s)") {
		t.Errorf("error does not name the column: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, config.OutputFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output file written on schema error")
	}
}

func TestConvertCSVToCleanJSON_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertCSVToCleanJSON(filepath.Join(dir, "nope.csv"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
	if _, err := os.Stat(filepath.Join(dir, config.OutputFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output file written for missing input")
	}
}

func TestConvertCSVToCleanJSON_Directory(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertCSVToCleanJSON(dir)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestConvertCSVToCleanJSON_RelativePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "list.csv", "Track Name,Artist Name(s)\nA,B\n")
	t.Chdir(dir)

	res, err := ConvertCSVToCleanJSON("list.csv")
	if err != nil {
		t.Fatalf("ConvertCSVToCleanJSON: %v", err)
	}
	if res.OutputPath != config.OutputFileName {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, config.OutputFileName)
	}
	if _, err := os.Stat(filepath.Join(dir, config.OutputFileName)); err != nil {
		t.Errorf("output not in working directory: %v", err)
	}
}

func TestConvertCSVToCleanJSON_NoRemnants(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "playlist.csv", exportCSV)
	if _, err := ConvertCSVToCleanJSON(csvPath); err != nil {
		t.Fatal(err)
	}
	for _, r := range readOutput(t, filepath.Join(dir, config.OutputFileName)) {
		if strings.ContainsAny(r["Track Name"], "[]()-") {
			t.Errorf("Track Name %q still annotated", r["Track Name"])
		}
	}
}

func TestRequiredColumns(t *testing.T) {
	want := []string{playlist.TrackNameColumn, playlist.ArtistNameColumn}
	if got := RequiredColumns(); !reflect.DeepEqual(got, want) {
		t.Errorf("RequiredColumns() = %v, want %v", got, want)
	}
}

func TestConvertCSVToCleanJSON_RecordsSource(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "playlist.csv", exportCSV)
	res, err := ConvertCSVToCleanJSON(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if res.Playlist.Source != csvPath {
		t.Errorf("Source = %q, want %q", res.Playlist.Source, csvPath)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dir/playlist.csv", filepath.Join("dir", config.OutputFileName)},
		{"playlist.csv", config.OutputFileName},
		{"/a/b/c.csv", filepath.Join("/a/b", config.OutputFileName)},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type recordingLogger struct{ lines []string }

func (r *recordingLogger) Debug(format string, args ...interface{}) {
	r.lines = append(r.lines, format)
}

func TestPorter_LogsProgress(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "playlist.csv", exportCSV)
	log := &recordingLogger{}
	if _, err := NewPorter(log).ConvertCSVToCleanJSON(csvPath); err != nil {
		t.Fatal(err)
	}
	if len(log.lines) == 0 {
		t.Error("expected debug lines")
	}
}
