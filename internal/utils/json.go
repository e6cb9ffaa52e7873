package utils

import (
	"bytes"
	"encoding/json"
	"os"
)

// WriteToJsonFile writes data to filePath as a JSON array indented with two spaces.
// HTML characters are not escaped. It returns the number of bytes written.
func WriteToJsonFile[T any](filePath string, data []T) (int64, error) {
	if data == nil {
		data = []T{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return 0, err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	n, err := buf.WriteTo(file)
	if err != nil {
		return n, err
	}
	return n, file.Close()
}

// ReadJsonFile decodes the JSON array stored at filePath
func ReadJsonFile[T any](filePath string) ([]T, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var data []T
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, err
	}
	return data, nil
}
