package utils

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
)

// ErrEmptyCsv is returned when a CSV file has no header row
var ErrEmptyCsv = errors.New("CSV file is empty")

const utf8BOM = "\ufeff"

// StructToCsvHeader takes a struct type and returns a slice of strings representing the CSV header.
// It uses the `csv` tag on struct fields to determine the header name.
// If a field doesn't have a `csv` tag, the field name is used.
func StructToCsvHeader(t reflect.Type) []string {
	var headers []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		csvTag := field.Tag.Get("csv")

		// If the csv tag is present, use it as the header name, otherwise use the field name.
		headerName := field.Name
		if csvTag != "" {
			headerName = csvTag
		}
		headers = append(headers, headerName)
	}
	return headers
}

// ReadCsvFile reads the whole CSV file at filePath and splits it into its header row and data rows.
// A leading UTF-8 byte order mark is dropped and rows may have fewer or more fields than the header.
func ReadCsvFile(filePath string) ([]string, [][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return ReadCsv(file)
}

// ReadCsv is ReadCsvFile for an already opened reader
func ReadCsv(r io.Reader) ([]string, [][]string, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(len(utf8BOM)); err == nil && string(bom) == utf8BOM {
		br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyCsv
	}

	return records[0], records[1:], nil
}

// MissingColumns returns the entries of columns that do not appear in header, in the order given
func MissingColumns(header []string, columns []string) []string {
	var missing []string
	for _, col := range columns {
		if indexOf(header, col) < 0 {
			missing = append(missing, col)
		}
	}
	return missing
}

// ProjectColumns returns, for each row, only the cells of the given columns in the order given.
// Cells missing from a short row come back as empty strings.
func ProjectColumns(header []string, rows [][]string, columns []string) ([][]string, error) {
	idx := make([]int, len(columns))
	for i, col := range columns {
		idx[i] = indexOf(header, col)
		if idx[i] < 0 {
			return nil, fmt.Errorf("column %q not found in CSV header", col)
		}
	}

	projected := make([][]string, 0, len(rows))
	for _, row := range rows {
		out := make([]string, len(idx))
		for i, j := range idx {
			if j < len(row) {
				out[i] = row[j]
			}
		}
		projected = append(projected, out)
	}
	return projected, nil
}

// indexOf returns the index of a string in a slice or -1 if not found
func indexOf(slice []string, item string) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
