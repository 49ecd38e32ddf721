package core

// parse.go turns raw upload bytes into a Table.
//
// CSV is the primary format; the encoding fallback in decode.go handles
// the charset mess. Files with an XLSX signature are read through
// excelize instead, since some providers export spreadsheets rather
// than CSV and users upload whichever they have.

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxMagic is the zip local-file-header signature; XLSX files are zip
// archives.
var xlsxMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// ParseTable parses raw upload bytes into a Table for the given role.
// The first row becomes the header (cells trimmed of surrounding
// whitespace); all remaining rows are data. Returns EmptyFileError if
// there are no data rows and DecodeError if no supported encoding could
// decode a CSV file.
func ParseTable(data []byte, role Role) (*Table, error) {
	var rows [][]string
	var encoding string
	var err error

	if bytes.HasPrefix(data, xlsxMagic) {
		encoding = "xlsx"
		rows, err = readXLSX(data, role)
	} else {
		rows, encoding, err = readCSV(data, role)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, &EmptyFileError{Role: role}
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	return &Table{Header: header, Rows: rows[1:], Encoding: encoding}, nil
}

func readCSV(data []byte, role Role) ([][]string, string, error) {
	text, encoding, ok := Decode(data)
	if !ok {
		return nil, "", &DecodeError{Role: role}
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // exports pad or truncate trailing columns
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s csv: %w", role, err)
	}
	return rows, encoding, nil
}

func readXLSX(data []byte, role Role) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening %s xlsx: %w", role, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &EmptyFileError{Role: role}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s xlsx sheet %q: %w", role, sheets[0], err)
	}
	return rows, nil
}
