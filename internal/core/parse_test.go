package core

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseTableCSV(t *testing.T) {
	data := []byte("Last Name,First Name,Email\n\"Doe, Jr.\",Jane,jane@example.edu\nSmith,Bob,bob@example.edu\n")

	table, err := ParseTable(data, RoleGradebook)
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}

	wantHeader := []string{"Last Name", "First Name", "Email"}
	if len(table.Header) != len(wantHeader) {
		t.Fatalf("header length = %d, want %d", len(table.Header), len(wantHeader))
	}
	for i, h := range wantHeader {
		if table.Header[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, table.Header[i], h)
		}
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[0][0] != "Doe, Jr." {
		t.Errorf("quoted cell = %q, want %q", table.Rows[0][0], "Doe, Jr.")
	}
	if table.Encoding != "utf-8" {
		t.Errorf("encoding = %q, want utf-8", table.Encoding)
	}
}

func TestParseTableTrimsHeader(t *testing.T) {
	data := []byte(" Email , Last Name \na@b.edu,Doe\n")

	table, err := ParseTable(data, RoleGradebook)
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	if table.Header[0] != "Email" || table.Header[1] != "Last Name" {
		t.Errorf("header = %v, want trimmed cells", table.Header)
	}
}

func TestParseTableRaggedRows(t *testing.T) {
	data := []byte("A,B,C\n1,2\n1,2,3,4\n")

	table, err := ParseTable(data, RoleProvider)
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	if len(table.Rows[0]) != 2 || len(table.Rows[1]) != 4 {
		t.Errorf("row lengths = %d, %d; want 2, 4", len(table.Rows[0]), len(table.Rows[1]))
	}
}

func TestParseTableEmpty(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"header only", []byte("NAME,EMAIL\n")},
		{"no content", []byte("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable(tt.data, RoleProvider)
			var emptyErr *EmptyFileError
			if !errors.As(err, &emptyErr) {
				t.Fatalf("ParseTable() error = %v, want EmptyFileError", err)
			}
			if emptyErr.Role != RoleProvider {
				t.Errorf("role = %q, want %q", emptyErr.Role, RoleProvider)
			}
		})
	}
}

func TestParseTableXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]any{
		{"NAME", "EMAIL", "Checkpoint Exam: Network Access"},
		{"Jane Doe", "jane@example.edu", 87.5},
	}
	for r, row := range cells {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	table, err := ParseTable(buf.Bytes(), RoleProvider)
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	if table.Encoding != "xlsx" {
		t.Errorf("encoding = %q, want xlsx", table.Encoding)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	if table.Rows[0][1] != "jane@example.edu" {
		t.Errorf("cell = %q, want jane@example.edu", table.Rows[0][1])
	}
}
