package core

import "strings"

// Role identifies which side of the merge a file belongs to. The two
// roles require different identity columns and are reported separately.
type Role string

const (
	RoleGradebook Role = "gradebook"
	RoleProvider  Role = "provider"
)

// Table is the raw parsed form of one uploaded file: a trimmed header
// row plus the data rows exactly as they appeared. The gradebook table
// is kept around after normalization because the merged output must
// reproduce its header and row order byte for byte (only mapped score
// cells change).
type Table struct {
	Header []string
	Rows   [][]string

	// Encoding names the character encoding the file decoded with, or
	// "xlsx" for spreadsheet input.
	Encoding string
}

// HeaderIndex maps lowercased column names to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a header row.
// Keys are cleaned and lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

// ResolvedColumn records where a category's column was found in a table
// and the literal header text that matched.
type ResolvedColumn struct {
	Index  int
	Header string
}

// ColumnMapping maps each resolved category to its column in one table.
// A category absent from the map simply has no column in that file.
type ColumnMapping map[CategoryID]ResolvedColumn

// Record is one student row in canonical form. Row is the index into
// the source Table.Rows so score updates can be written back in place.
type Record struct {
	Email     string // normalized join key
	Name      string
	FirstName string
	LastName  string
	Row       int
	Scores    map[CategoryID]string
}

// Identity returns the user-facing identification of a record for
// diagnostics.
func (r *Record) Identity() RowIdentity {
	return RowIdentity{Name: r.Name, Email: r.Email}
}

// Dataset couples a parsed table with its canonical records, resolved
// score columns, and per-row skip counts from normalization.
type Dataset struct {
	Role    Role
	Table   *Table
	Index   HeaderIndex
	Mapping ColumnMapping
	Records []Record

	// SkippedEmptyEmail counts rows dropped for having no email.
	// SkippedSentinel counts provider "Point Possible" rows, which are
	// excluded from the join entirely.
	SkippedEmptyEmail int
	SkippedSentinel   int
}

// Pair is one matched gradebook/provider record pair.
type Pair struct {
	Gradebook *Record
	Provider  *Record
}

// JoinResult is the outcome of pairing gradebook records with provider
// records by normalized email. Each gradebook record appears in at most
// one pair.
type JoinResult struct {
	Pairs              []Pair
	UnmatchedGradebook []*Record
	UnmatchedProvider  []*Record

	// Ambiguities counts provider email collisions. The later record in
	// file order wins the lookup slot; the collision is non-fatal.
	Ambiguities int
}

// RowIdentity identifies a row in user-facing diagnostics.
type RowIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// InvalidValue records a provider score that was neither blank nor
// numeric. The gradebook cell keeps its original value.
type InvalidValue struct {
	Student  RowIdentity `json:"student"`
	Category string      `json:"category"`
	Value    string      `json:"value"`
}
