package core

// merge.go is the pipeline entry point: parse both files, normalize,
// join, copy scores, re-encode the gradebook.
//
// Score copy semantics per matched pair and shared category:
//   - blank provider value clears the gradebook cell
//   - numeric provider value replaces the cell, trailing zeros trimmed
//     ("87.50" writes "87.5", "90.00" writes "90")
//   - anything else leaves the cell unchanged and is reported as an
//     invalid value

import (
	"regexp"
	"strconv"
	"strings"
)

// scoreRegex accepts plain decimal numbers, optional sign, no exponent.
var scoreRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// normalizeScore formats a numeric score string canonically. The input
// must already match scoreRegex.
func normalizeScore(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ApplyScores copies provider scores into the gradebook table for every
// matched pair, restricted to categories resolved in both files.
// Categories are processed in fixed vocabulary order so the report's
// invalid-value list is deterministic. Returns the number of cells
// written and the invalid values encountered.
func ApplyScores(gradebook, provider *Dataset, join *JoinResult) (int, []InvalidValue) {
	var updated int
	var invalid []InvalidValue

	for _, pair := range join.Pairs {
		for id := CategoryID(0); id < numCategories; id++ {
			gcol, inGradebook := gradebook.Mapping[id]
			if !inGradebook {
				continue
			}
			if _, inProvider := provider.Mapping[id]; !inProvider {
				continue
			}

			raw, ok := pair.Provider.Scores[id]
			if !ok {
				continue
			}
			value := CleanCell(raw)

			switch {
			case value == "":
				writeCell(gradebook.Table, pair.Gradebook.Row, gcol.Index, "")
				updated++
			case scoreRegex.MatchString(value):
				writeCell(gradebook.Table, pair.Gradebook.Row, gcol.Index, normalizeScore(value))
				updated++
			default:
				invalid = append(invalid, InvalidValue{
					Student:  pair.Gradebook.Identity(),
					Category: id.String(),
					Value:    value,
				})
			}
		}
	}

	return updated, invalid
}

// writeCell sets a cell in place, padding short rows so columns beyond
// a row's ragged end are still addressable.
func writeCell(t *Table, row, col int, value string) {
	for len(t.Rows[row]) <= col {
		t.Rows[row] = append(t.Rows[row], "")
	}
	t.Rows[row][col] = value
}

// Merge runs the full pipeline over two raw uploads and returns the
// updated gradebook CSV plus the merge report. The output reproduces
// the gradebook's header and row order exactly; only mapped score cells
// change. A non-nil error is always one of the fatal kinds in errors.go
// (or a wrapped parse failure) and means no output was produced.
func Merge(gradebookData, providerData []byte) ([]byte, *MergeReport, error) {
	cats := DefaultCategories()

	gTable, err := ParseTable(gradebookData, RoleGradebook)
	if err != nil {
		return nil, nil, err
	}
	pTable, err := ParseTable(providerData, RoleProvider)
	if err != nil {
		return nil, nil, err
	}

	gradebook, err := Normalize(gTable, RoleGradebook, cats)
	if err != nil {
		return nil, nil, err
	}
	provider, err := Normalize(pTable, RoleProvider, cats)
	if err != nil {
		return nil, nil, err
	}

	join := Join(gradebook, provider)
	updated, invalid := ApplyScores(gradebook, provider, join)

	report := &MergeReport{
		Matched:            len(join.Pairs),
		ScoresUpdated:      updated,
		UnmatchedGradebook: identities(join.UnmatchedGradebook),
		UnmatchedProvider:  identities(join.UnmatchedProvider),
		InvalidValues:      invalid,
		SkippedGradebook:   gradebook.SkippedEmptyEmail,
		SkippedProvider:    provider.SkippedEmptyEmail + provider.SkippedSentinel,
		Ambiguities:        join.Ambiguities,
		Categories:         sharedCategories(gradebook, provider),
		GradebookEncoding:  gTable.Encoding,
		ProviderEncoding:   pTable.Encoding,
	}

	out, err := EncodeCSV(gradebook.Table)
	if err != nil {
		return nil, nil, err
	}
	return out, report, nil
}

// sharedCategories maps each category label resolved in both files to
// the gradebook column header it landed on.
func sharedCategories(gradebook, provider *Dataset) map[string]string {
	out := make(map[string]string)
	for id, col := range gradebook.Mapping {
		if _, ok := provider.Mapping[id]; ok {
			out[id.String()] = strings.TrimSpace(col.Header)
		}
	}
	return out
}
