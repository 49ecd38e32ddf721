package core

// normalize.go maps a parsed table onto the canonical record model.
//
// Normalization happens at two levels:
//  1. Header validation: the role's required identity columns must exist
//  2. Row conversion: identity fields and resolved score columns are
//     extracted into Records, in original row order
//
// Score values stay raw text here; shape validation (numeric-or-blank)
// is deferred to ApplyScores so that only categories present on both
// sides are ever validated.

import "strings"

// Required identity columns per role, matched case-insensitively.
var (
	gradebookRequired = []string{"Email", "Last Name", "First Name"}
	providerRequired  = []string{"NAME", "EMAIL"}
)

// sentinelName marks the provider's non-student points row. Rows with
// this name are excluded before the join ever sees them.
const sentinelName = "Point Possible"

func requiredColumns(role Role) []string {
	if role == RoleProvider {
		return providerRequired
	}
	return gradebookRequired
}

// CleanCell removes common CSV artifacts from a cell value: surrounding
// whitespace, Excel formula prefixes (="..."), and stray quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}

// NormalizeEmail canonicalizes an email-like identifier into a stable
// join key: surrounding whitespace and quotes dropped, lowercased.
func NormalizeEmail(s string) string {
	return strings.ToLower(CleanCell(s))
}

// Normalize validates a table's headers for the given role and converts
// its rows into canonical Records. Rows with an empty email are dropped
// and counted; provider sentinel rows are dropped and counted
// separately. Returns MissingColumnError when a required identity
// column is absent.
func Normalize(t *Table, role Role, cats []Category) (*Dataset, error) {
	idx := MakeHeaderIndex(t.Header)

	var missing []string
	for _, name := range requiredColumns(role) {
		if _, ok := idx[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Role: role, Missing: missing}
	}

	ds := &Dataset{
		Role:    role,
		Table:   t,
		Index:   idx,
		Mapping: ResolveColumns(t.Header, cats),
	}

	for i, row := range t.Rows {
		cell := func(name string) string {
			pos, ok := idx[name]
			if !ok || pos >= len(row) {
				return ""
			}
			return CleanCell(row[pos])
		}

		rec := Record{Row: i, Scores: make(map[CategoryID]string, len(ds.Mapping))}

		switch role {
		case RoleProvider:
			rec.Email = NormalizeEmail(cell("email"))
			rec.Name = cell("name")
			if strings.EqualFold(rec.Name, sentinelName) {
				ds.SkippedSentinel++
				continue
			}
		default:
			rec.Email = NormalizeEmail(cell("email"))
			rec.LastName = cell("last name")
			rec.FirstName = cell("first name")
			rec.Name = strings.TrimSpace(rec.FirstName + " " + rec.LastName)
		}

		if rec.Email == "" {
			ds.SkippedEmptyEmail++
			continue
		}

		for id, col := range ds.Mapping {
			if col.Index < len(row) {
				rec.Scores[id] = row[col.Index]
			}
		}

		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}
