package core

// MergeReport summarizes a completed merge run for display and download
// alongside the updated gradebook file. All slices preserve input row
// order so the same inputs always render the same report.
type MergeReport struct {
	// Matched is the number of gradebook rows paired with a provider row.
	Matched int `json:"matched"`

	// ScoresUpdated is the number of score cells written (blank clears
	// included).
	ScoresUpdated int `json:"scoresUpdated"`

	// UnmatchedGradebook lists gradebook students with no provider row;
	// UnmatchedProvider lists provider students with no gradebook row.
	UnmatchedGradebook []RowIdentity `json:"unmatchedGradebook"`
	UnmatchedProvider  []RowIdentity `json:"unmatchedProvider"`

	// InvalidValues lists provider scores that were neither blank nor
	// numeric. Those gradebook cells keep their original value.
	InvalidValues []InvalidValue `json:"invalidValues"`

	// SkippedGradebook and SkippedProvider count rows dropped before the
	// join (empty email, or the provider's points row).
	SkippedGradebook int `json:"skippedGradebook"`
	SkippedProvider  int `json:"skippedProvider"`

	// Ambiguities counts provider email collisions; the later row won.
	Ambiguities int `json:"ambiguities"`

	// Categories maps each canonical category label to the gradebook
	// column it resolved to, for columns present in both files.
	Categories map[string]string `json:"categories"`

	// The character encodings the input files decoded with.
	GradebookEncoding string `json:"gradebookEncoding"`
	ProviderEncoding  string `json:"providerEncoding"`
}

// HasWarnings reports whether the merge produced anything the user
// should look at beyond the headline counts.
func (r *MergeReport) HasWarnings() bool {
	return len(r.UnmatchedGradebook) > 0 ||
		len(r.UnmatchedProvider) > 0 ||
		len(r.InvalidValues) > 0 ||
		r.Ambiguities > 0
}

func identities(recs []*Record) []RowIdentity {
	if len(recs) == 0 {
		return nil
	}
	out := make([]RowIdentity, len(recs))
	for i, rec := range recs {
		out[i] = rec.Identity()
	}
	return out
}
