package core

// join.go pairs gradebook records with provider records by normalized
// email.
//
// The join is many-to-one collapsed to a single provider record per
// email: when two provider rows normalize to the same address, the
// later row in file order wins the lookup slot and the collision is
// counted as an ambiguity. Output order follows input order throughout,
// so the same inputs always produce the same JoinResult.

// Join builds the email-keyed pairing between the two record sets.
// Emails are already normalized by Normalize, so plain map lookups
// suffice here.
func Join(gradebook, provider *Dataset) *JoinResult {
	lookup := make(map[string]*Record, len(provider.Records))
	order := make([]string, 0, len(provider.Records))

	res := &JoinResult{}

	for i := range provider.Records {
		rec := &provider.Records[i]
		if _, exists := lookup[rec.Email]; exists {
			res.Ambiguities++ // last record wins
		} else {
			order = append(order, rec.Email)
		}
		lookup[rec.Email] = rec
	}

	consumed := make(map[string]bool, len(lookup))
	for i := range gradebook.Records {
		rec := &gradebook.Records[i]
		prov, ok := lookup[rec.Email]
		if !ok {
			res.UnmatchedGradebook = append(res.UnmatchedGradebook, rec)
			continue
		}
		res.Pairs = append(res.Pairs, Pair{Gradebook: rec, Provider: prov})
		consumed[rec.Email] = true
	}

	for _, email := range order {
		if !consumed[email] {
			res.UnmatchedProvider = append(res.UnmatchedProvider, lookup[email])
		}
	}

	return res
}
