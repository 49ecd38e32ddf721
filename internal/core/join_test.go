package core

import "testing"

func dataset(role Role, emails ...string) *Dataset {
	ds := &Dataset{Role: role}
	for i, email := range emails {
		ds.Records = append(ds.Records, Record{
			Email: email,
			Name:  email,
			Row:   i,
		})
	}
	return ds
}

func TestJoinMatchesByEmail(t *testing.T) {
	gradebook := dataset(RoleGradebook, "a@b.edu", "c@d.edu", "e@f.edu")
	provider := dataset(RoleProvider, "c@d.edu", "a@b.edu", "x@y.edu")

	res := Join(gradebook, provider)

	if len(res.Pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(res.Pairs))
	}
	// Pairs follow gradebook order.
	if res.Pairs[0].Gradebook.Email != "a@b.edu" || res.Pairs[1].Gradebook.Email != "c@d.edu" {
		t.Errorf("pair order = %q, %q", res.Pairs[0].Gradebook.Email, res.Pairs[1].Gradebook.Email)
	}
	if len(res.UnmatchedGradebook) != 1 || res.UnmatchedGradebook[0].Email != "e@f.edu" {
		t.Errorf("unmatched gradebook = %v", identities(res.UnmatchedGradebook))
	}
	if len(res.UnmatchedProvider) != 1 || res.UnmatchedProvider[0].Email != "x@y.edu" {
		t.Errorf("unmatched provider = %v", identities(res.UnmatchedProvider))
	}
	if res.Ambiguities != 0 {
		t.Errorf("ambiguities = %d, want 0", res.Ambiguities)
	}
}

func TestJoinLastProviderWins(t *testing.T) {
	gradebook := dataset(RoleGradebook, "a@b.edu")
	provider := &Dataset{Role: RoleProvider, Records: []Record{
		{Email: "a@b.edu", Name: "First Entry", Row: 0},
		{Email: "a@b.edu", Name: "Second Entry", Row: 1},
		{Email: "a@b.edu", Name: "Third Entry", Row: 2},
	}}

	res := Join(gradebook, provider)

	if res.Ambiguities != 2 {
		t.Errorf("ambiguities = %d, want 2", res.Ambiguities)
	}
	if len(res.Pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(res.Pairs))
	}
	if got := res.Pairs[0].Provider.Name; got != "Third Entry" {
		t.Errorf("winning provider record = %q, want %q", got, "Third Entry")
	}
}

func TestJoinCollisionOnUnmatchedEmail(t *testing.T) {
	gradebook := dataset(RoleGradebook, "a@b.edu")
	provider := dataset(RoleProvider, "dup@x.edu", "dup@x.edu")

	res := Join(gradebook, provider)

	if res.Ambiguities != 1 {
		t.Errorf("ambiguities = %d, want 1", res.Ambiguities)
	}
	// The collapsed email shows up once in the unmatched list.
	if len(res.UnmatchedProvider) != 1 {
		t.Errorf("unmatched provider = %d entries, want 1", len(res.UnmatchedProvider))
	}
}

func TestJoinEmptyInputs(t *testing.T) {
	res := Join(dataset(RoleGradebook), dataset(RoleProvider))
	if len(res.Pairs) != 0 || len(res.UnmatchedGradebook) != 0 || len(res.UnmatchedProvider) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}
