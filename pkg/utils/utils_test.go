package utils

import "testing"

func TestValidateUsername(t *testing.T) {
	for _, u := range []string{"alice", "bob-2", "Carol"} {
		if err := ValidateUsername(u); err != nil {
			t.Errorf("ValidateUsername(%q) => %v, want nil", u, err)
		}
	}
	for _, u := range []string{"", "2fast", "a b", "x_y"} {
		if err := ValidateUsername(u); err == nil {
			t.Errorf("ValidateUsername(%q) => nil, want error", u)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	for _, e := range []string{"a@b.c", "team@example.com"} {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q) => %v, want nil", e, err)
		}
	}
	for _, e := range []string{"", "@b", "a@", "a b@c", "nope"} {
		if err := ValidateEmail(e); err == nil {
			t.Errorf("ValidateEmail(%q) => nil, want error", e)
		}
	}
}

func TestValidateTeamName(t *testing.T) {
	if err := ValidateTeamName("FC Example"); err != nil {
		t.Errorf("ValidateTeamName => %v, want nil", err)
	}
	for _, n := range []string{"", "   "} {
		if err := ValidateTeamName(n); err == nil {
			t.Errorf("ValidateTeamName(%q) => nil, want error", n)
		}
	}
}
