package currency

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{"0", 0},
		{"2", 200},
		{"2.5", 250},
		{"2.50", 250},
		{"10.00", 1000},
		{"45.00", 4500},
		{"-42.50", -4250},
		{"+1.01", 101},
		{".5", 50},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) => %v, want nil error", c.in, err)
		}
		if got != c.want {
			t.Errorf("Parse(%q) => %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "-", ".", "2.505", "abc", "1.2x", "2.-5", "2.+5", "--2", "+-2", "1.-", " - 2"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) => nil error, want error", in)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in   Amount
		want string
	}{
		{0, "0.00"},
		{250, "2.50"},
		{-4250, "-42.50"},
		{5, "0.05"},
		{-5, "-0.05"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("Amount(%d).String() => %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "2.50", "-42.50", "1000.01"} {
		a := MustParse(s)
		if a.String() != s {
			t.Errorf("MustParse(%q).String() => %q", s, a.String())
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := MustParse("2.50")
	b := MustParse("45.00")
	if got := a.Sub(b); got != MustParse("-42.50") {
		t.Errorf("2.50 - 45.00 => %s", got)
	}
	if got := a.Add(a).Add(a); got != MustParse("7.50") {
		t.Errorf("2.50 * 3 => %s", got)
	}
	if !b.Neg().IsNegative() {
		t.Error("Neg(45.00) should be negative")
	}
}
