package version

import "testing"

func TestRoundtrip(t *testing.T) {
	tt := []string{
		"1.2.3",
		"0.1.0",
		"1.2.3-alpha.1",
		"1.2.3-0",
		"2.0.0-0",
	}
	for _, s := range tt {
		v, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if got := v.String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}

func TestNext(t *testing.T) {
	tt := []struct {
		in, want string
	}{
		{"1.2.3", "1.2.4-0"},
		{"0.0.0", "0.0.1-0"},
		{"1.2.3-0", "1.2.3-1"},
		{"1.2.3-9", "1.2.3-10"},
		{"1.2.3-a", "1.2.3-b"},
		{"1.2.3-z", "1.2.3-z" + string(alphabet[0])},
		{"1.2.3-alpha", "1.2.3-alphb"},
	}
	for _, tc := range tt {
		v := MustParse(tc.in)
		got := Next(v).String()
		if got != tc.want {
			t.Errorf("Next(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNextAlwaysGreater(t *testing.T) {
	tt := []string{"1.2.3", "0.0.0", "2.0.0-0", "1.2.3-alpha.1", "9.9.9-z"}
	for _, s := range tt {
		v := MustParse(s)
		n := Next(v)
		if !v.Less(n) {
			t.Errorf("Next(%q) = %q is not greater", s, n)
		}
	}
}

func TestCompareOrdering(t *testing.T) {
	// Ascending order per semver 2.0 precedence rules.
	ordered := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}
	for i := 0; i < len(ordered)-1; i++ {
		a, b := MustParse(ordered[i]), MustParse(ordered[i+1])
		if !a.Less(b) {
			t.Errorf("%q should be less than %q", ordered[i], ordered[i+1])
		}
	}
}
