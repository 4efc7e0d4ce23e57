package version

import "testing"

func TestVersionReqMatches(t *testing.T) {
	tt := []struct {
		req  string
		ver  string
		want bool
	}{
		{">= 1.2.3", "1.2.3", true},
		{">= 1.2.3", "1.2.2", false},
		{"> 1.2.3", "1.2.3", false},
		{"> 1.2.3", "1.2.4", true},
		{"< 2.0.0", "1.9.9", true},
		{"< 2.0.0", "2.0.0", false},
		{"<= 2.0.0", "2.0.0", true},
		{"^1.2.3", "1.9.0", true},
		{"^1.2.3", "2.0.0", false},
		{"^0.2.3", "0.2.9", true},
		{"^0.2.3", "0.3.0", false},
		{"~1.2.3", "1.2.9", true},
		{"~1.2.3", "1.3.0", false},
		{"= 1.2.3", "1.2.3", true},
		{"= 1.2.3", "1.2.4", false},
		{">= 1.0.0, < 2.0.0", "1.5.0", true},
		{">= 1.0.0, < 2.0.0", "2.0.0", false},
	}
	for _, tc := range tt {
		req, err := ParseReq(tc.req)
		if err != nil {
			t.Fatalf("ParseReq(%q): %v", tc.req, err)
		}
		got := req.Matches(MustParse(tc.ver))
		if got != tc.want {
			t.Errorf("%q.Matches(%q) = %v, want %v", tc.req, tc.ver, got, tc.want)
		}
	}
}
