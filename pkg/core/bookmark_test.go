package core

import "testing"

func TestValidMnemonic(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"bug", true},
		{"TODO-1", true},
		{"entry_point", true},
		{"a", true},
		{"0", true},
		{"", false},
		{"has space", false},
		{"semi;colon", false},
		{"path/sep", false},
		{"über", false},
	}

	for _, c := range cases {
		if got := ValidMnemonic(c.in); got != c.valid {
			t.Errorf("ValidMnemonic(%q) = %v, want %v", c.in, got, c.valid)
		}
	}
}
