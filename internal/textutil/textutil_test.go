package textutil

import "testing"

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{"4.2", true},
		{"-7", true},
		{"1e3", true},
		{" 42 ", true},
		{"0", true},
		{"", false},
		{"abc", false},
		{"4.2.1", false},
		{"nan", false},
		{"inf", false},
	}
	for _, tc := range cases {
		if got := IsNumeric(tc.input); got != tc.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain", "plain"},
		{"  leading and trailing  ", "leading and trailing"},
		{"inner\n\truns   of space", "inner runs of space"},
	}
	for _, tc := range cases {
		if got := NormalizeWhitespace(tc.input); got != tc.want {
			t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
