package main

import (
	"strings"
	"testing"

	"bitsym/internal/wide"
)

func TestParseValueArg(t *testing.T) {
	cases := []struct {
		in   string
		want wide.Int
	}{
		{"3", wide.FromUint64(3)},
		{" 0xFF ", wide.FromUint64(255)},
		{"-1", wide.FromInt64(-1)},
	}
	for _, tc := range cases {
		got, err := parseValueArg(tc.in)
		if err != nil {
			t.Fatalf("parseValueArg(%q): %v", tc.in, err)
		}
		if got.Cmp(tc.want) != 0 {
			t.Fatalf("parseValueArg(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := parseValueArg("nope"); err == nil {
		t.Fatalf("non-numeric value must fail")
	}
}

func TestPrintTableAlignment(t *testing.T) {
	var b strings.Builder
	printTable(&b, []string{"TYPE", "MEMBERS"}, [][]string{
		{"BorderSides", "5"},
		{"S", "2"},
	}, false)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d", len(lines))
	}
	if lines[0] != "TYPE         MEMBERS" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "BorderSides  5") {
		t.Fatalf("row = %q", lines[1])
	}
}
