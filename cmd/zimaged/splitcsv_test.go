package main

import "testing"

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"a,,c", []string{"a", "c"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitCSV(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("ZIMAGED_TEST_STR", "x")
	if got := envStr("ZIMAGED_TEST_STR", "y"); got != "x" {
		t.Fatalf("got %q", got)
	}
	if got := envStr("ZIMAGED_TEST_MISSING", "y"); got != "y" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("ZIMAGED_TEST_INT", "8091")
	if got := envInt("ZIMAGED_TEST_INT", 1); got != 8091 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("ZIMAGED_TEST_INT", "not-a-number")
	if got := envInt("ZIMAGED_TEST_INT", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
}
