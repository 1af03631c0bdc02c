package color

import "testing"

func TestColorDisabled(t *testing.T) {
	c := New(false)

	if got := c.Add("x"); got != "x" {
		t.Errorf("Add() = %q; want plain text", got)
	}
	if got := c.FormatLine("alter", "column", "users.email"); got != "  ~ column users.email" {
		t.Errorf("FormatLine() = %q", got)
	}
	if got := c.FormatPlanHeader(1, 2, 3); got != "Plan: 1 to add, 2 to modify, 3 to drop." {
		t.Errorf("FormatPlanHeader() = %q", got)
	}
	if got := c.FormatSummaryLine("indexes", 0, 1, 0); got != "  indexes: 0 to add, 1 to modify, 0 to drop" {
		t.Errorf("FormatSummaryLine() = %q", got)
	}
}

func TestColorEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		noColor  string
		term     string
		expected bool
	}{
		{name: "terminal", term: "xterm-256color", expected: true},
		{name: "no color", noColor: "1", term: "xterm", expected: false},
		{name: "dumb terminal", term: "dumb", expected: false},
		{name: "no terminal", term: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)

			c := New(true)
			if c.Enabled() != tt.expected {
				t.Fatalf("Enabled() = %v; want %v", c.Enabled(), tt.expected)
			}
			if tt.expected {
				if got := c.Symbol("create"); got != Green+"+"+Reset {
					t.Errorf("Symbol(create) = %q", got)
				}
				if got := c.Symbol("drop"); got != Red+"-"+Reset {
					t.Errorf("Symbol(drop) = %q", got)
				}
			}
		})
	}
}
