// Package color renders diff reports with ANSI colors.
package color

import (
	"fmt"
	"os"
	"strings"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// Color represents a colorizer that can be enabled or disabled
type Color struct {
	enabled bool
}

// New creates a new Color instance. Colors stay off when the environment
// asks for plain output.
func New(enabled bool) *Color {
	return &Color{enabled: enabled && shouldEnableColor()}
}

// Enabled reports whether escape codes are emitted
func (c *Color) Enabled() bool {
	return c.enabled
}

// shouldEnableColor honours NO_COLOR (https://no-color.org/) and dumb terminals
func shouldEnableColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	term := os.Getenv("TERM")
	return term != "dumb" && term != ""
}

func (c *Color) paint(code, text string) string {
	if !c.enabled {
		return text
	}
	return code + text + Reset
}

// Add colors a string to indicate additions
func (c *Color) Add(text string) string { return c.paint(Green, text) }

// Change colors a string to indicate modifications
func (c *Color) Change(text string) string { return c.paint(Yellow, text) }

// Destroy colors a string to indicate deletions
func (c *Color) Destroy(text string) string { return c.paint(Red, text) }

// Bold makes text bold
func (c *Color) Bold(text string) string { return c.paint(Bold, text) }

// Cyan colors headers and labels
func (c *Color) Cyan(text string) string { return c.paint(Cyan, text) }

// Symbol returns the marker for a report action
func (c *Color) Symbol(action string) string {
	switch action {
	case "create":
		return c.Add("+")
	case "alter":
		return c.Change("~")
	case "drop":
		return c.Destroy("-")
	default:
		return " "
	}
}

// FormatLine formats one changed element, e.g. "  ~ column users.email"
func (c *Color) FormatLine(action, objectType, address string) string {
	return fmt.Sprintf("  %s %s %s", c.Symbol(action), objectType, address)
}

func (c *Color) counts(added, modified, dropped int) string {
	parts := []string{
		c.Add(fmt.Sprintf("%d to add", added)),
		c.Change(fmt.Sprintf("%d to modify", modified)),
		c.Destroy(fmt.Sprintf("%d to drop", dropped)),
	}
	return strings.Join(parts, ", ")
}

// FormatSummaryLine formats the counts of one object type
func (c *Color) FormatSummaryLine(objectType string, added, modified, dropped int) string {
	return fmt.Sprintf("  %s: %s", objectType, c.counts(added, modified, dropped))
}

// FormatPlanHeader formats the overall counts
func (c *Color) FormatPlanHeader(added, modified, dropped int) string {
	return fmt.Sprintf("Plan: %s.", c.counts(added, modified, dropped))
}
