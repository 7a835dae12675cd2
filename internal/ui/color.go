// Package ui provides the CLI's color output helpers (SPEC_FULL.md §4.19),
// grounded on kraklabs-cie/internal/ui/color.go: pre-configured
// github.com/fatih/color instances, gated by a NO_COLOR-respecting
// InitColors call made once from the cobra root command.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Green  = color.New(color.FgGreen)
	Cyan   = color.New(color.FgCyan)
	Bold   = color.New(color.Bold)
	Dim    = color.New(color.Faint)
)

// InitColors configures global color output; fatih/color already respects
// NO_COLOR, this adds explicit control via --no-color.
func InitColors(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

func Success(msg string) { _, _ = Green.Println("✓ " + msg) }
func Warning(msg string) { _, _ = Yellow.Println("⚠ " + msg) }
func Error(msg string)   { _, _ = Red.Println("✗ " + msg) }
func Info(msg string)    { _, _ = Cyan.Println("ℹ " + msg) }

func Header(text string) {
	_, _ = Bold.Println(text)
	fmt.Println(strings.Repeat("=", len(text)))
}

// Label returns a bold-formatted label string for inline use.
func Label(text string) string { return Bold.Sprint(text) }

// DimText returns a dim-formatted string for less important text.
func DimText(text string) string { return Dim.Sprint(text) }
