package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// Terminal colors
var (
	Brand  = color.New(color.FgHiBlue, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Banner prints the nodeboard banner.
func Banner(subtitle string) {
	fmt.Printf("%s %s\n\n", Brand.Sprint("nodeboard"), Subtle.Sprint(subtitle))
}

// KeyValue prints an aligned key/value line.
func KeyValue(key, value string) {
	fmt.Printf("  %s %s\n", Subtle.Sprintf("%-10s", key), value)
}
