// Package profile infers the student's program and year from free text.
// Absence of a match is an expected outcome, never an error.
package profile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rmmentors/alicia/internal/core"
)

var (
	programRe = regexp.MustCompile(`(?i)\b(PhD|MS|M\.?S\.?|Bachelor'?s?)\b`)
	yearRe    = regexp.MustCompile(`(?i)\b([1-6])(?:st|nd|rd|th)?\s*year\b`)
	rankRe    = regexp.MustCompile(`(?i)\b(freshman|sophomore|junior|senior)\b`)
)

var rankYears = map[string]int{
	"freshman":  1,
	"sophomore": 2,
	"junior":    3,
	"senior":    4,
}

// Extract returns a profile only when both program and year are found.
// A program alone, or a year alone, leaves the profile undetermined.
func Extract(text string) (core.Profile, bool) {
	var p core.Profile

	if m := programRe.FindString(text); m != "" {
		prog := strings.ToUpper(strings.ReplaceAll(m, ".", ""))
		if strings.HasPrefix(prog, "B") {
			prog = "Bachelor's"
		}
		p.Program = prog
	}

	if m := yearRe.FindStringSubmatch(text); m != nil {
		p.Year, _ = strconv.Atoi(m[1])
	} else if m := rankRe.FindString(text); m != "" {
		// Leftmost rank word in the text wins, not map order.
		p.Year = rankYears[strings.ToLower(m)]
	}

	if p.Program == "" || p.Year == 0 {
		return core.Profile{}, false
	}
	return p, true
}
