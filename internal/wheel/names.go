// Package wheel implements the wheel-of-names engine: name list
// normalization, sector geometry, winner selection, rotation planning and
// the spin state machine. It draws nothing; renderers receive rotation
// commands through the Renderer interface.
package wheel

import (
	"regexp"
	"strings"
)

// DefaultNames is the list shown when no names are configured.
var DefaultNames = []string{
	"Arjun",
	"Vikrant",
	"Shreya",
	"Shivanshu",
	"Sanjay",
	"Rajeshwar",
	"Rohit",
	"Mohit",
	"Manikanta",
	"Kaushiki",
}

var lineBreakRe = regexp.MustCompile(`\r?\n`)

// Normalize splits raw text into one entry per line, trims each line and
// drops the empty ones. Order and duplicates are preserved.
func Normalize(raw string) []string {
	names := []string{}
	for _, line := range lineBreakRe.Split(raw, -1) {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Join renders names back into the one-per-line text form.
func Join(names []string) string {
	return strings.Join(names, "\n")
}

// Shuffle returns a Fisher-Yates permutation of names drawn from rng.
// Lists shorter than two entries come back unchanged. The input slice is
// not modified.
func Shuffle(names []string, rng RNG) []string {
	out := make([]string, len(names))
	copy(out, names)
	if len(out) < 2 {
		return out
	}
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
