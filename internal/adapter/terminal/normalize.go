package terminal

import (
	"strings"
	"unicode"
)

// normalise lowercases raw and collapses everything but letters, digits
// and minus signs into single spaces.
func normalise(raw string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		space = true
	}
	return b.String()
}

func tokenise(normalised string) []string {
	return strings.Fields(normalised)
}

var directionWords = map[string]string{
	"up": "up", "u": "up", "n": "up", "north": "up",
	"down": "down", "d": "down", "s": "down", "south": "down",
	"left": "left", "w": "left", "west": "left",
	"right": "right", "r": "right", "e": "right", "east": "right",
}
