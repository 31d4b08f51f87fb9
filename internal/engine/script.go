package engine

import (
	"fmt"
	"strings"
)

const (
	MinCast = 3
	MaxCast = 5
)

// Script is the ordered list of display lines for one generation.
type Script []string

// EntranceLine announces a character.
func EntranceLine(c Character) string { return fmt.Sprintf("%s %s appears!", c.Emoji, c.Name) }

// CatchphraseLine quotes a character's catchphrase.
func CatchphraseLine(c Character) string { return fmt.Sprintf("%q", c.Catchphrase) }

// GenerateScript picks MinCast..MaxCast characters by shuffle-and-slice and builds their script:
// entrance then catchphrase per character, a filler phrase between characters, and ClosingLine last.
func GenerateScript(s *Stream) ([]Character, Script) {
	cast := Cast()
	s.Shuffle(len(cast), func(i, j int) { cast[i], cast[j] = cast[j], cast[i] })
	n := MinCast + s.Intn(MaxCast-MinCast+1)
	chars := cast[:n:n]

	script := make(Script, 0, 3*n)
	for i, c := range chars {
		script = append(script, EntranceLine(c), CatchphraseLine(c))
		if i < n-1 {
			script = append(script, Pick(s, phrases))
		}
	}
	script = append(script, ClosingLine)
	return chars, script
}

// Names lists character names in order.
func Names(chars []Character) []string {
	out := make([]string, len(chars))
	for i, c := range chars {
		out[i] = c.Name
	}
	return out
}

// Summary is the history line for the ordinal-th completed generation.
func Summary(ordinal int, chars []Character) string {
	return fmt.Sprintf("Video %d: %s", ordinal, strings.Join(Names(chars), " vs "))
}
