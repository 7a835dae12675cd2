package chunk

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty is the closed set of difficulty bands a chunk can be split
// into, each defined by a code-character count window.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	Wild
	Zen
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	case Wild:
		return "Wild"
	case Zen:
		return "Zen"
	default:
		return "Unknown"
	}
}

// Window is the inclusive (min, max) code-character count a difficulty
// accepts.
type Window struct {
	Min int
	Max int
}

// Windows maps every Difficulty to its window, per spec: Easy (20,100),
// Normal (80,200), Hard (180,500), Wild and Zen unbounded.
var Windows = map[Difficulty]Window{
	Easy:   {20, 100},
	Normal: {80, 200},
	Hard:   {180, 500},
	Wild:   {0, math.MaxInt32},
	Zen:    {0, math.MaxInt32},
}

// AllDifficulties lists every difficulty in declaration order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Normal, Hard, Wild, Zen}
}

// ParseDifficulty parses a config/CLI difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "normal", "":
		return Normal, nil
	case "hard":
		return Hard, nil
	case "wild":
		return Wild, nil
	case "zen":
		return Zen, nil
	default:
		return Normal, fmt.Errorf("unknown difficulty %q", s)
	}
}

// ZenCharacterCeiling bounds how large a Zen (whole-file) challenge may be
// before the loading pipeline logs a warning (spec §9 Open Question b).
const ZenCharacterCeiling = 20000
