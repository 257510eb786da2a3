package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// DiceGroup counts blue, green, and red dice. It represents either one draw
// shown during a game or the contents of a bag.
type DiceGroup struct {
	Blue  int
	Green int
	Red   int
}

// FitsWithin reports whether every color count in g is at most the
// corresponding count in bag.
func (g DiceGroup) FitsWithin(bag DiceGroup) bool {
	return g.Blue <= bag.Blue && g.Green <= bag.Green && g.Red <= bag.Red
}

// Power returns the product of the three color counts.
func (g DiceGroup) Power() int {
	return g.Red * g.Blue * g.Green
}

// String renders g in the games-file draw format, e.g. "1 green, 7 red".
// Zero counts are omitted; the zero group renders as "0 red".
func (g DiceGroup) String() string {
	var parts []string
	if g.Red > 0 {
		parts = append(parts, fmt.Sprintf("%d red", g.Red))
	}
	if g.Green > 0 {
		parts = append(parts, fmt.Sprintf("%d green", g.Green))
	}
	if g.Blue > 0 {
		parts = append(parts, fmt.Sprintf("%d blue", g.Blue))
	}
	if len(parts) == 0 {
		return "0 red"
	}
	return strings.Join(parts, ", ")
}

// MaxDiceGroup returns the per-color maximum over groups: the minimal bag
// that could have produced every one of them.
func MaxDiceGroup(groups []DiceGroup) DiceGroup {
	return Fold(groups, func(m DiceGroup, g DiceGroup) DiceGroup {
		m.Blue = max(m.Blue, g.Blue)
		m.Green = max(m.Green, g.Green)
		m.Red = max(m.Red, g.Red)
		return m
	}, DiceGroup{})
}

// A Game is one line of the games file: an identifier and the draws shown.
type Game struct {
	ID    int
	Draws []DiceGroup
}

func (g Game) String() string {
	draws := make([]string, len(g.Draws))
	for i, d := range g.Draws {
		draws[i] = d.String()
	}
	return fmt.Sprintf("Game %d: %s", g.ID, strings.Join(draws, "; "))
}

// ParseGame parses one "Game <N>: <draws>" line.
func ParseGame(line string) (Game, error) {
	id, err := GameNumber(line)
	if err != nil {
		return Game{}, err
	}
	draws, err := ParseDraws(line)
	if err != nil {
		return Game{}, err
	}
	return Game{ID: id, Draws: draws}, nil
}

// GameNumber returns the game identifier from the "Game <N>" label before
// the first colon.
func GameNumber(line string) (int, error) {
	label, _, ok := strings.Cut(line, ":")
	if !ok {
		return 0, fmt.Errorf("game line missing colon: %q", line)
	}
	fields := strings.Fields(label)
	if len(fields) != 2 || fields[0] != "Game" {
		return 0, fmt.Errorf("malformed game label %q", label)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("malformed game label %q: %w", label, err)
	}
	return id, nil
}

// ParseDraws returns the draws of a game line in order. Draws are separated
// by semicolons and each lists "<count> <color>" tokens separated by commas.
// Colors absent from a draw count as 0; tokens naming an unknown color are
// ignored.
func ParseDraws(line string) ([]DiceGroup, error) {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return nil, fmt.Errorf("game line missing colon: %q", line)
	}
	var draws []DiceGroup
	for _, draw := range strings.Split(rest, ";") {
		var g DiceGroup
		for _, tok := range strings.Split(draw, ",") {
			var dst *int
			switch {
			case strings.Contains(tok, "blue"):
				dst = &g.Blue
			case strings.Contains(tok, "green"):
				dst = &g.Green
			case strings.Contains(tok, "red"):
				dst = &g.Red
			default:
				continue
			}
			fields := strings.Fields(tok)
			if len(fields) == 0 {
				return nil, fmt.Errorf("draw token %q missing count", tok)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("bad count in draw token %q: %w", tok, err)
			}
			*dst = n
		}
		draws = append(draws, g)
	}
	return draws, nil
}

// ValidateGame reports whether every draw fits within the bag. It stops at
// the first draw that does not.
func ValidateGame(draws []DiceGroup, bag DiceGroup) bool {
	for _, d := range draws {
		if !d.FitsWithin(bag) {
			return false
		}
	}
	return true
}

// ReadGames parses every game in the named file, one per line, in file
// order. Blank lines are skipped; a malformed line aborts the read.
func ReadGames(path string) ([]Game, error) {
	var games []Game
	err := ForLines(path, func(line string) error {
		if line == "" {
			return nil
		}
		g, err := ParseGame(line)
		if err != nil {
			return err
		}
		games = append(games, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return games, nil
}

// SumValidGameIDs totals the identifiers of the games whose every draw fits
// within bag.
func SumValidGameIDs(games []Game, bag DiceGroup) int {
	return Fold(games, func(total int, g Game) int {
		if ValidateGame(g.Draws, bag) {
			total += g.ID
		}
		return total
	}, 0)
}

// SumPowers totals, over all games, the power of each game's minimal bag.
func SumPowers(games []Game) int {
	return Fold(games, func(total int, g Game) int {
		return total + MaxDiceGroup(g.Draws).Power()
	}, 0)
}
