// Package aoc solves Advent of Code '23 days 1 and 2: decoding trebuchet
// calibration values and tallying the cube game. (helpers forked from
// maisem/aoc)
package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/lineread"
)

// ForLines calls onLine for each line of the named file, with surrounding
// whitespace trimmed. It stops at the first error returned by onLine.
func ForLines(path string, onLine func(line string) error) error {
	return lineread.File(path, func(line []byte) error {
		return onLine(strings.TrimSpace(string(line)))
	})
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Digit returns the value of r and whether it is an ASCII digit.
func Digit(r byte) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}
