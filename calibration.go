package aoc

import "strings"

// digitWords are the spelled-out digits recognized when word correction is
// on. Index+1 is the digit value.
var digitWords = []string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// DecodeLine decodes a calibration string into its two-digit calibration
// value: the first digit found scanning from the left, then the last digit
// found scanning from the right. If only one side finds a digit the value is
// that digit twice. ok is false when the line holds no digit at all.
//
// With wordCorrection, spelled-out digits count too: a word matches the left
// search where it begins at the left cursor and the right search where it
// ends at the right cursor, so overlapping words resolve by scan order
// ("eightwothree" is 83, not 23).
func DecodeLine(line string, wordCorrection bool) (v int, ok bool) {
	first, last := -1, -1

	for i := 0; i < len(line); i++ {
		j := len(line) - 1 - i

		if first == -1 {
			if d, ok := Digit(line[i]); ok {
				first = d
			} else if wordCorrection {
				for w, word := range digitWords {
					if strings.HasPrefix(line[i:], word) {
						first = w + 1
						break
					}
				}
			}
		}

		if last == -1 {
			if d, ok := Digit(line[j]); ok {
				last = d
			} else if wordCorrection {
				for w, word := range digitWords {
					if strings.HasSuffix(line[:j+1], word) {
						last = w + 1
						break
					}
				}
			}
		}

		if first != -1 && last != -1 {
			break
		}
	}

	switch {
	case first == -1 && last == -1:
		return 0, false
	case first == -1:
		first = last
	case last == -1:
		last = first
	}
	return first*10 + last, true
}

// SumCalibrations decodes every line of the named file and returns the total
// of the calibration values. Lines with no digits contribute 0.
func SumCalibrations(path string, wordCorrection bool) (int, error) {
	var vals []int
	err := ForLines(path, func(line string) error {
		if v, ok := DecodeLine(line, wordCorrection); ok {
			vals = append(vals, v)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return Sum(vals...), nil
}
