package aoc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		line  string
		words bool
		want  int
		ok    bool
	}{
		{line: "1abc2", want: 12, ok: true},
		{line: "pqr3stu8vwx", want: 38, ok: true},
		{line: "a1b2c3d4e5f", want: 15, ok: true},
		{line: "treb7uchet", want: 77, ok: true},

		{line: "two1nine", words: true, want: 29, ok: true},
		{line: "eightwothree", words: true, want: 83, ok: true},
		{line: "abcone2threexyz", words: true, want: 13, ok: true},
		{line: "xtwone3four", words: true, want: 24, ok: true},
		{line: "4nineeightseven2", words: true, want: 42, ok: true},
		{line: "zoneight234", words: true, want: 14, ok: true},
		{line: "7pqrstsixteen", words: true, want: 76, ok: true},
		{line: "2threerjnineonev", words: true, want: 21, ok: true},

		// Words don't count without correction.
		{line: "two1nine", want: 11, ok: true},
		{line: "eightwothree"},
		{line: ""},
		{line: "abcdef"},
		{line: "", words: true},
	}

	for _, tt := range tests {
		got, ok := DecodeLine(tt.line, tt.words)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DecodeLine(%q, %v) = %v, %v; want %v, %v", tt.line, tt.words, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDecodeLineDigitsOnly(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"12345", 15},
		{"9", 99},
		{"907", 97},
		{"2222", 22},
	}

	for _, tt := range tests {
		if got, ok := DecodeLine(tt.line, false); !ok || got != tt.want {
			t.Errorf("DecodeLine(%q, false) = %v, %v; want %v, true", tt.line, got, ok, tt.want)
		}
	}
}

func TestSumCalibrations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		words bool
		want  int
	}{
		{
			name: "digits",
			input: `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`,
			want: 142,
		},
		{
			name: "words",
			input: `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`,
			words: true,
			want:  281,
		},
		{
			// A digit-less line contributes nothing.
			name: "no digits",
			input: `treb7uchet
nothinghere
`,
			want: 77,
		},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "d1.txt")
		MustDo(os.WriteFile(path, []byte(tt.input), 0644))
		got, err := SumCalibrations(path, tt.words)
		if err != nil {
			t.Fatalf("SumCalibrations(%v): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("SumCalibrations(%v) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSumCalibrationsMissingFile(t *testing.T) {
	if _, err := SumCalibrations(filepath.Join(t.TempDir(), "nope.txt"), false); err == nil {
		t.Error("SumCalibrations on a missing file did not error")
	}
}
