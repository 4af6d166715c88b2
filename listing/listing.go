// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package listing turns a raw ILOC program text into normalized instruction
// lines, one instruction per line, ready to be loaded into the machine.
package listing

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/ezrec/iloc/translate"
)

var f = translate.From

var (
	ErrProgramEmpty = errors.New(f("program is empty"))
)

// Listing is a normalized program with the source line of each instruction.
type Listing struct {
	Lines  []string // Normalized instructions.
	Source []int    // 1-based source line number of each entry in Lines.
}

// Normalizer strips comments and canonicalizes whitespace.
type Normalizer struct {
	Verbose bool // If set, logs each kept line.

	inComment bool
}

// stripBlock removes /* ... */ comments from a line, tracking comments that
// continue past the end of the line.
func (nm *Normalizer) stripBlock(line string) string {
	var out strings.Builder

	for len(line) > 0 {
		if nm.inComment {
			end := strings.Index(line, "*/")
			if end < 0 {
				line = ""
				break
			}
			line = line[end+2:]
			nm.inComment = false
			continue
		}

		start := strings.Index(line, "/*")
		if start < 0 {
			out.WriteString(line)
			break
		}
		out.WriteString(line[:start])
		line = line[start+2:]
		nm.inComment = true
	}

	return out.String()
}

// Line normalizes a single line of text. An empty result means the line
// holds no instruction.
func (nm *Normalizer) Line(text string) (line string) {
	line = nm.stripBlock(strings.TrimSpace(text))

	line, _, _ = strings.Cut(line, "#")
	line, _, _ = strings.Cut(line, "//")

	line = strings.Join(strings.Fields(line), " ")
	line = strings.ReplaceAll(line, ", ", ",")

	return
}

// Parse reads a program text and normalizes it.
func (nm *Normalizer) Parse(input io.Reader) (lst *Listing, err error) {
	scanner := bufio.NewScanner(input)

	nm.inComment = false
	lst = &Listing{}

	var lineno int
	for scanner.Scan() {
		lineno += 1

		line := nm.Line(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if nm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		lst.Lines = append(lst.Lines, line)
		lst.Source = append(lst.Source, lineno)
	}

	err = scanner.Err()
	if err != nil {
		lst = nil
		return
	}

	if len(lst.Lines) == 0 {
		lst = nil
		err = ErrProgramEmpty
		return
	}

	return
}

// Parse normalizes a program read from input.
func Parse(input io.Reader) (*Listing, error) {
	nm := &Normalizer{}
	return nm.Parse(input)
}

// Normalize normalizes a program text into instruction lines.
func Normalize(text string) (lines []string, err error) {
	lst, err := Parse(strings.NewReader(text))
	if err != nil {
		return
	}

	lines = lst.Lines
	return
}
