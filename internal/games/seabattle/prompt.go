package seabattle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/seabattle/internal/core"
)

// PromptStrategy reads targets typed as "row col" (1-based) from a line source.
type PromptStrategy struct {
	in     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewPromptStrategy creates a prompt reading from in and writing prompts and
// input complaints to out.
func NewPromptStrategy(in io.Reader, out io.Writer) *PromptStrategy {
	return &PromptStrategy{
		in:     bufio.NewScanner(in),
		out:    out,
		prompt: "Your turn: ",
	}
}

// Target implements Strategy. Malformed lines are reported and re-prompted;
// io.EOF is returned when the input is exhausted.
func (s *PromptStrategy) Target() (core.Coord, error) {
	for {
		fmt.Fprint(s.out, s.prompt)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return core.Coord{}, fmt.Errorf("read target: %w", err)
			}
			return core.Coord{}, io.EOF
		}

		c, err := ParseTarget(s.in.Text())
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		return c, nil
	}
}

// ParseTarget converts "row col" with 1-based numbers into a zero-based Coord.
// Range is not checked here; the board rejects out-of-bounds targets.
func ParseTarget(line string) (core.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return core.Coord{}, fmt.Errorf("got %d values: %w", len(fields), ErrMalformedInput)
	}

	var nums [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return core.Coord{}, fmt.Errorf("%q is too large: %w", f, ErrMalformedInput)
			}
			return core.Coord{}, fmt.Errorf("%q is not a number: %w", f, ErrMalformedInput)
		}
		nums[i] = n
	}
	return core.C(nums[0]-1, nums[1]-1), nil
}
