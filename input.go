package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"toroidal-snake/game/types"

	"github.com/pkg/errors"
)

var ErrBadDirection = errors.New("unrecognised direction")

var directionNames = map[string]types.Direction{
	"n": types.North, "north": types.North,
	"e": types.East, "east": types.East,
	"s": types.South, "south": types.South,
	"w": types.West, "west": types.West,
}

// ParseDirection accepts the numeric encoding 0-3 or a compass name.
func ParseDirection(token string) (types.Direction, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if d, ok := directionNames[token]; ok {
		return d, nil
	}
	if n, err := strconv.Atoi(token); err == nil && types.Direction(n).Valid() {
		return types.Direction(n), nil
	}
	return 0, errors.Wrapf(ErrBadDirection, "%q", token)
}

// DirectionReader yields one direction per non-blank line. Lines starting
// with # are ignored.
type DirectionReader struct {
	scanner *bufio.Scanner
	line    int
}

func NewDirectionReader(r io.Reader) *DirectionReader {
	return &DirectionReader{scanner: bufio.NewScanner(r)}
}

// Next returns io.EOF once the input is exhausted.
func (dr *DirectionReader) Next() (types.Direction, error) {
	for dr.scanner.Scan() {
		dr.line++
		text := strings.TrimSpace(dr.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		d, err := ParseDirection(text)
		if err != nil {
			return 0, errors.Wrapf(err, "line %d", dr.line)
		}
		return d, nil
	}
	if err := dr.scanner.Err(); err != nil {
		return 0, errors.Wrap(err, "read directions")
	}
	return 0, io.EOF
}
