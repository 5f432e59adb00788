// Package ui draws a game as plain text.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"toroidal-snake/game"
	"toroidal-snake/game/types"
)

const separator = "----"

type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Draw writes the score line, one line per board row and a separator.
func (r *Renderer) Draw(g *game.GameState) error {
	w := bufio.NewWriter(r.out)
	fmt.Fprintf(w, "Points: %d\n", g.Score())
	w.WriteString(FormatBoard(g.Snapshot()))
	w.WriteString(separator + "\n")
	return w.Flush()
}

// DrawGameOver reports how the game ended.
func (r *Renderer) DrawGameOver(g *game.GameState) error {
	_, err := fmt.Fprintf(r.out, "Game over (%s). Points: %d, moves: %d\n", g.LastCollision(), g.Score(), g.Steps())
	return err
}

// FormatBoard joins the markers of each row, newline terminated.
func FormatBoard(board [][]types.Marker) string {
	var sb strings.Builder
	for _, row := range board {
		for _, m := range row {
			sb.WriteRune(rune(m))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
