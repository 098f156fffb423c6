package seabattle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/seabattle/internal/core"
)

// Symbols are the runes used to draw board cells.
type Symbols struct {
	Empty rune
	Ship  rune
	Hit   rune
	Miss  rune
}

// DefaultSymbols returns the classic look.
func DefaultSymbols() Symbols {
	return Symbols{Empty: 'O', Ship: '■', Hit: 'X', Miss: '.'}
}

var markColors = map[Mark]core.Color{
	MarkEmpty: core.ColorBlue,
	MarkShip:  core.ColorCyan,
	MarkHit:   core.ColorBrightRed,
	MarkMiss:  core.ColorGray,
}

// labelWidth is the width of the widest 1-based row/column label.
func labelWidth(size int) int {
	return len(strconv.Itoa(size))
}

// BoardWidth returns the rendered width of a board of the given size.
func BoardWidth(size int) int {
	w := labelWidth(size)
	return w + 2 + size*(w+3)
}

// BoardHeight returns the rendered height: one header row plus one per grid row.
func BoardHeight(size int) int {
	return size + 1
}

// DrawBoard draws b with its top-left corner at (x, y).
// Hidden boards draw ship cells as empty water.
func DrawBoard(dst *core.Screen, x, y int, b *Board, sym Symbols) {
	size := b.Size()
	w := labelWidth(size)

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", w) + " |")
	for col := 1; col <= size; col++ {
		fmt.Fprintf(&header, " %*d |", w, col)
	}
	dst.DrawText(x, y, header.String())

	for row := 0; row < size; row++ {
		line := fmt.Sprintf("%*d |", w, row+1)
		dst.DrawText(x, y+row+1, line)
		for col := 0; col < size; col++ {
			mark := b.Mark(core.C(row, col))
			if mark == MarkShip && b.Hidden() {
				mark = MarkEmpty
			}
			cx := x + w + 2 + col*(w+3)
			dst.DrawText(cx, y+row+1, strings.Repeat(" ", w+1)+" |")
			dst.SetColored(cx+w, y+row+1, sym.rune(mark), markColors[mark])
		}
	}
}

// RenderBoard draws b onto a screen sized to fit it.
func RenderBoard(b *Board, sym Symbols) *core.Screen {
	s := core.NewScreen(BoardWidth(b.Size()), BoardHeight(b.Size()))
	DrawBoard(s, 0, 0, b, sym)
	return s
}

func (s Symbols) rune(m Mark) rune {
	switch m {
	case MarkShip:
		return s.Ship
	case MarkHit:
		return s.Hit
	case MarkMiss:
		return s.Miss
	default:
		return s.Empty
	}
}
