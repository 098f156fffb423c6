// Package core provides fundamental types and utilities shared by the game engine
// and the terminal front ends. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Coord is a position on a square grid.
// Row increases downward, Col increases to the right. Both are zero-based.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// String renders the coordinate the way players type it: 1-based "row col".
func (c Coord) String() string {
	return fmt.Sprintf("%d %d", c.Row+1, c.Col+1)
}

// Neighborhood lists the offsets of a cell and its eight neighbours.
var Neighborhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
