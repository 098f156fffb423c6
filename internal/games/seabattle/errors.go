package seabattle

import "errors"

// Shot errors are recoverable within the same turn: the shooter picks another cell.
var (
	ErrOutOfBounds     = errors.New("the shot is out of the field")
	ErrAlreadyTargeted = errors.New("this cell has already been targeted")
)

// ErrWrongPlacement is returned when a ship would leave the board or touch
// another ship, including diagonally. Setup recovers by resampling.
var ErrWrongPlacement = errors.New("ship cannot be placed here")

// ErrMalformedInput is returned by the prompt when a line is not two integers.
var ErrMalformedInput = errors.New("input two numbers: row and column")

var (
	ErrNotStarted  = errors.New("board has not been started")
	ErrTurnStalled = errors.New("no legal target found within the attempt budget")
	ErrSetupFailed = errors.New("fleet does not fit on the board")
	ErrMatchOver   = errors.New("match is already over")
)

// recoverable reports whether a shot error lets the shooter simply try again.
func recoverable(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrAlreadyTargeted)
}
