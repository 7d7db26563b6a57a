package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoord        = errors.New("invalid coordinate")
	ErrOutOfBounds         = errors.New("coordinate out of grid bounds")
	ErrAlreadyShot         = errors.New("coordinate already shot")
	ErrOverlap             = errors.New("ship overlaps another ship")
	ErrDuplicateShip       = errors.New("ship already placed")
	ErrPlacementAfterShots = errors.New("cannot place ships after shots were fired")
	ErrPlacementExhausted  = errors.New("ship placement exhausted")
)

// PlacementError is returned when a fleet cannot be laid out on the grid.
type PlacementError struct {
	Ship     Ship
	Attempts int
	Reason   string
}

func (e *PlacementError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot place %s (length %d): %s", e.Ship.Name, e.Ship.Length, e.Reason)
	}
	return fmt.Sprintf("cannot place %s (length %d) after %d attempts", e.Ship.Name, e.Ship.Length, e.Attempts)
}

func (e *PlacementError) Unwrap() error { return ErrPlacementExhausted }
