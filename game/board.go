package game

import (
	"battleship/meta"
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

const noShip = -1

type placedShip struct {
	Ship
	cells []Coord
}

// Board is one player's grid: where the ships are and where the opponent has fired.
// Ships are placed once before the first shot; every cell is shot at most once.
type Board struct {
	occupancy [GridSize][GridSize]int // Index into ships, noShip if empty
	shots     [GridSize][GridSize]Shot
	ships     []placedShip
	fired     int
}

var _ View = (*Board)(nil)

func NewBoard() *Board {
	b := &Board{}
	for r := range b.occupancy {
		for c := range b.occupancy[r] {
			b.occupancy[r][c] = noShip
		}
	}
	return b
}

// PlaceShip puts a single ship on the board with its first cell at origin.
func (b *Board) PlaceShip(ship Ship, origin Coord, o Orientation) error {
	if b.fired > 0 {
		return ErrPlacementAfterShots
	}
	if ship.Length <= 0 || ship.Length > GridSize {
		return &PlacementError{Ship: ship, Reason: "length does not fit the grid"}
	}
	for _, placed := range b.ships {
		if placed.Name == ship.Name {
			return fmt.Errorf("%w: %s", ErrDuplicateShip, ship.Name)
		}
	}

	cells := Extent(origin, ship.Length, o)
	for _, cell := range cells {
		if !cell.InBounds() {
			return fmt.Errorf("%w: %s at %v %s", ErrOutOfBounds, ship.Name, origin, o)
		}
		if b.occupancy[cell.Row][cell.Col] != noShip {
			return fmt.Errorf("%w: %s at %v", ErrOverlap, ship.Name, cell)
		}
	}

	index := len(b.ships)
	for _, cell := range cells {
		b.occupancy[cell.Row][cell.Col] = index
	}
	b.ships = append(b.ships, placedShip{Ship: ship, cells: cells})
	return nil
}

// PlaceFleet lays out every ship of the fleet at a random orientation and anchor.
// Ships may touch but never overlap. On failure the board is left as it was.
func (b *Board) PlaceFleet(fleet Fleet, rng *rand.Rand) error {
	if b.fired > 0 {
		return ErrPlacementAfterShots
	}
	free := GridSize*GridSize - b.occupied()
	if fleet.Cells() > free {
		return fmt.Errorf("%w: fleet needs %d cells, %d are free", ErrPlacementExhausted, fleet.Cells(), free)
	}

	occupancy := b.occupancy
	placed := len(b.ships)
	for _, ship := range fleet {
		if err := b.placeRandomly(ship, rng); err != nil {
			b.occupancy = occupancy
			b.ships = b.ships[:placed]
			return err
		}
	}
	return nil
}

func (b *Board) placeRandomly(ship Ship, rng *rand.Rand) error {
	if ship.Length <= 0 || ship.Length > GridSize {
		return &PlacementError{Ship: ship, Reason: "length does not fit the grid"}
	}

	for attempt := 0; attempt < meta.MaxPlacementAttempts; attempt++ {
		var origin Coord
		o := Horizontal
		if rng.Intn(2) == 1 {
			o = Vertical
		}
		if o == Horizontal {
			origin = Coord{Row: rng.Intn(GridSize), Col: rng.Intn(GridSize - ship.Length + 1)}
		} else {
			origin = Coord{Row: rng.Intn(GridSize - ship.Length + 1), Col: rng.Intn(GridSize)}
		}

		err := b.PlaceShip(ship, origin, o)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrOverlap) {
			return err
		}
	}
	return &PlacementError{Ship: ship, Attempts: meta.MaxPlacementAttempts}
}

// ResolveShot fires at c. Rejected shots (off the grid or already fired at)
// report OutcomeAlready together with an error and leave the board untouched.
func (b *Board) ResolveShot(c Coord) (Result, error) {
	if !c.InBounds() {
		return Result{Outcome: OutcomeAlready}, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if b.shots[c.Row][c.Col] != Unshot {
		return Result{Outcome: OutcomeAlready}, fmt.Errorf("%w: %v", ErrAlreadyShot, c)
	}

	b.fired++
	index := b.occupancy[c.Row][c.Col]
	if index == noShip {
		b.shots[c.Row][c.Col] = Miss
		return Result{Outcome: OutcomeMiss}, nil
	}

	b.shots[c.Row][c.Col] = Hit
	if b.isSunk(index) {
		return Result{Outcome: OutcomeSunk, Ship: b.ships[index].Name}, nil
	}
	return Result{Outcome: OutcomeHit}, nil
}

// AllSunk is true when every cell of every placed ship has been hit.
func (b *Board) AllSunk() bool {
	for i := range b.ships {
		if !b.isSunk(i) {
			return false
		}
	}
	return true
}

func (b *Board) isSunk(index int) bool {
	for _, cell := range b.ships[index].cells {
		if b.shots[cell.Row][cell.Col] != Hit {
			return false
		}
	}
	return true
}

// ShotAt returns the shot state of c; cells off the grid read as Unshot.
func (b *Board) ShotAt(c Coord) Shot {
	if !c.InBounds() {
		return Unshot
	}
	return b.shots[c.Row][c.Col]
}

// SunkShips lists the names of sunk ships in placement order.
func (b *Board) SunkShips() []string {
	names := []string{}
	for i, ship := range b.ships {
		if b.isSunk(i) {
			names = append(names, ship.Name)
		}
	}
	return names
}

// Remaining returns the placed ships that are still afloat.
func (b *Board) Remaining() Fleet {
	return b.Fleet().Without(b.SunkShips())
}

// ShipAt reveals the ship occupying c. Only the board's owner should call it.
func (b *Board) ShipAt(c Coord) (string, bool) {
	if !c.InBounds() {
		return "", false
	}
	index := b.occupancy[c.Row][c.Col]
	if index == noShip {
		return "", false
	}
	return b.ships[index].Name, true
}

// Cells returns a copy of the cells occupied by the named ship.
func (b *Board) Cells(name string) ([]Coord, bool) {
	for _, ship := range b.ships {
		if ship.Name == name {
			return append([]Coord(nil), ship.cells...), true
		}
	}
	return nil, false
}

func (b *Board) Fleet() Fleet {
	fleet := make(Fleet, len(b.ships))
	for i, ship := range b.ships {
		fleet[i] = ship.Ship
	}
	return fleet
}

// Fired is the number of shots resolved on this board.
func (b *Board) Fired() int {
	return b.fired
}

func (b *Board) occupied() int {
	total := 0
	for _, ship := range b.ships {
		total += len(ship.cells)
	}
	return total
}
