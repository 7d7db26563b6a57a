package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestPlaceFleet(t *testing.T) {
	t.Run("ships never overlap and stay in bounds", func(t *testing.T) {
		for seed := uint64(0); seed < 200; seed++ {
			board := NewBoard()
			require.NoError(t, board.PlaceFleet(StandardFleet(), newRand(seed)))

			seen := map[Coord]string{}
			for _, ship := range StandardFleet() {
				cells, ok := board.Cells(ship.Name)
				require.True(t, ok, "Ship %s should be placed", ship.Name)
				require.Len(t, cells, ship.Length)
				for _, cell := range cells {
					require.True(t, cell.InBounds(), "Cell %v of %s should be on the grid", cell, ship.Name)
					other, taken := seen[cell]
					require.False(t, taken, "Cell %v is shared by %s and %s", cell, ship.Name, other)
					seen[cell] = ship.Name

					name, occupied := board.ShipAt(cell)
					require.True(t, occupied)
					require.Equal(t, ship.Name, name)
				}
			}
			require.Len(t, seen, StandardFleet().Cells())
		}
	})

	t.Run("ships form a straight contiguous line", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.PlaceFleet(StandardFleet(), newRand(7)))

		for _, ship := range board.Fleet() {
			cells, _ := board.Cells(ship.Name)
			horizontal := cells[0].Row == cells[len(cells)-1].Row
			for i := 1; i < len(cells); i++ {
				if horizontal {
					require.Equal(t, cells[0].Row, cells[i].Row)
					require.Equal(t, cells[i-1].Col+1, cells[i].Col)
				} else {
					require.Equal(t, cells[0].Col, cells[i].Col)
					require.Equal(t, cells[i-1].Row+1, cells[i].Row)
				}
			}
		}
	})

	t.Run("same seed gives the same layout", func(t *testing.T) {
		a, b := NewBoard(), NewBoard()
		require.NoError(t, a.PlaceFleet(StandardFleet(), newRand(99)))
		require.NoError(t, b.PlaceFleet(StandardFleet(), newRand(99)))
		require.Equal(t, a.Render(true), b.Render(true))
	})

	t.Run("fleet larger than the grid fails fast", func(t *testing.T) {
		fleet := Fleet{}
		for i := 0; i < 11; i++ {
			fleet = append(fleet, Ship{Name: string(rune('a' + i)), Length: 10})
		}
		board := NewBoard()
		err := board.PlaceFleet(fleet, newRand(1))
		require.ErrorIs(t, err, ErrPlacementExhausted)
		require.Empty(t, board.Fleet(), "Board should be left untouched")
	})

	t.Run("ship longer than the grid is rejected", func(t *testing.T) {
		board := NewBoard()
		err := board.PlaceFleet(Fleet{{Name: "Leviathan", Length: 11}}, newRand(1))

		var placementErr *PlacementError
		require.True(t, errors.As(err, &placementErr))
		require.Equal(t, "Leviathan", placementErr.Ship.Name)
		require.ErrorIs(t, err, ErrPlacementExhausted)
	})

	t.Run("unplaceable fleet gives up instead of looping", func(t *testing.T) {
		// Staggered rows leave ten free cells, none of them adjacent.
		board := NewBoard()
		for row := 0; row < GridSize; row++ {
			ship := Ship{Name: string(rune('a' + row)), Length: GridSize - 1}
			require.NoError(t, board.PlaceShip(ship, Coord{Row: row, Col: row % 2}, Horizontal))
		}
		err := board.PlaceFleet(Fleet{{Name: "Tug", Length: 2}}, newRand(3))

		var placementErr *PlacementError
		require.True(t, errors.As(err, &placementErr))
		require.Equal(t, "Tug", placementErr.Ship.Name)
		require.ErrorIs(t, err, ErrPlacementExhausted)
		require.Len(t, board.Fleet(), GridSize, "Failed placement should be rolled back")
	})
}

func TestPlaceShip(t *testing.T) {
	t.Run("rejects overlap but allows touching", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.PlaceShip(Ship{Name: "Cruiser", Length: 3}, Coord{Row: 2, Col: 2}, Horizontal))
		require.NoError(t, board.PlaceShip(Ship{Name: "Destroyer", Length: 2}, Coord{Row: 3, Col: 2}, Horizontal))

		err := board.PlaceShip(Ship{Name: "Submarine", Length: 3}, Coord{Row: 0, Col: 3}, Vertical)
		require.ErrorIs(t, err, ErrOverlap)
	})

	t.Run("rejects out of bounds and duplicates", func(t *testing.T) {
		board := NewBoard()
		require.ErrorIs(t, board.PlaceShip(Ship{Name: "Carrier", Length: 5}, Coord{Row: 0, Col: 6}, Horizontal), ErrOutOfBounds)
		require.NoError(t, board.PlaceShip(Ship{Name: "Carrier", Length: 5}, Coord{Row: 0, Col: 5}, Horizontal))
		require.ErrorIs(t, board.PlaceShip(Ship{Name: "Carrier", Length: 5}, Coord{Row: 5, Col: 0}, Vertical), ErrDuplicateShip)
	})

	t.Run("rejects placement once shooting started", func(t *testing.T) {
		board := NewBoard()
		_, err := board.ResolveShot(Coord{Row: 0, Col: 0})
		require.NoError(t, err)
		require.ErrorIs(t, board.PlaceShip(Ship{Name: "Destroyer", Length: 2}, Coord{Row: 5, Col: 5}, Vertical), ErrPlacementAfterShots)
	})
}

func TestResolveShot(t *testing.T) {
	t.Run("miss, hit and sunk", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.PlaceShip(Ship{Name: "Destroyer", Length: 2}, Coord{Row: 4, Col: 4}, Vertical))

		result, err := board.ResolveShot(Coord{Row: 0, Col: 0})
		require.NoError(t, err)
		require.Equal(t, "miss", result.String())
		require.Equal(t, Miss, board.ShotAt(Coord{Row: 0, Col: 0}))

		result, err = board.ResolveShot(Coord{Row: 4, Col: 4})
		require.NoError(t, err)
		require.Equal(t, Result{Outcome: OutcomeHit}, result)
		require.Empty(t, board.SunkShips())

		result, err = board.ResolveShot(Coord{Row: 5, Col: 4})
		require.NoError(t, err)
		require.Equal(t, Result{Outcome: OutcomeSunk, Ship: "Destroyer"}, result)
		require.Equal(t, "sunk:Destroyer", result.String())
		require.Equal(t, []string{"Destroyer"}, board.SunkShips())
		require.Equal(t, 3, board.Fired())
	})

	t.Run("second shot on a cell is rejected and changes nothing", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.PlaceShip(Ship{Name: "Destroyer", Length: 2}, Coord{Row: 0, Col: 0}, Horizontal))
		target := Coord{Row: 0, Col: 0}

		_, err := board.ResolveShot(target)
		require.NoError(t, err)

		result, err := board.ResolveShot(target)
		require.ErrorIs(t, err, ErrAlreadyShot)
		require.Equal(t, "already", result.String())
		require.False(t, result.Accepted())
		require.Equal(t, Hit, board.ShotAt(target))
		require.Equal(t, 1, board.Fired())
	})

	t.Run("off-grid shot is rejected", func(t *testing.T) {
		board := NewBoard()
		result, err := board.ResolveShot(Coord{Row: -1, Col: 3})
		require.ErrorIs(t, err, ErrOutOfBounds)
		require.Equal(t, OutcomeAlready, result.Outcome)
		require.Equal(t, 0, board.Fired())
	})
}

func TestCarrierScenario(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.PlaceFleet(StandardFleet(), newRand(2024)))

	cells, ok := board.Cells("Carrier")
	require.True(t, ok)
	require.Len(t, cells, 5)

	for i, cell := range cells {
		require.False(t, board.AllSunk(), "Other ships remain afloat")
		result, err := board.ResolveShot(cell)
		require.NoError(t, err)
		if i < len(cells)-1 {
			require.Equal(t, OutcomeHit, result.Outcome)
		} else {
			require.Equal(t, Result{Outcome: OutcomeSunk, Ship: "Carrier"}, result)
		}
	}
	require.False(t, board.AllSunk())
	require.Equal(t, []string{"Carrier"}, board.SunkShips())
	require.Len(t, board.Remaining(), 4)
}

func TestAllSunk(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.PlaceFleet(StandardFleet(), newRand(5)))

	var last Coord
	for _, ship := range board.Fleet() {
		cells, _ := board.Cells(ship.Name)
		for _, cell := range cells {
			require.False(t, board.AllSunk())
			_, err := board.ResolveShot(cell)
			require.NoError(t, err)
			last = cell
		}
	}
	require.True(t, board.AllSunk())

	// Terminal boards still reject repeat shots
	_, err := board.ResolveShot(last)
	require.ErrorIs(t, err, ErrAlreadyShot)
	require.True(t, board.AllSunk())
}

func TestRender(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.PlaceShip(Ship{Name: "Destroyer", Length: 2}, Coord{Row: 0, Col: 0}, Horizontal))
	require.NoError(t, board.PlaceShip(Ship{Name: "Cruiser", Length: 3}, Coord{Row: 2, Col: 0}, Vertical))
	for _, c := range []Coord{{0, 0}, {0, 1}, {2, 0}, {9, 9}} {
		_, err := board.ResolveShot(c)
		require.NoError(t, err)
	}

	hidden := board.Render(false)
	require.NotContains(t, hidden, "S")
	require.Contains(t, hidden, "#")
	require.Contains(t, hidden, "X")
	require.Contains(t, hidden, "O")

	require.Contains(t, board.Render(true), "S")
}
