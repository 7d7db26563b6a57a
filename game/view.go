package game

// View is what a shooter is allowed to know about the opponent's board:
// the outcome of every shot and which ships have been announced sunk.
type View interface {
	ShotAt(c Coord) Shot
	SunkShips() []string
}

// UnshotCoords returns every cell of the view that has not been fired at, in row-major order.
func UnshotCoords(v View) []Coord {
	coords := []Coord{}
	for _, c := range AllCoords() {
		if v.ShotAt(c) == Unshot {
			coords = append(coords, c)
		}
	}
	return coords
}
