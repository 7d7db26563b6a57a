package game

type Ship struct {
	Name   string
	Length int
}

// Fleet is an ordered set of ships. Names are unique, lengths may repeat.
type Fleet []Ship

// StandardFleet returns the default fleet both boards are set up with.
func StandardFleet() Fleet {
	return Fleet{
		{Name: "Carrier", Length: 5},
		{Name: "Battleship", Length: 4},
		{Name: "Cruiser", Length: 3},
		{Name: "Submarine", Length: 3},
		{Name: "Destroyer", Length: 2},
	}
}

func (f Fleet) Lengths() []int {
	lengths := make([]int, len(f))
	for i, ship := range f {
		lengths[i] = ship.Length
	}
	return lengths
}

// Cells is the total number of grid cells the fleet occupies.
func (f Fleet) Cells() int {
	total := 0
	for _, ship := range f {
		total += ship.Length
	}
	return total
}

// Without returns the ships whose names are not in names, keeping fleet order.
func (f Fleet) Without(names []string) Fleet {
	excluded := make(map[string]bool, len(names))
	for _, name := range names {
		excluded[name] = true
	}
	rest := Fleet{}
	for _, ship := range f {
		if !excluded[ship.Name] {
			rest = append(rest, ship)
		}
	}
	return rest
}
