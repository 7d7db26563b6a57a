package agent

import "battleship/game"

// DensityMap counts, per cell, how many ship placements consistent with the
// shots so far would cover it.
type DensityMap [game.GridSize][game.GridSize]int

// Density slides every ship length horizontally and vertically over the grid.
// A placement is consistent when none of its cells is a miss; hit cells are
// allowed under any length.
func Density(view game.View, lengths []int) DensityMap {
	var density DensityMap
	for _, length := range lengths {
		if length <= 0 || length > game.GridSize {
			continue
		}
		for _, o := range []game.Orientation{game.Horizontal, game.Vertical} {
			rows, cols := game.GridSize, game.GridSize-length+1
			if o == game.Vertical {
				rows, cols = game.GridSize-length+1, game.GridSize
			}
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					cells := game.Extent(game.Coord{Row: r, Col: c}, length, o)
					if !consistent(view, cells) {
						continue
					}
					for _, cell := range cells {
						density[cell.Row][cell.Col]++
					}
				}
			}
		}
	}
	return density
}

func consistent(view game.View, cells []game.Coord) bool {
	for _, cell := range cells {
		if view.ShotAt(cell) == game.Miss {
			return false
		}
	}
	return true
}

func (d DensityMap) At(c game.Coord) int {
	return d[c.Row][c.Col]
}

// Best returns the unshot cells sharing the highest score, and that score.
// The score is -1 when no cell is unshot.
func (d DensityMap) Best(view game.View) ([]game.Coord, int) {
	best := []game.Coord{}
	score := -1
	for _, c := range game.AllCoords() {
		if view.ShotAt(c) != game.Unshot {
			continue
		}
		switch value := d.At(c); {
		case value > score:
			score = value
			best = []game.Coord{c}
		case value == score:
			best = append(best, c)
		}
	}
	return best, score
}
