package game

import (
	"bytes"
	"fmt"
	"strconv"
	"text/tabwriter"
)

// Render draws the board as a text grid.
// reveal shows the position of ships that have not been hit, which only the owner may see.
//
//	~ water, S ship, X hit, # sunk ship, O miss
func (b *Board) Render(reveal bool) string {
	var buffer bytes.Buffer
	tabWriter := tabwriter.NewWriter(&buffer, 3, 0, 1, ' ', 0)

	fmt.Fprint(tabWriter, "\t")
	for column := 0; column < GridSize; column++ {
		fmt.Fprint(tabWriter, strconv.Itoa(column+1)+"\t")
	}
	fmt.Fprint(tabWriter, "\n")

	sunk := map[string]bool{}
	for _, name := range b.SunkShips() {
		sunk[name] = true
	}

	for row := 0; row < GridSize; row++ {
		fmt.Fprintf(tabWriter, "%c\t", 'A'+row)
		for column := 0; column < GridSize; column++ {
			c := Coord{Row: row, Col: column}
			name, occupied := b.ShipAt(c)
			switch b.shots[row][column] {
			case Hit:
				if sunk[name] {
					fmt.Fprint(tabWriter, "#\t")
				} else {
					fmt.Fprint(tabWriter, "X\t")
				}
			case Miss:
				fmt.Fprint(tabWriter, "O\t")
			default:
				if reveal && occupied {
					fmt.Fprint(tabWriter, "S\t")
				} else {
					fmt.Fprint(tabWriter, "~\t")
				}
			}
		}
		fmt.Fprint(tabWriter, "\n")
	}
	tabWriter.Flush()
	return buffer.String()
}

func (b *Board) String() string {
	return b.Render(true)
}
