// meta/meta.go
package meta

// GridSize is the number of rows and columns on every board.
const GridSize = 10

// MaxTurns caps the number of shot attempts in a single match.
// A full board is 2*GridSize*GridSize shots, the rest is headroom for rejected shots.
const MaxTurns = 2*GridSize*GridSize + 50

// MaxPlacementAttempts caps the random retries spent on placing a single ship.
const MaxPlacementAttempts = 10000
