package agent

import "battleship/game"

// mockView is an opponent board as seen by a shooter, with no ships behind it.
type mockView struct {
	shots map[game.Coord]game.Shot
	sunk  []string
}

func newMockView() *mockView {
	return &mockView{shots: map[game.Coord]game.Shot{}}
}

func (m *mockView) ShotAt(c game.Coord) game.Shot {
	return m.shots[c]
}

func (m *mockView) SunkShips() []string {
	return m.sunk
}

func (m *mockView) miss(cells ...game.Coord) *mockView {
	for _, c := range cells {
		m.shots[c] = game.Miss
	}
	return m
}

func (m *mockView) hit(cells ...game.Coord) *mockView {
	for _, c := range cells {
		m.shots[c] = game.Hit
	}
	return m
}
