package game

import "fmt"

// PlayMoves replays moves from start and returns every intermediate
// position: len(moves)+1 boards with start first. Panics if a move is
// illegal on the board it lands on; replayed lines are expected to come
// from a search over the same rules.
func PlayMoves(start *Board, moves MoveList) []*Board {
	boards := make([]*Board, 0, len(moves)+1)
	boards = append(boards, start)
	b := start
	for i, m := range moves {
		if !b.IsMovePossible(m) {
			panic(fmt.Sprintf("replay: move %d %v is illegal on this board", i, m))
		}
		b = b.ApplyMove(m)
		boards = append(boards, b)
	}
	return boards
}
