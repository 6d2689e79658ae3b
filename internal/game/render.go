// File game/render.go
package game

import "strings"

// String renders the position for the console: the move history on the
// first line, then the 7×7 grid. ' ' is off-board, '0' an empty hole,
// '1' a peg; when history exists the last move's origin renders as '-'
// and its landing cell as '+', overriding the occupancy symbol.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.Moves.String())

	last, hasLast := b.lastMove()
	for r := 0; r < BoardSize; r++ {
		sb.WriteByte('\n')
		for c := 0; c < BoardSize; c++ {
			p := Coord{Row: r, Col: c}
			switch {
			case hasLast && p == last.From:
				sb.WriteByte('-')
			case hasLast && p == last.To:
				sb.WriteByte('+')
			default:
				sb.WriteByte(cellSymbol(b.Cells[r][c]))
			}
		}
	}
	return sb.String()
}

func (b *Board) lastMove() (Move, bool) {
	if len(b.Moves) == 0 {
		return Move{}, false
	}
	return b.Moves[len(b.Moves)-1], true
}

// cellSymbol 与 initialLayout 的字符表保持一致
func cellSymbol(s CellState) byte {
	switch s {
	case Occupied:
		return '1'
	case Empty:
		return '0'
	}
	return ' '
}
