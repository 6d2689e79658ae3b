package game

import (
	"fmt"
	"strings"
)

// Move 表示一次从 From 跳到 To 的走子，吃掉被跨过的那颗棋子
type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

// Direction enumerates the four jump directions.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
)

// directionOffsets 定义了 4 个跳跃位移（始终跨过一个相邻格，步长 2）
var directionOffsets = [...]Coord{
	Right: {0, +2},
	Up:    {-2, 0},
	Left:  {0, -2},
	Down:  {+2, 0},
}

// NewMove builds the move jumping from `from` in direction d.
func NewMove(from Coord, d Direction) Move {
	return Move{From: from, To: from.Add(directionOffsets[d])}
}

// Skipped returns the captured cell: the midpoint of From and To.
// The displacement is always 2, so the division is exact.
func (m Move) Skipped() Coord {
	return Coord{Row: (m.From.Row + m.To.Row) / 2, Col: (m.From.Col + m.To.Col) / 2}
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}

// MoveList 是按执行顺序排列的走子序列
type MoveList []Move

func (ml MoveList) String() string {
	parts := make([]string, len(ml))
	for i, m := range ml {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// IsMovePossible 检查 m 在当前盘面上是否走得动：
// 起点有子、落点为空、被跨过的格子上有子可吃
func (b *Board) IsMovePossible(m Move) bool {
	return b.Get(m.From) == Occupied &&
		b.Get(m.To) == Empty &&
		b.Get(m.Skipped()) == Occupied
}

// PossibleMoves enumerates this position's legal moves in the fixed
// row-major order the search relies on. Returns nil once the move budget
// is spent. Moves whose From is not the orbit representative under every
// active board symmetry are pruned; the mirrored branch yields a mirrored
// line of the same length.
func (b *Board) PossibleMoves() []Move {
	if len(b.Moves) >= b.maxMoves {
		return nil
	}
	moves := make([]Move, 0, 32) // 预分配
	for _, m := range allowableMoves {
		if !b.IsMovePossible(m) {
			continue
		}
		if !b.IsOrbitRepUnderAllSymmetries(m.From) {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}
