package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayMovesRebuildsEveryPosition(t *testing.T) {
	// 1) 手工选两步先后合法的走子：先跳进中心，再从下方跨过中心
	start := NewBoard(5)
	moves := MoveList{
		{From: Coord{Row: 1, Col: 3}, To: Coord{Row: 3, Col: 3}},
		{From: Coord{Row: 4, Col: 3}, To: Coord{Row: 2, Col: 3}},
	}

	boards := PlayMoves(start, moves)

	// 2) 起始局面在最前，之后每步一个局面
	require.Len(t, boards, len(moves)+1)
	require.Same(t, start, boards[0])

	// 3) 第 i 个局面等价于把前 i 步依次走完
	cur := start
	for i, m := range moves {
		cur = cur.ApplyMove(m)
		require.Equal(t, cur.Cells, boards[i+1].Cells, "第 %d 个局面的盘面", i+1)
		require.Equal(t, moves[:i+1], boards[i+1].Moves, "第 %d 个局面的历史", i+1)
	}
	require.Equal(t, 30, boards[2].OccupiedCount())
}

func TestPlayMovesPanicsOnIllegalMove(t *testing.T) {
	// 回放到非法步说明调用方破坏了前置条件，必须 panic 而不是吞掉
	start := NewBoard(5)
	bad := MoveList{{From: Coord{Row: 3, Col: 3}, To: Coord{Row: 3, Col: 5}}} // 起点是空洞

	require.Panics(t, func() {
		PlayMoves(start, bad)
	})
}

func TestPlayMovesEmptyList(t *testing.T) {
	// 空走子表：只回放出起始局面自己
	start := NewBoard(5)
	boards := PlayMoves(start, nil)
	require.Len(t, boards, 1)
	require.Same(t, start, boards[0])
}
