package game

import "testing"

func TestNewMoveDirections(t *testing.T) {
	// 1) 以 (3,3) 为起点，四个方向各造一步
	from := Coord{Row: 3, Col: 3}

	cases := []struct {
		dir  Direction
		want Coord
	}{
		{Right, Coord{Row: 3, Col: 5}},
		{Up, Coord{Row: 1, Col: 3}},
		{Left, Coord{Row: 3, Col: 1}},
		{Down, Coord{Row: 5, Col: 3}},
	}

	// 2) 位移必须恰好跨两格
	for _, c := range cases {
		m := NewMove(from, c.dir)
		if m.To != c.want {
			t.Errorf("方向 %d：期望落点 %v，实际 %v", c.dir, c.want, m.To)
		}
	}
}

func TestSkippedIsMidpoint(t *testing.T) {
	// 1) 遍历十字上的每个格子、每个方向构造走子
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			from := Coord{Row: r, Col: c}
			if !onCross(from) {
				continue
			}
			for d := Right; d <= Down; d++ {
				m := NewMove(from, d)

				// 2) 被吃格必须正好是 From/To 的中点（位移为 2，除法无余数）
				want := Coord{
					Row: (m.From.Row + m.To.Row) / 2,
					Col: (m.From.Col + m.To.Col) / 2,
				}
				if got := m.Skipped(); got != want {
					t.Fatalf("%v 的被吃格：期望 %v，实际 %v", m, want, got)
				}
			}
		}
	}
}

func TestJumpNeedsSkippedPeg(t *testing.T) {
	// 1) 新建棋盘并清空，只在 (1,3) 放一颗子
	b := NewBoard(10)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.Cells[r][c] == Occupied {
				b.Cells[r][c] = Empty
			}
		}
	}
	b.Cells[1][3] = Occupied

	// 2) 中间 (2,3) 没有子可吃，跳跃不成立
	m := Move{From: Coord{Row: 1, Col: 3}, To: Coord{Row: 3, Col: 3}}
	if b.IsMovePossible(m) {
		t.Errorf("被跨格为空时 %v 不该是合法走子", m)
	}

	// 3) 在 (2,3) 补上一颗子，同一步就该能走了
	b.Cells[2][3] = Occupied
	if !b.IsMovePossible(m) {
		t.Errorf("被跨格有子时 %v 应该是合法走子", m)
	}

	// 4) 列出所有可行走法，这一步应该在里面
	moves := b.PossibleMoves()
	found := false
	for _, got := range moves {
		if got == m {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("期望 %v 出现在 PossibleMoves 里，但没找到（moves=%v）", m, moves)
	}
}

func TestMoveListString(t *testing.T) {
	// 历史行的格式：带方括号、逗号分隔的 "(r,c)->(r,c)"
	ml := MoveList{
		{From: Coord{Row: 1, Col: 3}, To: Coord{Row: 3, Col: 3}},
		{From: Coord{Row: 4, Col: 3}, To: Coord{Row: 2, Col: 3}},
	}
	want := "[(1,3)->(3,3), (4,3)->(2,3)]"
	if got := ml.String(); got != want {
		t.Errorf("期望 %q，实际 %q", want, got)
	}
	if got := (MoveList{}).String(); got != "[]" {
		t.Errorf("空历史应渲染为 [], 实际 %q", got)
	}
}
