// File game/board.go
package game

import "fmt"

// CellState represents the state of a cell on the board.
// It can be Off (outside the cross), Empty, or Occupied by a peg.
type CellState int

const (
	Off CellState = iota
	Empty
	Occupied
)

// Coord represents a grid coordinate (row, col), both 0..BoardSize-1.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Less orders coordinates row-major: by row first, then by column.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// BoardSize 十字棋盘的边长：7×7 方格，四角各 2×2 不可用
const BoardSize = 7

// initialLayout 按行描述开局盘面：'1' 有子，'0' 空洞，' ' 盘外。
// 与渲染用的字符表一致。33 个可用格，中心留空，其余 32 格放满。
var initialLayout = [BoardSize]string{
	"  111  ",
	"  111  ",
	"1111111",
	"1110111",
	"1111111",
	"  111  ",
	"  111  ",
}

var (
	startCells     [BoardSize][BoardSize]CellState // 初始盘面，init 时从 initialLayout 解析
	allowableMoves []Move                          // 几何上可行的全部走法（不看棋子占用），行优先枚举
)

func init() {
	for r := 0; r < BoardSize; r++ {
		if len(initialLayout[r]) != BoardSize {
			panic("initialLayout row size mismatch")
		}
		for c := 0; c < BoardSize; c++ {
			switch initialLayout[r][c] {
			case '1':
				startCells[r][c] = Occupied
			case '0':
				startCells[r][c] = Empty
			case ' ':
				startCells[r][c] = Off
			default:
				panic("initialLayout: unknown cell symbol")
			}
		}
	}

	// 预计算走法表：起点、落点、被跨格都要在十字之内。
	// 枚举顺序（行优先起点 × 右上左下方向）固定了搜索的遍历顺序。
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			from := Coord{Row: r, Col: c}
			if startCells[r][c] == Off {
				continue
			}
			for d := Right; d <= Down; d++ {
				m := NewMove(from, d)
				if onCross(m.To) && onCross(m.Skipped()) {
					allowableMoves = append(allowableMoves, m)
				}
			}
		}
	}
}

// onCross reports whether c lies on the playable cross shape.
func onCross(c Coord) bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize &&
		startCells[c.Row][c.Col] != Off
}

// Board is one immutable position: the cell grid plus the move history
// that produced it. ApplyMove never touches its receiver, it builds the
// successor position instead.
type Board struct {
	Cells [BoardSize][BoardSize]CellState // 定长数组
	Moves MoveList                        // 到达当前局面的完整走子历史

	maxMoves int          // 走子预算（搜索深度上限）
	stats    *SearchStats // 整棵搜索树共享的计数器

	syms      []Transform // 懒计算的对称集合
	symsReady bool
}

// NewBoard creates the canonical starting position with the given move
// budget. Every board derived from it shares one stats handle.
func NewBoard(maxMoves int) *Board {
	return &Board{
		Cells:    startCells, // 数组赋值是深拷贝
		maxMoves: maxMoves,
		stats:    NewSearchStats(),
	}
}

// Get returns the cell state at coord c. If out of the 7×7 grid, returns Off.
func (b *Board) Get(c Coord) CellState {
	if c.Row < 0 || c.Row >= BoardSize || c.Col < 0 || c.Col >= BoardSize {
		return Off
	}
	return b.Cells[c.Row][c.Col]
}

// OccupiedCount 统计盘面上剩余的棋子数
func (b *Board) OccupiedCount() int {
	n := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.Cells[r][c] == Occupied {
				n++
			}
		}
	}
	return n
}

// Stats returns the counter handle shared across this board's search tree.
func (b *Board) Stats() *SearchStats {
	return b.stats
}

// InvariantUnder reports whether the occupancy pattern maps onto itself
// under t. Checked over the full 7×7 grid; the cross mask itself is
// symmetric, so Off cells always match trivially.
func (b *Board) InvariantUnder(t Transform) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := Coord{Row: r, Col: c}
			if b.Get(p) != b.Get(t.Apply(p)) {
				return false
			}
		}
	}
	return true
}

// Symmetries returns the transformations this position is invariant under.
// Computed on first use and cached for the life of the Board.
func (b *Board) Symmetries() []Transform {
	if !b.symsReady {
		syms := make([]Transform, 0, len(Transforms))
		for _, t := range Transforms {
			if b.InvariantUnder(t) {
				syms = append(syms, t)
			}
		}
		b.syms = syms
		b.symsReady = true
	}
	return b.syms
}

// IsOrbitRepUnderAllSymmetries reports whether c is the canonical member
// of its orbit under every currently active symmetry of this board.
func (b *Board) IsOrbitRepUnderAllSymmetries(c Coord) bool {
	for _, t := range b.Symmetries() {
		if !t.IsOrbitRepresentative(c) {
			return false
		}
	}
	return true
}

// ApplyMove 执行一步走子并返回新局面：起点和被跨格清空，落点放子，
// 历史追加这一步。接收者保持原样（数组赋值是深拷贝，历史显式复制）。
func (b *Board) ApplyMove(m Move) *Board {
	nb := &Board{
		Cells:    b.Cells,
		maxMoves: b.maxMoves,
		stats:    b.stats,
	}
	nb.Cells[m.From.Row][m.From.Col] = Empty
	skip := m.Skipped()
	nb.Cells[skip.Row][skip.Col] = Empty
	nb.Cells[m.To.Row][m.To.Col] = Occupied

	nb.Moves = make(MoveList, len(b.Moves)+1)
	copy(nb.Moves, b.Moves)
	nb.Moves[len(b.Moves)] = m

	b.stats.countApply()
	return nb
}
