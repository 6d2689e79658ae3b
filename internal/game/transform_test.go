package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformMappingTable(t *testing.T) {
	// 固定几组坐标，把三种变换的映射钉死
	cases := []struct {
		tr   Transform
		in   Coord
		want Coord
	}{
		{HalfRotation, Coord{Row: 0, Col: 2}, Coord{Row: 6, Col: 4}},
		{HalfRotation, Coord{Row: 1, Col: 3}, Coord{Row: 5, Col: 3}},
		{HalfRotation, Coord{Row: 3, Col: 3}, Coord{Row: 3, Col: 3}},
		{VerticalReflection, Coord{Row: 0, Col: 2}, Coord{Row: 0, Col: 4}},
		{VerticalReflection, Coord{Row: 3, Col: 1}, Coord{Row: 3, Col: 5}},
		{VerticalReflection, Coord{Row: 5, Col: 3}, Coord{Row: 5, Col: 3}},
		{HorizontalReflection, Coord{Row: 0, Col: 2}, Coord{Row: 6, Col: 2}},
		{HorizontalReflection, Coord{Row: 1, Col: 3}, Coord{Row: 5, Col: 3}},
		{HorizontalReflection, Coord{Row: 3, Col: 5}, Coord{Row: 3, Col: 5}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.tr.Apply(c.in), "%v 作用在 %v 上", c.tr, c.in)
	}
}

func TestTransformInvolution(t *testing.T) {
	// 三种变换都是对合：作用两次回到原点
	for _, tr := range Transforms {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				p := Coord{Row: r, Col: c}
				require.Equal(t, p, tr.Apply(tr.Apply(p)), "%v 两次作用在 %v 上", tr, p)
			}
		}
	}
}

func TestTransformKeepsCrossShape(t *testing.T) {
	// 十字掩码在三种变换下封闭：盘内映到盘内，盘外映到盘外
	for _, tr := range Transforms {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				p := Coord{Row: r, Col: c}
				require.Equal(t, onCross(p), onCross(tr.Apply(p)), "%v 作用在 %v 上改变了掩码", tr, p)
			}
		}
	}
}

func TestOrbitAndRepresentative(t *testing.T) {
	for _, tr := range Transforms {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				p := Coord{Row: r, Col: c}
				orbit := tr.Orbit(p)

				// 1) 对合的轨道只有 1 或 2 个坐标，起点在最前
				require.Contains(t, []int{1, 2}, len(orbit))
				require.Equal(t, p, orbit[0])

				// 2) 代表是轨道里行优先最小的那个，且选代表是幂等的
				rep := tr.OrbitRepresentative(p)
				for _, q := range orbit {
					require.False(t, q.Less(rep), "%v 的轨道里 %v 比代表 %v 还小", p, q, rep)
				}
				require.Equal(t, rep, tr.OrbitRepresentative(rep))

				// 3) IsOrbitRepresentative 与代表定义一致
				require.Equal(t, rep == p, tr.IsOrbitRepresentative(p))
			}
		}
	}
}
