// File game/transform.go
package game

// Transform is one of the symmetries of the cross shape. All three are
// involutions: applying one twice returns the original coordinate.
type Transform int

const (
	HalfRotation         Transform = iota // 旋转 180°
	VerticalReflection                    // 左右镜像（翻转列）
	HorizontalReflection                  // 上下镜像（翻转行）
)

// Transforms lists every supported symmetry. The identity is not among
// them; under it every coordinate is its own representative anyway.
var Transforms = []Transform{HalfRotation, VerticalReflection, HorizontalReflection}

// Apply maps c to its image under t.
func (t Transform) Apply(c Coord) Coord {
	switch t {
	case HalfRotation:
		return Coord{Row: BoardSize - 1 - c.Row, Col: BoardSize - 1 - c.Col}
	case VerticalReflection:
		return Coord{Row: c.Row, Col: BoardSize - 1 - c.Col}
	case HorizontalReflection:
		return Coord{Row: BoardSize - 1 - c.Row, Col: c.Col}
	}
	panic("unknown transform")
}

func (t Transform) String() string {
	switch t {
	case HalfRotation:
		return "HalfRotation"
	case VerticalReflection:
		return "VerticalReflection"
	case HorizontalReflection:
		return "HorizontalReflection"
	}
	return "Transform(?)"
}

// Orbit 返回从 c 出发反复施加 t 走出的整条轨道（回到起点为止）。
// 这里的三种变换都是对合，轨道大小只会是 1 或 2，但按一般循环来走。
func (t Transform) Orbit(c Coord) []Coord {
	orbit := []Coord{c}
	for p := t.Apply(c); p != c; p = t.Apply(p) {
		orbit = append(orbit, p)
	}
	return orbit
}

// OrbitRepresentative returns the canonical member of c's orbit: the
// minimum under row-major order. Deterministic regardless of where in
// the orbit the walk starts.
func (t Transform) OrbitRepresentative(c Coord) Coord {
	rep := c
	for _, p := range t.Orbit(c) {
		if p.Less(rep) {
			rep = p
		}
	}
	return rep
}

// IsOrbitRepresentative reports whether c is its own orbit representative.
func (t Transform) IsOrbitRepresentative(c Coord) bool {
	return t.OrbitRepresentative(c) == c
}
