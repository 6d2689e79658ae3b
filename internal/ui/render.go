// File /ui/render.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"solitaire_go/internal/game"
)

const (
	// 窗口尺寸
	WindowWidth  = 560
	WindowHeight = 640

	tileSize = 72 // 每个格子的边长，7×7 正好铺满棋盘区
	boardTop = 48 // 棋盘上沿留给状态行
)

// boardLeft 让棋盘水平居中
const boardLeft = (WindowWidth - game.BoardSize*tileSize) / 2

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x30, 0xff}
	colorTile       = color.RGBA{49, 83, 127, 0xff}
	colorTileFrom   = color.RGBA{127, 63, 63, 0xff} // 上一步的起点格
	colorTileTo     = color.RGBA{63, 127, 83, 0xff} // 上一步的落点格
	colorPeg        = color.RGBA{0xf2, 0xd9, 0x8f, 0xff}
	colorHole       = color.RGBA{0x22, 0x32, 0x48, 0xff}
	colorText       = color.RGBA{250, 250, 250, 0xff}
)

type pegKey struct {
	d    int
	fill color.RGBA
}

// 同尺寸同颜色的圆片缓存，避免每帧重算三角形
var pegBaseCache = map[pegKey]*ebiten.Image{}

// pegBase 生成直径 d 的实心圆图：中心扇形拼三角形，
// 2x 超采样后缩回原大小，边缘更顺滑
func pegBase(d int, fill color.RGBA) *ebiten.Image {
	key := pegKey{d, fill}
	if img := pegBaseCache[key]; img != nil {
		return img
	}

	const spp = 2
	D := d * spp
	cx, cy := float64(D)/2, float64(D)/2
	radius := float64(D) / 2 * 0.92 // 稍缩一点避免贴边

	// 用 1x1 白图 + 顶点色来填充三角形
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	big := ebiten.NewImage(D, D)
	center := ebiten.Vertex{
		DstX:   float32(cx),
		DstY:   float32(cy),
		ColorR: float32(fill.R) / 255,
		ColorG: float32(fill.G) / 255,
		ColorB: float32(fill.B) / 255,
		ColorA: float32(fill.A) / 255,
	}

	// 圆用中心扇形切成 24 个三角形
	const segs = 24
	for i := 0; i < segs; i++ {
		a1 := 2 * math.Pi * float64(i) / segs
		a2 := 2 * math.Pi * float64(i+1) / segs
		v1 := center
		v2 := center
		v2.DstX, v2.DstY = float32(cx+radius*math.Cos(a1)), float32(cy+radius*math.Sin(a1))
		v3 := center
		v3.DstX, v3.DstY = float32(cx+radius*math.Cos(a2)), float32(cy+radius*math.Sin(a2))
		v1.SrcX, v1.SrcY = 0, 0
		v2.SrcX, v2.SrcY = 1, 0
		v3.SrcX, v3.SrcY = 0, 1
		big.DrawTriangles([]ebiten.Vertex{v1, v2, v3}, []uint16{0, 1, 2}, white, nil)
	}

	// 缩回到 d×d（线性过滤做下采样防锯齿）
	small := ebiten.NewImage(d, d)
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(1.0/float64(spp), 1.0/float64(spp))
	small.DrawImage(big, op)

	pegBaseCache[key] = small
	return small
}

// tileOrigin 返回格子 (row,col) 左上角的屏幕坐标
func tileOrigin(c game.Coord) (float64, float64) {
	return float64(boardLeft + c.Col*tileSize), float64(boardTop + c.Row*tileSize)
}

// DrawBoard 把一个局面画到 dst 上：方格底、圆洞、圆子。
// 有走子历史时上一步的起点/落点格换底色，和控制台的 -/+ 标记对应。
func DrawBoard(dst *ebiten.Image, b *game.Board) {
	last, hasLast := lastMoveOf(b)

	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			p := game.Coord{Row: r, Col: c}
			st := b.Get(p)
			if st == game.Off {
				continue
			}

			fill := colorTile
			if hasLast {
				switch p {
				case last.From:
					fill = colorTileFrom
				case last.To:
					fill = colorTileTo
				}
			}

			x, y := tileOrigin(p)
			ebitenutil.DrawRect(dst, x+1, y+1, tileSize-2, tileSize-2, fill)

			// 洞永远画出来，棋子盖在洞上
			drawCentered(dst, pegBase(tileSize/3, colorHole), p)
			if st == game.Occupied {
				drawCentered(dst, pegBase(tileSize*2/3, colorPeg), p)
			}
		}
	}
}

// drawCentered 把 img 居中贴到格子 c 的正中心
func drawCentered(dst *ebiten.Image, img *ebiten.Image, c game.Coord) {
	x, y := tileOrigin(c)
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x+(tileSize-w)/2, y+(tileSize-h)/2)
	dst.DrawImage(img, op)
}

func lastMoveOf(b *game.Board) (game.Move, bool) {
	if len(b.Moves) == 0 {
		return game.Move{}, false
	}
	return b.Moves[len(b.Moves)-1], true
}

// 居中绘制文本（用 basicfont）
// x, y 传入“目标中心点”的屏幕坐标
func drawTextCentered(dst *ebiten.Image, s string, x, y float64, col color.Color) {
	face := basicfont.Face7x13
	b := text.BoundString(face, s)
	w := float64(b.Dx())
	h := float64(b.Dy())
	text.Draw(dst, s, face, int(x-w/2), int(y+h/2)-2, col)
}
