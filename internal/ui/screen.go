// File /ui/screen.go
package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"solitaire_go/internal/game"
)

// ReplayScreen 实现 ebiten.Game 接口，逐帧回放一条求出的走子序列。
// 空格 播放/暂停，←/→ 单步，R 回到开局。
type ReplayScreen struct {
	frames      []*game.Board // 预先回放好的每个局面，frames[0] 是起始局面
	fi          int           // 当前帧下标
	lastAdvance time.Time
	delay       time.Duration
	playing     bool
}

// NewReplayScreen 用 PlayMoves 一次性预生成全部局面帧
func NewReplayScreen(start *game.Board, moves game.MoveList, delay time.Duration) *ReplayScreen {
	return &ReplayScreen{
		frames:      game.PlayMoves(start, moves),
		lastAdvance: time.Now(),
		delay:       delay,
	}
}

func (s *ReplayScreen) Layout(outsideWidth, outsideHeight int) (w, h int) {
	return WindowWidth, WindowHeight
}

func (s *ReplayScreen) Update() error {
	s.handleInput()

	// 自动播放
	if s.playing && time.Since(s.lastAdvance) >= s.delay {
		s.advance()
	}

	// 播放时保持高刷新，停下来就降档省电
	ensurePerf(s.playing)
	return nil
}

// advance 前进一帧，播到最后一帧自动停住
func (s *ReplayScreen) advance() {
	s.lastAdvance = time.Now()
	if s.fi < len(s.frames)-1 {
		s.fi++
	} else {
		s.playing = false
	}
}

// rewind 后退一帧
func (s *ReplayScreen) rewind() {
	if s.fi > 0 {
		s.fi--
	}
}

func (s *ReplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	b := s.frames[s.fi]
	DrawBoard(screen, b)

	state := map[bool]string{true: "播放中", false: "已暂停"}[s.playing]
	info := fmt.Sprintf("Step %d/%d  pegs=%d  [%s]", s.fi, len(s.frames)-1, b.OccupiedCount(), state)
	ebitenutil.DebugPrint(screen, info)

	drawTextCentered(screen, b.Moves.String(), WindowWidth/2, float64(boardTop)/2+8, colorText)
	drawTextCentered(screen, "Space 播放/暂停   ←/→ 单步   R 重来", WindowWidth/2, WindowHeight-24, colorText)

	markBooted()
}
