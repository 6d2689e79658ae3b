// File ui/input.go
package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput 处理回放控制：
// 空格或鼠标左键 播放/暂停，←/→ 单步（并暂停），R 回到开局
func (s *ReplayScreen) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.playing = !s.playing
		if s.playing {
			// 重新起播时把计时基准拉到现在，避免立刻跳帧
			s.lastAdvance = time.Now()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		s.playing = false
		s.advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		s.playing = false
		s.rewind()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.playing = false
		s.fi = 0
	}
}
