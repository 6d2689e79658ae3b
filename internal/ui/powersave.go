package ui

import "github.com/hajimehoshi/ebiten/v2"

// 回放大部分时间停在一帧上，没必要一直跑满刷新率。
// 首帧画完之前不降档，不然窗口会带着半初始化的画面卡住。
var (
	throttled bool
	booted    bool
)

// ensurePerf 按播放状态切换刷新档位：播放时全速，暂停后降到低功耗档
func ensurePerf(playing bool) {
	if !booted {
		return
	}
	switch {
	case playing && throttled:
		ebiten.SetFPSMode(ebiten.FPSModeVsyncOn)
		ebiten.SetMaxTPS(30)
		throttled = false
	case !playing && !throttled:
		ebiten.SetFPSMode(ebiten.FPSModeVsyncOffMinimum)
		ebiten.SetMaxTPS(10)
		throttled = true
	}
}

// markBooted 第一帧绘制完成后调用，此后才允许降档
func markBooted() {
	booted = true
}
