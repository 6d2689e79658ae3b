// cmd/replay/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"solitaire_go/internal/game"
	"solitaire_go/internal/ui"
)

func main() {
	inPath := flag.String("in", "", "depth_sweep 写出的 JSON 文件；留空则现场求解")
	depth := flag.Int("depth", 5, "现场求解时的走子预算")
	delay := flag.Duration("delay", 600*time.Millisecond, "每步播放间隔")
	flag.Parse()

	var moves game.MoveList
	if *inPath != "" {
		sols, err := game.LoadSolutions(*inPath)
		if err != nil {
			log.Fatal(err)
		}
		if len(sols) == 0 {
			log.Fatalf("%s: no solutions inside", *inPath)
		}
		// 取预算最深的一条来播放
		best := sols[0]
		for _, s := range sols[1:] {
			if s.Depth > best.Depth {
				best = s
			}
		}
		moves = best.Moves
		log.Printf("replaying depth=%d line with %d moves", best.Depth, len(moves))
	} else {
		start := game.NewBoard(*depth)
		t0 := time.Now()
		moves = start.BestMoveList()
		log.Printf("solved depth=%d in %v (%d moves, %d applied)",
			*depth, time.Since(t0), len(moves), start.Stats().Applied())
	}

	screen := ui.NewReplayScreen(game.NewBoard(len(moves)), moves, *delay)

	ebiten.SetWindowSize(ui.WindowWidth, ui.WindowHeight)
	ebiten.SetWindowTitle("Solitaire 求解回放")
	if err := ebiten.RunGame(screen); err != nil {
		log.Fatal(err)
	}
}
