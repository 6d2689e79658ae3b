// cmd/solitaire/main.go
package main

import (
	"fmt"
	"time"

	"solitaire_go/internal/game"
)

// maxMoveCount 是演示求解的走子预算：5 步内已知有整条可走的线，
// 穷举量也还在眨眼级别
const maxMoveCount = 5

func main() {
	start := game.NewBoard(maxMoveCount)

	t0 := time.Now()
	best := start.BestMoveList()
	elapsed := time.Since(t0)

	// 回放整条线，把每个局面打出来
	for _, b := range game.PlayMoves(start, best) {
		fmt.Println(b)
		fmt.Println()
	}

	fmt.Printf("Total time: %d ms\n", elapsed.Milliseconds())
	fmt.Printf("Applied moves: %d\n", start.Stats().Applied())
}
