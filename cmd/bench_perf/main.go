// cmd/bench_perf/main.go
package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"solitaire_go/internal/game"
)

func main() {
	// 开启 CPU Profile
	f, err := os.Create("cpu_solitaire.prof")
	if err != nil {
		fmt.Println("could not create CPU profile: ", err)
		return
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		fmt.Println("could not start CPU profile: ", err)
		return
	}
	defer pprof.StopCPUProfile()

	fmt.Println("Starting full-tree solitaire benchmarking...")

	depth := 8 // 预算设为 8，兼顾运行时长与真实负载
	start := game.NewBoard(depth)

	t0 := time.Now()
	best := start.BestMoveList()
	elapsed := time.Since(t0)

	applied := start.Stats().Applied()
	fmt.Printf("Best line (%d moves): %v\n", len(best), best)
	fmt.Printf("Total time for full search: %v\n", elapsed)
	fmt.Printf("Applied moves: %d (%.0f moves/sec)\n", applied, float64(applied)/elapsed.Seconds())
	fmt.Println("Profile saved to cpu_solitaire.prof. Run 'go tool pprof -http=:8080 cpu_solitaire.prof' to view the heatmap.")
}
