// cmd/depth_sweep/main.go
// 批量求解：对一段走子预算逐个穷举，把每个预算下的最长线写成 JSON
package main

import (
	"flag"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"solitaire_go/internal/game"
)

func main() {
	minDepth := flag.Int("min", 1, "最小走子预算")
	maxDepth := flag.Int("max", 8, "最大走子预算")
	workers := flag.Int("workers", 0, "并发求解数（默认=CPU/2，至少1）")
	out := flag.String("out", "solutions.json", "输出 JSON 文件")
	verbose := flag.Bool("v", false, "打印每个预算的求解结果")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU() / 2
		if *workers < 1 {
			*workers = 1
		}
	}
	if *minDepth < 0 || *maxDepth < *minDepth {
		log.Fatalf("bad depth range [%d,%d]", *minDepth, *maxDepth)
	}

	log.Printf("depth_sweep: depths=[%d,%d] workers=%d out=%s", *minDepth, *maxDepth, *workers, *out)

	jobs := make(chan int, *workers*2)
	results := make(chan game.Solution, *workers)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for depth := range jobs {
				results <- solveOne(depth, *verbose)
			}
		}()
	}

	go func() {
		for d := *minDepth; d <= *maxDepth; d++ {
			jobs <- d
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	sols := make([]game.Solution, 0, *maxDepth-*minDepth+1)
	for s := range results {
		sols = append(sols, s)
	}
	sort.Slice(sols, func(i, j int) bool { return sols[i].Depth < sols[j].Depth })

	if err := game.SaveSolutions(*out, sols); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}
	log.Printf("depth_sweep done: %d solutions -> %s", len(sols), *out)
}

// solveOne 对单个预算做一次完整穷举。
// 每棵搜索树各自持有计数器，worker 之间互不干扰；搜索本身保持单线程。
func solveOne(depth int, verbose bool) game.Solution {
	start := game.NewBoard(depth)

	t0 := time.Now()
	best := start.BestMoveList()
	elapsed := time.Since(t0)

	if verbose {
		log.Printf("depth=%d best=%d moves applied=%d elapsed=%v",
			depth, len(best), start.Stats().Applied(), elapsed)
	}
	return game.Solution{
		Depth:     depth,
		Moves:     best,
		Applied:   start.Stats().Applied(),
		ElapsedMs: elapsed.Milliseconds(),
	}
}
