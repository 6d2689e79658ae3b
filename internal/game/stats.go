package game

import (
	"log"
	"sync/atomic"
)

// applyLogEvery 控制诊断输出频率：每执行这么多步打一行进度日志
const applyLogEvery = 10_000_000

// SearchStats counts every move application across one search tree. The
// start board creates the handle and every board derived from it shares
// the same one. Increments are atomic; drivers may run several searches
// side by side, each tree with its own handle.
type SearchStats struct {
	applied int64
}

func NewSearchStats() *SearchStats {
	return &SearchStats{}
}

// Applied returns the number of moves applied so far.
func (s *SearchStats) Applied() int64 {
	return atomic.LoadInt64(&s.applied)
}

func (s *SearchStats) countApply() {
	n := atomic.AddInt64(&s.applied, 1)
	if n%applyLogEvery == 0 {
		log.Printf("search: %d moves applied", n)
	}
}
