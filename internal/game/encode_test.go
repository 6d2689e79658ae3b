package game

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolutionsRoundTrip(t *testing.T) {
	// 1) 存两条求解结果再读回来，内容要一字不差
	path := filepath.Join(t.TempDir(), "solutions.json")
	sols := []Solution{
		{
			Depth:     1,
			Moves:     MoveList{{From: Coord{Row: 1, Col: 3}, To: Coord{Row: 3, Col: 3}}},
			Applied:   4,
			ElapsedMs: 0,
		},
		{
			Depth:     5,
			Moves:     NewBoard(5).BestMoveList(),
			Applied:   9000,
			ElapsedMs: 12,
		},
	}

	require.NoError(t, SaveSolutions(path, sols))

	got, err := LoadSolutions(path)
	require.NoError(t, err)
	require.Equal(t, sols, got)
}

func TestLoadSolutionsMissingFile(t *testing.T) {
	// 2) 读不存在的文件要把路径包在错误里返回
	path := filepath.Join(t.TempDir(), "no_such.json")
	_, err := LoadSolutions(path)
	require.Error(t, err)
	require.ErrorContains(t, err, path)
}
