// internal/game/encode.go
package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// Solution 是一次完整求解的结果：预算、找到的最长走子序列、工作量
type Solution struct {
	Depth     int      `json:"depth"`
	Moves     MoveList `json:"moves"`
	Applied   int64    `json:"applied_moves"`
	ElapsedMs int64    `json:"elapsed_ms"`
}

// SaveSolutions writes solutions as indented JSON.
func SaveSolutions(path string, sols []Solution) error {
	data, err := json.MarshalIndent(sols, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSolutions reads back a file produced by SaveSolutions.
func LoadSolutions(path string) ([]Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var sols []Solution
	if err := json.Unmarshal(data, &sols); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return sols, nil
}
