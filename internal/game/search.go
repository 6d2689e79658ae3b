// game/search.go
package game

// BestMoveList exhaustively explores the game tree below b and returns
// the longest move history reachable within the move budget. Children
// are visited in PossibleMoves order and a child's line replaces the
// current best only when strictly longer, so among equally long lines
// the first one found wins. No memoization: positions reached twice are
// searched twice.
//
// TODO: 纯穷举，预算一大就指数爆炸；可以按“已找到的最长线”做分支限界，
// 剩余步数不够超过它的子树直接剪掉
func (b *Board) BestMoveList() MoveList {
	best := b.Moves
	for _, m := range b.PossibleMoves() {
		if line := b.ApplyMove(m).BestMoveList(); len(line) > len(best) {
			best = line
		}
	}
	return best
}
