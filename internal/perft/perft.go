// Package perft implements the standard move-generator correctness
// benchmark: count leaf positions reached after N plies from a root and
// compare against published values (https://www.chessprogramming.org/Perft_Results).
//
// ParallelCount fans the root moves out over goroutines rather than
// recursing sequentially, since Board is a plain value type safe to copy
// across them.
package perft

import (
	"runtime"
	"sync"

	"kogo"
	"kogo/notate"
)

// Count walks the legal-move tree to depth plies below b and returns the
// number of leaf positions reached. depth 0 is defined as 1 (the root
// itself counts as a single position).
func Count(b kogo.Board, depth int) int {
	if depth == 0 {
		return 1
	}
	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		child := b
		child.MakeMove(m)
		nodes += Count(child, depth-1)
	}
	return nodes
}

// Divide returns, for each legal move at the root (keyed by its notate.Move
// notation), the perft count of the subtree below it — the standard tool for isolating exactly which branch
// of the move tree has a wrong leaf count.
func Divide(b kogo.Board, depth int) map[string]int {
	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)

	result := make(map[string]int, len(moves))
	for _, m := range moves {
		child := b
		child.MakeMove(m)
		key := notate.Move(m)
		result[key] = Count(child, depth-1)
	}
	return result
}

// ParallelCount is Count fanned out over the root's legal moves across a
// worker pool sized to GOMAXPROCS, each worker recursing single-threaded
// on its own Board copy below the fan-out point. Intended for the
// top-level call only — Board.MakeMove's per-node cost is too small for
// deeper fan-out to pay for its synchronization overhead.
func ParallelCount(b kogo.Board, depth int) int {
	if depth <= 1 {
		return Count(b, depth)
	}

	gen := kogo.NewMoveGen()
	moves := gen.Run(&b)

	jobs := make(chan kogo.Move)
	var total int
	var mu sync.Mutex
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	if workers > len(moves) {
		workers = len(moves)
	}
	if workers < 1 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				child := b
				child.MakeMove(m)
				n := Count(child, depth-1)
				mu.Lock()
				total += n
				mu.Unlock()
			}
		}()
	}

	for _, m := range moves {
		jobs <- m
	}
	close(jobs)
	wg.Wait()

	return total
}
