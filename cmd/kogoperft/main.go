// Command kogoperft runs the perft correctness/performance benchmark
// against a FEN position, structured-logging the result with zap.
//
// Flags select the FEN, search depth, and optional cpuprofile/memprofile
// output via runtime/pprof; results are logged with structured zap fields
// rather than plain Printf so depth/nodes/elapsed stay machine-parseable.
package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"go.uber.org/zap"

	"kogo/fen"
	"kogo/internal/perft"
	"kogo/notate"
)

const initialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	fenFlag := flag.String("fen", initialPositionFEN, "FEN string of the root position")
	depth := flag.Int("depth", 1, "perft depth")
	verbose := flag.Bool("verbose", false, "print per-root-move leaf counts (perft divide)")
	parallel := flag.Bool("parallel", false, "fan the root position's moves out across a worker pool")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a heap profile to")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	board, err := fen.Parse(*fenFlag)
	if err != nil {
		logger.Fatal("invalid FEN", zap.Error(err), zap.String("fen", *fenFlag))
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Fatal("creating cpu profile", zap.Error(err))
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal("starting cpu profile", zap.Error(err))
		}
		defer pprof.StopCPUProfile()
	}

	logger.Info("root position", zap.String("fen", *fenFlag), zap.Int("depth", *depth))
	if *verbose {
		logger.Info("board\n" + notate.Board(board))
	}

	start := time.Now()
	var nodes int
	if *verbose {
		divide := perft.Divide(board, *depth)
		for move, count := range divide {
			logger.Info("root move", zap.String("move", move), zap.Int("nodes", count))
			nodes += count
		}
	} else if *parallel {
		nodes = perft.ParallelCount(board, *depth)
	} else {
		nodes = perft.Count(board, *depth)
	}
	elapsed := time.Since(start)

	logger.Info("perft complete",
		zap.Int("depth", *depth),
		zap.Int("nodes", nodes),
		zap.Duration("elapsed", elapsed),
	)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			logger.Fatal("creating mem profile", zap.Error(err))
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Fatal("writing mem profile", zap.Error(err))
		}
	}
}
