// Command search runs a fixed-depth search and prints the best move.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/Solid-State-Chess/max-sub000/board"
	"github.com/Solid-State-Chess/max-sub000/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 6, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", board.FENStartPos, "FEN to search")
	movesFlag := flag.String("moves", "", "space separated moves to play before searching")
	ttBits := flag.Uint("tt", 20, "log2 of transposition table slots, 0 disables the table")
	stats := flag.Bool("stats", false, "print cut statistics after each search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)
	logger.Println("search",
		"RuntimeVersion", runtime.Version(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
	)

	if *depthFlag <= 0 {
		logger.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			logger.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			logger.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	opts := engine.NewOptions()
	opts.TTBits = *ttBits
	opts.UseTT = *ttBits > 0
	searcher := engine.NewSearcher(opts)

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position and tables for each run
		b, err := board.ParseFEN(*fenFlag)
		if err != nil {
			logger.Fatalf("ParseFEN error: %v", err)
		}
		if err := b.ApplyMoves(strings.Fields(*movesFlag)); err != nil {
			logger.Fatal(err)
		}
		searcher.Reset()

		iterStart := time.Now()
		res := searcher.Search(b, *depthFlag)
		iterElapsed := time.Since(iterStart)

		switch {
		case res.Checkmate():
			fmt.Println("no legal move (checkmate)")
		case res.Stalemate():
			fmt.Println("no legal move (stalemate)")
		default:
			fmt.Printf("info depth %d score %s nodes %d time %v pv %s\n",
				res.Depth, engine.ScoreString(res.Score), res.Nodes, iterElapsed, engine.PVString(res.PV))
			fmt.Printf("bestmove %s\n", res.Move)
		}
		if *stats {
			if err := searcher.Stats.Write(os.Stdout); err != nil {
				logger.Fatal(err)
			}
		}
	}
	if *repeatFlag > 1 {
		fmt.Printf("total time: %v\n", time.Since(startAll))
	}
}
