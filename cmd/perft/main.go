// Command perft counts move-generation leaf nodes for a position.
//
// Besides the flag form it accepts the positional form used by perftree:
//
//	perft <depth> "<fen>" ["<move> <move> ..."]
//
// which prints a divide listing and the total.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/Solid-State-Chess/max-sub000/board"
	"github.com/pkg/errors"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	moves := flag.String("moves", "", "Space separated moves in coordinate notation to play first")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	detailed := flag.Bool("detailed", false, "Print capture/castle/check counters")
	parallel := flag.Int("parallel", 0, "Divide the root moves over N workers")
	verify := flag.Bool("verify", false, "Compare the divide against dragontoothmg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)

	if flag.NArg() >= 2 {
		if err := perftree(flag.Args()); err != nil {
			logger.Fatal(err)
		}
		return
	}

	logger.Println("perft",
		"RuntimeVersion", runtime.Version(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
	)

	if *depth <= 0 {
		logger.Fatal("-depth must be > 0")
	}
	moveList := strings.Fields(*moves)

	b, err := board.ParseFEN(*fen)
	if err != nil {
		logger.Fatalf("ParseFEN error: %v", err)
	}
	if err := b.ApplyMoves(moveList); err != nil {
		logger.Fatal(err)
	}

	switch {
	case *verify:
		if err := verifyDivide(os.Stdout, b, *depth); err != nil {
			logger.Fatal(err)
		}
		return
	case *detailed:
		var c board.PerftCounts
		if *parallel > 0 {
			c, err = board.ParallelDetailed(context.Background(), *fen, moveList, *depth, *parallel)
			if err != nil {
				logger.Fatal(err)
			}
		} else {
			c = board.PerftDetailed(b, *depth)
		}
		fmt.Printf("Nodes: %d\nCaptures: %d\nEnPassants: %d\nCastles: %d\nPromotions: %d\nChecks: %d\nCheckmates: %d\n",
			c.Nodes, c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks, c.Checkmates)
		return
	case *parallel > 0:
		div, err := board.ParallelDivide(context.Background(), *fen, moveList, *depth, *parallel)
		if err != nil {
			logger.Fatal(err)
		}
		if _, err := board.WriteDivide(os.Stdout, div); err != nil {
			logger.Fatal(err)
		}
		return
	case *divide:
		if _, err := board.WriteDivide(os.Stdout, b.DivideStrings(board.PerftDivide(b, *depth))); err != nil {
			logger.Fatal(err)
		}
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			logger.Fatalf("creating cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatalf("start cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(b, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%d \t\t%d \t\t%s \t%.0f\n", *depth, totalNodes, elapsed, nps)
}

func perftree(args []string) error {
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth <= 0 {
		return errors.Errorf("bad depth %q", args[0])
	}
	b, err := board.ParseFEN(args[1])
	if err != nil {
		return errors.Wrap(err, "perftree")
	}
	if len(args) > 2 {
		if err := b.ApplyMoves(strings.Fields(args[2])); err != nil {
			return errors.Wrap(err, "perftree")
		}
	}
	_, err = board.WriteDivide(os.Stdout, b.DivideStrings(board.PerftDivide(b, depth)))
	return err
}
