//
// corvid - UCI-compatible chess engine core
//
// MIT License
//
// Copyright (c) 2026 The corvid authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Command corvid-perft is a benchmarking tool, not part of the engine's
// search: it fans the root move list of a position out across a worker
// per move and sums movegen.Perft counts from each resulting position.
// This parallelism is exempt from the engine's single-threaded search, since
// it measures move generation rather than playing a game.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
)

func main() {
	fen := flag.String("fen", position.StartFen, "fen of the position to run perft on")
	depth := flag.Int("depth", 5, "perft depth")
	flag.Parse()

	if *depth < 1 {
		fmt.Println("depth must be >= 1")
		return
	}

	root, err := position.FromFEN(*fen)
	if err != nil {
		fmt.Println(err)
		return
	}

	var moves movegen.MoveList
	movegen.GenerateLegal(root, &moves)

	start := time.Now()

	if *depth == 1 {
		fmt.Printf("%s\t%d\n", "(root)", moves.Len())
		printSummary(uint64(moves.Len()), time.Since(start))
		return
	}

	var total uint64
	g, _ := errgroup.WithContext(context.Background())
	counts := make([]uint64, moves.Len())

	for i := 0; i < moves.Len(); i++ {
		i := i
		m := moves.At(i)
		g.Go(func() error {
			p, err := position.FromFEN(*fen)
			if err != nil {
				return err
			}
			p.Make(m)
			pf := movegen.NewPerft()
			counts[i] = pf.Run(p, *depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Println(err)
		return
	}

	for i := 0; i < moves.Len(); i++ {
		fmt.Printf("%s\t%d\n", moves.At(i).String(), counts[i])
		total += counts[i]
	}
	printSummary(total, time.Since(start))
}

func printSummary(total uint64, elapsed time.Duration) {
	nps := float64(total) / elapsed.Seconds()
	fmt.Printf("\nnodes %d, time %s, %.0f nps\n", total, elapsed, nps)
}
