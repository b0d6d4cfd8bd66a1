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

// Package search implements iterative-deepening alpha-beta search over a
// position.Position: negamax with a transposition table, null-move
// pruning, late-move reductions, killer/history move ordering, and an
// optional endgame-tablebase bridge, driven by a UCI "go" command's time
// or depth limits.
package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/evaluator"
	"github.com/corvidchess/corvid/internal/history"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tablebase"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	"github.com/corvidchess/corvid/internal/util"
	. "github.com/corvidchess/corvid/internal/types"
)

// Search runs one "go" command at a time. It is not safe for concurrent
// calls to Run; Stop may be called from another goroutine to interrupt a
// running search.
type Search struct {
	tt   *transpositiontable.Table
	eval *evaluator.Evaluator
	hist *history.Heuristics
	tb   *tablebase.Bridge

	infoFunc func(Info)

	stop      *util.Bool
	startTime time.Time
	hardLimit time.Duration
	softLimit time.Duration
	nodeLimit uint64
	depthLimit int

	nodes uint64
	pv    pvTable
}

// NewSearch creates a Search with a transposition table sized hashSizeMB
// megabytes and no tablebase configured.
func NewSearch(hashSizeMB int) *Search {
	return &Search{
		tt:   transpositiontable.NewTable(hashSizeMB),
		eval: evaluator.NewEvaluator(),
		hist: history.NewHeuristics(),
		tb:   tablebase.NewBridge(tablebase.NewNullOracle()),
		stop: util.NewBool(false),
	}
}

// SetTablebase installs oracle as the endgame-tablebase backend, replacing
// the null oracle.
func (s *Search) SetTablebase(oracle tablebase.Oracle) {
	s.tb = tablebase.NewBridge(oracle)
}

// ResizeHash resizes the transposition table, discarding its contents.
func (s *Search) ResizeHash(mb int) {
	s.tt.Resize(mb)
}

// SetInfoFunc installs f to be called once per completed iteration with
// the iteration's summary, for a UCI front-end's "info" output.
func (s *Search) SetInfoFunc(f func(Info)) {
	s.infoFunc = f
}

// NewGame clears all per-game search state: the transposition table and
// the killer/history tables. Call this on a UCI "ucinewgame" command.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.hist.Clear()
}

// Stop requests that a running Run return as soon as possible with the
// best result found so far.
func (s *Search) Stop() {
	s.stop.Store(true)
}

// Run searches p under limits and returns the best line found. It blocks
// until the search completes, the time limit expires, or Stop is called.
func (s *Search) Run(p *position.Position, limits Limits) Result {
	s.stop.Store(false)
	s.startTime = time.Now()
	s.nodes = 0
	s.tt.NewSearch()
	s.hist.Clear()

	s.hardLimit, s.softLimit = computeTimeLimits(p, limits)
	s.nodeLimit = limits.Nodes
	s.depthLimit = limits.Depth
	if s.depthLimit <= 0 || s.depthLimit > MaxPly-1 {
		s.depthLimit = MaxPly - 1
	}

	log := logging.GetSearchLog()

	var best Result
	for depth := 1; depth <= s.depthLimit; depth++ {
		s.pv.clear(0)

		score := s.negamax(p, depth, 0, -Inf, Inf, true)

		if s.stop.Load() && depth > 1 {
			// A mid-iteration stop discards this depth's partial result;
			// the previous iteration's result stands.
			break
		}

		line := s.pv.line(0)
		if len(line) == 0 {
			break
		}
		elapsed := time.Since(s.startTime)
		best = Result{
			BestMove: line[0],
			Score:    score,
			Depth:    depth,
			Nodes:    s.nodes,
			Time:     elapsed,
		}
		if len(line) > 1 {
			best.PonderMove = line[1]
		}

		if s.infoFunc != nil {
			s.infoFunc(Info{
				Depth: depth,
				Score: score,
				Nodes: s.nodes,
				Nps:   util.Nps(s.nodes, elapsed),
				Time:  elapsed,
				PV:    line,
			})
		}

		log.Debugf("depth %d score %d nodes %d pv %v", depth, score, s.nodes, line)

		if s.stop.Load() {
			break
		}
		if s.nodeLimit > 0 && s.nodes >= s.nodeLimit {
			break
		}
		if s.hardLimit > 0 && time.Since(s.startTime) >= s.softLimit {
			break
		}
	}

	return best
}

// pollClock checks the elapsed time against the hard limit and sets the
// stop flag if it has been exceeded. Called every
// config.Settings.Search.NodesPerClockCheck nodes rather than on every
// node, since time.Since is comparatively expensive on the hot path.
func (s *Search) pollClock() {
	if s.hardLimit > 0 && time.Since(s.startTime) >= s.hardLimit {
		s.stop.Store(true)
		return
	}
	if s.nodeLimit > 0 && s.nodes >= s.nodeLimit {
		s.stop.Store(true)
	}
}

// computeTimeLimits turns a UCI "go" command's clock parameters into a
// hard cutoff (search must stop) and a soft cutoff (iterative deepening
// should not start a new iteration past this point). Per spec.md §4.7: a
// fixed move time is used directly as the hard limit; otherwise the hard
// limit is a fraction of the remaining clock plus half the increment.
// These are read as two mutually exclusive branches rather than a literal
// min() of both, since movetime mode carries no remaining-time figure to
// compare against (see DESIGN.md).
func computeTimeLimits(p *position.Position, l Limits) (hard, soft time.Duration) {
	if !l.timeControlled() {
		return 0, 0
	}
	if l.MoveTime > 0 {
		hard = l.MoveTime
		return hard, hard / 2
	}

	remaining, inc := l.WhiteTime, l.WhiteInc
	if p.SideToMove() == Black {
		remaining, inc = l.BlackTime, l.BlackInc
	}

	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	hard = remaining/time.Duration(movesToGo) + inc/2
	if hard <= 0 {
		hard = time.Millisecond
	}
	if hard > remaining {
		hard = remaining
	}
	return hard, hard / 2
}
