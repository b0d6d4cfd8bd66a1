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

package search

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/history"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tablebase"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestFindsMateInOne(t *testing.T) {
	// White to move: Re1-e8 is a back-rank mate, the king boxed in by its
	// own pawns on f7/g7/h7.
	p, err := position.FromFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)

	s := NewSearch(16)
	res := s.Run(p, Limits{Depth: 4})

	assert.Equal(t, "e1e8", res.BestMove.String())
	assert.GreaterOrEqual(t, res.Score, MateThreshold)
}

func TestStalemateScoresAsDraw(t *testing.T) {
	// Classic stalemate: black to move, no legal moves, not in check.
	p, err := position.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	s := NewSearch(16)
	score := s.negamax(p, 2, 0, -Inf, Inf, true)
	assert.Equal(t, Value(0), score)
}

func TestRunAlwaysReportsAMoveAtDepthOne(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(16)
	res := s.Run(p, Limits{Depth: 1})
	assert.True(t, res.BestMove.IsValid())
}

func TestStopDuringLaterIterationKeepsPreviousResult(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(16)
	// Run clears any stop requested before it starts, so the stop is issued
	// from inside the search, once depth 1 has been reported. The deeper
	// iterations never run, and the depth-1 move is what comes back.
	s.SetInfoFunc(func(Info) { s.Stop() })
	res := s.Run(p, Limits{Depth: 6})
	assert.True(t, res.BestMove.IsValid())
	assert.Equal(t, 1, res.Depth)
}

func TestTranspositionTableHitOnRepeatedSearch(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(16)

	s.Run(p, Limits{Depth: 3})
	hashfullAfterFirst := s.tt.Hashfull()
	assert.Greater(t, hashfullAfterFirst, 0)

	s.Run(p, Limits{Depth: 3})
	assert.Greater(t, s.tt.Stats.Hits, uint64(0))
}

func TestTablebaseShortCircuitsAtNonRootNode(t *testing.T) {
	p, err := position.FromFEN("8/8/8/4k3/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	mem := tablebase.NewMemOracle(map[string]tablebase.Result{
		p.ToFEN(): {WDL: tablebase.Win},
	})

	s := NewSearch(16)
	s.SetTablebase(mem)

	res := s.Run(p, Limits{Depth: 2})
	assert.True(t, res.BestMove.IsValid())
}

func TestScoreMoveOrdersTTMoveFirst(t *testing.T) {
	p := position.NewPosition()
	m := NewMove(SqE2, SqE4)
	hist := history.NewHeuristics()
	score := scoreMove(p, m, m, MoveNone, MoveNone, hist)
	assert.Equal(t, int32(scoreTTMove), score)
}

func TestScoreMoveRanksCapturesAboveQuietMoves(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	hist := history.NewHeuristics()

	capture := NewMove(SqE4, SqD5)
	quiet := NewMove(SqE1, SqD2)

	captureScore := scoreMove(p, capture, MoveNone, MoveNone, MoveNone, hist)
	quietScore := scoreMove(p, quiet, MoveNone, MoveNone, MoveNone, hist)
	assert.Greater(t, captureScore, quietScore)
	assert.GreaterOrEqual(t, captureScore, int32(scoreCaptureBase))
}

func TestMvvLvaPrefersHigherValueVictim(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/2p1q3/3P4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	takeQueen := NewMove(SqD4, SqE5)
	takePawn := NewMove(SqD4, SqC5)
	assert.Greater(t, mvvLvaScore(p, takeQueen), mvvLvaScore(p, takePawn))
}

func TestComputeTimeLimitsUsesMoveTimeDirectly(t *testing.T) {
	p := position.NewPosition()
	hard, soft := computeTimeLimits(p, Limits{MoveTime: 500 * time.Millisecond})
	assert.Equal(t, 500*time.Millisecond, hard)
	assert.Equal(t, 250*time.Millisecond, soft)
}

func TestComputeTimeLimitsSplitsRemainingClock(t *testing.T) {
	p := position.NewPosition()
	hard, _ := computeTimeLimits(p, Limits{WhiteTime: 30 * time.Second, MovesToGo: 30})
	assert.InDelta(t, float64(time.Second), float64(hard), float64(100*time.Millisecond))
}

func TestComputeTimeLimitsWithNoClockIsUnbounded(t *testing.T) {
	p := position.NewPosition()
	hard, soft := computeTimeLimits(p, Limits{Depth: 5})
	assert.Equal(t, time.Duration(0), hard)
	assert.Equal(t, time.Duration(0), soft)
}
