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

package evaluator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestStartPositionIsJustTheTempoBonus(t *testing.T) {
	p := position.NewPosition()
	e := NewEvaluator()
	// The position is mirror-symmetric and it's White's move, so the
	// score should equal exactly the tempo bonus.
	assert.Equal(t, Value(config.Settings.Eval.Tempo), e.Evaluate(p))
}

func TestSideToMoveFlipIsAntisymmetric(t *testing.T) {
	white, err := position.FromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	require.NoError(t, err)
	black, err := position.FromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 2 3")
	require.NoError(t, err)

	e := NewEvaluator()
	wScore := e.Evaluate(white)
	bScore := e.Evaluate(black)

	// Same material/placement, only side to move differs: the two scores
	// should differ by exactly twice the tempo bonus.
	assert.Equal(t, wScore-2*Value(config.Settings.Eval.Tempo), -bScore)
}

func TestExtraQueenIsWorthRoughlyAQueen(t *testing.T) {
	base, err := position.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	withQueen, err := position.FromFEN("4k3/8/8/8/8/8/3Q4/4K3 w - - 0 1")
	require.NoError(t, err)

	e := NewEvaluator()
	diff := e.Evaluate(withQueen) - e.Evaluate(base)
	assert.Greater(t, int(diff), 800)
	assert.Less(t, int(diff), 1100)
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	e := NewEvaluator()
	assert.Equal(t, Value(0), e.Evaluate(p))
}

func TestGamePhaseFullBoardIsMaxPhase(t *testing.T) {
	p := position.NewPosition()
	e := NewEvaluator()
	assert.Equal(t, TotalPhase, e.gamePhase(p))
}

func TestGamePhaseBareKingsIsZero(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	e := NewEvaluator()
	assert.Equal(t, 0, e.gamePhase(p))
}
