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

package tablebase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestNullOracleIsAlwaysUnavailable(t *testing.T) {
	o := NewNullOracle()
	r, err := o.ProbeWDL("anything")
	require.NoError(t, err)
	assert.Equal(t, Unavailable, r.WDL)
}

func TestBridgeSkipsProbeAboveMaxPieces(t *testing.T) {
	p := position.NewPosition() // 32 pieces, well above MaxPieces
	mem := NewMemOracle(nil)
	b := NewBridge(mem)

	r, err := b.Probe(p)
	require.NoError(t, err)
	assert.Equal(t, Unavailable, r.WDL)
	assert.Equal(t, 0, mem.Probes(), "oracle should not be called for positions with too much material")
}

func TestBridgeProbesWithinRange(t *testing.T) {
	p, err := position.FromFEN("8/8/8/4k3/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	mem := NewMemOracle(map[string]Result{
		p.ToFEN(): {WDL: Win},
	})
	b := NewBridge(mem)

	r, err := b.Probe(p)
	require.NoError(t, err)
	assert.Equal(t, Win, r.WDL)
	assert.Equal(t, Value(20000), r.WDL.Score())
}

func TestBridgeDedupsConcurrentProbesOfSameFen(t *testing.T) {
	p, err := position.FromFEN("8/8/8/4k3/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	mem := NewMemOracle(map[string]Result{p.ToFEN(): {WDL: Draw}})
	b := NewBridge(mem)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = b.Probe(p)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, mem.Probes(), 20)
}

func TestWDLScoreMapping(t *testing.T) {
	assert.Equal(t, Value(20000), Win.Score())
	assert.Equal(t, Value(-20000), Loss.Score())
	assert.Equal(t, Value(0), Draw.Score())
	assert.Equal(t, Value(100), CursedWin.Score())
	assert.Equal(t, Value(-100), BlessedLoss.Score())
	assert.Equal(t, Value(0), Unavailable.Score())
}
