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
	"golang.org/x/sync/singleflight"

	"github.com/corvidchess/corvid/internal/position"
)

// MaxPieces is the largest total piece count (both sides, kings
// included) the bridge will bother probing for.
const MaxPieces = 5

// Bridge adapts a *position.Position to an Oracle, deduplicating
// concurrent probes of the same position with a singleflight group keyed
// by FEN so a re-search racing a background poll only pays for one call.
type Bridge struct {
	oracle Oracle
	group  singleflight.Group
}

// NewBridge wraps oracle. Pass NewNullOracle() when no tablebase is
// configured.
func NewBridge(oracle Oracle) *Bridge {
	return &Bridge{oracle: oracle}
}

// Probe returns the tablebase result for p if it has few enough pieces to
// be in range, or Unavailable otherwise. Concurrent Probe calls for the
// same FEN share a single underlying oracle call.
func (b *Bridge) Probe(p *position.Position) (Result, error) {
	if p.PieceCount() > MaxPieces {
		return Result{WDL: Unavailable}, nil
	}
	fen := p.ToFEN()
	v, err, _ := b.group.Do(fen, func() (interface{}, error) {
		return b.oracle.ProbeWDL(fen)
	})
	if err != nil {
		return Result{WDL: Unavailable}, err
	}
	return v.(Result), nil
}
