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
	. "github.com/corvidchess/corvid/internal/types"
)

// pvTable holds a triangular principal-variation array, one row per ply:
// row[ply] holds the best line found from that ply downward. A fixed
// [MaxPly][MaxPly]Move array keeps the hot search path allocation-free;
// there is no dedicated move-slice type in this repo, unlike the teacher's
// moveslice.MoveSlice, since MaxPly is a small compile-time bound here.
type pvTable struct {
	moves [MaxPly][MaxPly]Move
	n     [MaxPly]int
}

// clear empties the line stored for ply.
func (t *pvTable) clear(ply int) {
	t.n[ply] = 0
}

// line returns the best line found from ply downward, most recent root
// move first.
func (t *pvTable) line(ply int) []Move {
	return t.moves[ply][:t.n[ply]]
}

// save records move as the new best move at ply, with the continuation
// already found one ply deeper appended after it — the child's PV becomes
// this ply's PV tail, mirroring the teacher's savePV helper in
// alphabeta.go.
func (t *pvTable) save(ply int, move Move) {
	if ply < 0 || ply+1 >= MaxPly {
		return
	}
	t.moves[ply][0] = move
	n := copy(t.moves[ply][1:], t.moves[ply+1][:t.n[ply+1]])
	t.n[ply] = n + 1
}
