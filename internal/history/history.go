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

// Package history provides the move-ordering heuristics search updates as
// it walks the tree: two killer-move slots per ply, and a history-counter
// table indexed by moving-piece-kind and destination square.
package history

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// HistoryCap is the saturating ceiling for history counter entries.
const HistoryCap = 16_384

// Heuristics holds the killer and history tables for one search. A fresh
// instance (or Clear) is expected at the start of every "go" command.
type Heuristics struct {
	killers [MaxPly][2]Move
	counter [PieceKindLength][SqLength]int32
}

// NewHeuristics creates an empty Heuristics.
func NewHeuristics() *Heuristics {
	return &Heuristics{}
}

// Clear resets both tables, as required between searches.
func (h *Heuristics) Clear() {
	h.killers = [MaxPly][2]Move{}
	h.counter = [PieceKindLength][SqLength]int32{}
}

// Killers returns the two killer moves stored for ply, either of which
// may be MoveNone.
func (h *Heuristics) Killers(ply int) (Move, Move) {
	if ply < 0 || ply >= MaxPly {
		return MoveNone, MoveNone
	}
	return h.killers[ply][0], h.killers[ply][1]
}

// IsKiller reports whether m is one of the two killers stored for ply.
func (h *Heuristics) IsKiller(ply int, m Move) bool {
	a, b := h.Killers(ply)
	return m == a || m == b
}

// StoreKiller records a quiet move that caused a beta cutoff at ply. The
// most recent killer always occupies slot 0; an existing slot-0 killer is
// left alone (a repeat doesn't need to move), otherwise slot 0 is pushed
// down into slot 1 before the new move takes slot 0.
func (h *Heuristics) StoreKiller(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if h.killers[ply][0] == m {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = m
}

// AddHistory rewards a quiet move that caused a beta cutoff, proportional
// to the square of the depth it was found at, saturating at HistoryCap.
func (h *Heuristics) AddHistory(piece PieceKind, dst Square, depth int) {
	bonus := int32(depth * depth)
	v := h.counter[piece][dst] + bonus
	if v > HistoryCap {
		v = HistoryCap
	}
	h.counter[piece][dst] = v
}

// HistoryScore returns the current history counter for a quiet move,
// used as its move-ordering score when it is neither the TT move, a
// capture, a promotion, nor a killer.
func (h *Heuristics) HistoryScore(piece PieceKind, dst Square) int32 {
	return h.counter[piece][dst]
}
