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
	"github.com/corvidchess/corvid/internal/history"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Move-ordering score bands, highest first, independent of
// movegen.MoveList's own generation-time scores: the TT move and killers
// need per-node context the generator doesn't have.
const (
	scoreTTMove      = 100_000
	scoreCaptureBase = 10_000
	scorePromoQueen  = 9_000
	scoreKiller1     = 8_000
	scoreKiller2     = 7_000
)

// pieceValue ranks pieces for MVV-LVA ordering only (not evaluation): a
// small integer scale keeps 10*victim-attacker comfortably inside the
// capture score band regardless of which piece recaptures.
var pieceValue = [PieceKindLength]int32{1, 3, 3, 5, 9, 0}

// orderedMoves is a fixed-capacity container of legal moves paired with a
// search-specific ordering score, sorted once per node before the move
// loop walks it.
type orderedMoves struct {
	moves  [movegen.MaxMoves]Move
	scores [movegen.MaxMoves]int32
	n      int
}

func (o *orderedMoves) add(m Move, score int32) {
	o.moves[o.n] = m
	o.scores[o.n] = score
	o.n++
}

// sort orders the list by descending score using insertion sort, which
// beats a general-purpose sort for the short lists (rarely over 40 moves)
// a chess position produces.
func (o *orderedMoves) sort() {
	for i := 1; i < o.n; i++ {
		m, s := o.moves[i], o.scores[i]
		j := i - 1
		for j >= 0 && o.scores[j] < s {
			o.moves[j+1] = o.moves[j]
			o.scores[j+1] = o.scores[j]
			j--
		}
		o.moves[j+1] = m
		o.scores[j+1] = s
	}
}

// isCaptureMove reports whether m captures a piece, including en passant
// (whose target square is otherwise empty).
func isCaptureMove(p *position.Position, m Move) bool {
	if p.PieceAt(m.To()) != PieceNone {
		return true
	}
	piece := p.PieceAt(m.From())
	return piece.KindOf() == Pawn && m.To() == p.EpSquare()
}

// capturedKind returns the piece kind captured by m, assuming m is in fact
// a capture (isCaptureMove(p, m) is true). En passant always takes a pawn.
func capturedKind(p *position.Position, m Move) PieceKind {
	if victim := p.PieceAt(m.To()); victim != PieceNone {
		return victim.KindOf()
	}
	return Pawn
}

// scoreMove implements spec.md's move-ordering table: TT move first, then
// captures by MVV-LVA, then a non-capturing queen promotion, then the two
// killer slots for this ply, then the history-heuristic count for
// anything else. History counts saturate at history.HistoryCap (16384),
// which is above scoreCaptureBase, so a heavily rewarded quiet move can
// sort ahead of captures, the queen promotion and the killers.
func scoreMove(p *position.Position, m, ttMove, killer1, killer2 Move, hist *history.Heuristics) int32 {
	switch {
	case m == ttMove:
		return scoreTTMove
	case isCaptureMove(p, m):
		attacker := p.PieceAt(m.From()).KindOf()
		return scoreCaptureBase + 10*pieceValue[capturedKind(p, m)] - int32(attacker)
	case m.IsPromotion() && m.PromotionKind() == Queen:
		return scorePromoQueen
	case m == killer1:
		return scoreKiller1
	case m == killer2:
		return scoreKiller2
	default:
		piece := p.PieceAt(m.From()).KindOf()
		return hist.HistoryScore(piece, m.To())
	}
}

// mvvLvaScore orders quiescence-search moves by victim/attacker value
// alone; TT and killer context don't apply to the capture-only move list.
func mvvLvaScore(p *position.Position, m Move) int32 {
	attacker := p.PieceAt(m.From()).KindOf()
	score := 10*pieceValue[capturedKind(p, m)] - int32(attacker)
	if m.IsPromotion() {
		score += 10 * pieceValue[Queen]
	}
	return score
}
