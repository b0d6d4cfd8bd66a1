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
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tablebase"
	. "github.com/corvidchess/corvid/internal/types"
)

// isDraw reports the three spec.md §4.7 draw conditions checked at every
// non-root node: a repeated position (twofold inside search), the
// 50-move clock, and insufficient mating material.
func (s *Search) isDraw(p *position.Position) bool {
	return p.IsRepetition() || p.HalfmoveClock() >= 100 || p.HasInsufficientMaterial()
}

func hasNonPawnMaterial(p *position.Position, c Color) bool {
	return p.PiecesBb(c, Knight) != BbZero ||
		p.PiecesBb(c, Bishop) != BbZero ||
		p.PiecesBb(c, Rook) != BbZero ||
		p.PiecesBb(c, Queen) != BbZero
}

// negamax implements spec.md §4.7's Negamax algorithm: TT and tablebase
// probing, null-move pruning, move-ordered iteration with late-move
// reduction, and the standard alpha/beta cutoff/PV bookkeeping. ply is the
// distance from the root; depth is the remaining search horizon.
func (s *Search) negamax(p *position.Position, depth, ply int, alpha, beta Value, canNull bool) Value {
	s.nodes++
	if s.nodes%config.Settings.Search.NodesPerClockCheck == 0 {
		s.pollClock()
	}
	if s.stop.Load() {
		return 0
	}

	if ply > 0 && s.isDraw(p) {
		return 0
	}
	if depth <= 0 {
		s.pv.clear(ply)
		return s.quiescence(p, alpha, beta, ply)
	}

	hash := p.Hash()

	var ttMove Move
	if entry, ok := s.tt.Probe(hash, ply); ok {
		ttMove = entry.Move()
		if entry.Depth() >= depth {
			score := entry.Score()
			switch entry.Bound() {
			case BoundExact:
				if ply == 0 && ttMove.IsValid() {
					s.pv.save(0, ttMove)
				}
				return score
			case BoundLower:
				if score > alpha {
					alpha = score
				}
			case BoundUpper:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				if ply == 0 && ttMove.IsValid() {
					s.pv.save(0, ttMove)
				}
				return score
			}
		}
	}

	// Tablebase probe (root excluded: the root must always search out a
	// real best move rather than short-circuit on a WDL classification).
	if ply > 0 {
		if res, err := s.tb.Probe(p); err == nil && res.WDL != tablebase.Unavailable {
			score := res.WDL.Score()
			s.tt.Put(hash, MoveNone, score, MaxPly, BoundExact, ply)
			return score
		}
	}

	inCheck := p.InCheck()

	// Null-move pruning.
	if ply > 0 && canNull && !inCheck &&
		depth >= config.Settings.Search.NullMoveMinDepth &&
		hasNonPawnMaterial(p, p.SideToMove()) {

		undo := p.MakeNull()
		reduced := depth - 1 - config.Settings.Search.NullMoveReduction
		if reduced < 0 {
			reduced = 0
		}
		score := -s.negamax(p, reduced, ply+1, -beta, -beta+1, false)
		p.UnmakeNull(undo)

		if s.stop.Load() {
			return 0
		}
		if score >= beta && score < MateThreshold {
			return beta
		}
	}

	var list movegen.MoveList
	movegen.GenerateLegal(p, &list)

	if list.Len() == 0 {
		if inCheck {
			return -Mate + Value(ply)
		}
		return 0
	}

	k1, k2 := s.hist.Killers(ply)
	var ordered orderedMoves
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		ordered.add(m, scoreMove(p, m, ttMove, k1, k2, s.hist))
	}
	ordered.sort()

	bestScore := -Inf
	bestMove := MoveNone
	bound := BoundUpper
	movesSearched := 0

	for i := 0; i < ordered.n; i++ {
		m := ordered.moves[i]
		quiet := !isCaptureMove(p, m) && !m.IsPromotion()
		movedKind := p.PieceAt(m.From()).KindOf()

		newDepth := depth - 1

		p.Make(m)
		givesCheck := p.InCheck()

		var score Value
		if movesSearched >= config.Settings.Search.LmrMinMoveIndex &&
			depth >= config.Settings.Search.LmrMinDepth &&
			quiet && !givesCheck && !s.hist.IsKiller(ply, m) {

			lmrDepth := newDepth - config.Settings.Search.LmrReduction
			if lmrDepth < 0 {
				lmrDepth = 0
			}
			score = -s.negamax(p, lmrDepth, ply+1, -alpha-1, -alpha, true)
			if score > alpha && !s.stop.Load() {
				score = -s.negamax(p, newDepth, ply+1, -beta, -alpha, true)
			}
		} else {
			score = -s.negamax(p, newDepth, ply+1, -beta, -alpha, true)
		}
		p.Unmake()
		movesSearched++

		if s.stop.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			bound = BoundExact
			s.pv.save(ply, m)

			if score >= beta {
				s.tt.Put(hash, m, beta, depth, BoundLower, ply)
				if quiet {
					s.hist.StoreKiller(ply, m)
					s.hist.AddHistory(movedKind, m.To(), depth)
				}
				return beta
			}
		}
	}

	s.tt.Put(hash, bestMove, bestScore, depth, bound, ply)
	return bestScore
}

// quiescence implements spec.md §4.7's Quiescence: a stand-pat baseline
// followed by captures (all legal moves when in check, since a position
// under check can't simply decline to respond).
func (s *Search) quiescence(p *position.Position, alpha, beta Value, ply int) Value {
	s.nodes++
	if s.nodes%config.Settings.Search.NodesPerClockCheck == 0 {
		s.pollClock()
	}
	if s.stop.Load() {
		return 0
	}

	inCheck := p.InCheck()

	standPat := s.eval.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var list movegen.MoveList
	movegen.GenerateLegal(p, &list)

	if list.Len() == 0 {
		if inCheck {
			return -Mate + Value(ply)
		}
		return alpha
	}

	var ordered orderedMoves
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !inCheck && !isCaptureMove(p, m) && !m.IsPromotion() {
			continue
		}
		ordered.add(m, mvvLvaScore(p, m))
	}
	ordered.sort()

	for i := 0; i < ordered.n; i++ {
		m := ordered.moves[i]

		p.Make(m)
		score := -s.quiescence(p, -beta, -alpha, ply+1)
		p.Unmake()

		if s.stop.Load() {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
