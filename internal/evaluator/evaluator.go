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

// Package evaluator implements a tapered PeSTO-style static evaluation:
// material plus piece-square tables, blended between midgame and endgame
// weights by a 0..24 game-phase counter.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Evaluator holds no per-position mutable state beyond a logger; Evaluate
// is safe to call repeatedly (and concurrently, from independent instances)
// for different positions.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate returns a centipawn score from the view of the side to move:
// positive means the mover stands better. A score of zero pawns plus a
// small tempo bonus is added for the side on move, mirroring the
// convention of giving the player to act a slight edge.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if p.HasInsufficientMaterial() {
		return 0
	}

	white := e.materialAndPlacement(p, White)
	black := e.materialAndPlacement(p, Black)
	score := white.Sub(black)

	phase := e.gamePhase(p)
	value := score.Taper(phase)

	if p.SideToMove() == Black {
		value = -value
	}

	value += Value(config.Settings.Eval.Tempo)
	return value
}

// materialAndPlacement sums the PeSTO psqt contribution of every piece c
// owns, from White's point of view (Black pieces are read through a
// vertically mirrored square so the same table serves both sides).
func (e *Evaluator) materialAndPlacement(p *position.Position, c Color) Score {
	var total Score
	for kind := Pawn; kind < PieceKindNone; kind++ {
		bb := p.PiecesBb(c, kind)
		for bb != BbZero {
			var sq Square
			sq, bb = bb.PopLsb()
			lookup := sq
			if c == Black {
				lookup = mirrorVertical(sq)
			}
			total = total.Add(psqt[kind][lookup])
		}
	}
	return total
}

// gamePhase sums the phase weight of every non-pawn, non-king piece still
// on the board, capped at TotalPhase (a full board's worth).
func (e *Evaluator) gamePhase(p *position.Position) int {
	phase := 0
	for _, c := range [ColorLength]Color{White, Black} {
		for kind := Pawn; kind < PieceKindNone; kind++ {
			phase += phaseWeight[kind] * p.PiecesBb(c, kind).PopCount()
		}
	}
	if phase > TotalPhase {
		phase = TotalPhase
	}
	return phase
}
