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

package movegen

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Perft counts move generator nodes at a fixed depth, broken down by move
// category, the standard cross-engine move-generator correctness check.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64

	stopFlag bool
}

// NewPerft creates a fresh, zeroed Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests an in-progress Run (from another goroutine) to abandon
// its traversal and return 0.
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// Run walks the full legal-move tree rooted at p to the given depth and
// returns the node count, also populating the category counters.
func (pf *Perft) Run(p *position.Position, depth int) uint64 {
	pf.stopFlag = false
	pf.Nodes, pf.CaptureCounter, pf.EnpassantCounter = 0, 0, 0
	pf.CastleCounter, pf.PromotionCounter, pf.CheckCounter = 0, 0, 0
	pf.Nodes = pf.search(p, depth)
	return pf.Nodes
}

func (pf *Perft) search(p *position.Position, depth int) uint64 {
	var list MoveList
	GeneratePseudoLegal(p, &list)

	mover := p.SideToMove()
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		if pf.stopFlag {
			return 0
		}
		m := list.At(i)

		capture := p.PieceAt(m.To()) != PieceNone
		enpassant := m.To() == p.EpSquare() && p.PieceAt(m.From()).KindOf() == Pawn && m.From().FileOf() != m.To().FileOf()
		castling := p.PieceAt(m.From()).KindOf() == King &&
			(m.To().FileOf()-m.From().FileOf() == 2 || m.To().FileOf()-m.From().FileOf() == -2)

		p.Make(m)
		legal := !p.IsSquareAttacked(p.KingSquare(mover), mover.Flip())
		if legal {
			if depth > 1 {
				nodes += pf.search(p, depth-1)
			} else {
				nodes++
				if capture || enpassant {
					pf.CaptureCounter++
				}
				if enpassant {
					pf.EnpassantCounter++
				}
				if castling {
					pf.CastleCounter++
				}
				if m.IsPromotion() {
					pf.PromotionCounter++
				}
				if p.InCheck() {
					pf.CheckCounter++
				}
			}
		}
		p.Unmake()
	}
	return nodes
}
