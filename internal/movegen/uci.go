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

var promoChars = map[byte]PieceKind{
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
}

// MoveFromUci parses a UCI long-algebraic move string ("e2e4", "e7e8q")
// against p, returning MoveNone, false if it's not well-formed or not a
// legal move in p. Castling is written in the usual king-to-destination
// form ("e1g1"), matching this engine's flagless move encoding.
func MoveFromUci(p *position.Position, s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, false
	}
	from, ok := SquareFromString(s[0:2])
	if !ok {
		return MoveNone, false
	}
	to, ok := SquareFromString(s[2:4])
	if !ok {
		return MoveNone, false
	}

	var m Move
	if len(s) == 5 {
		promo, ok := promoChars[s[4]]
		if !ok {
			return MoveNone, false
		}
		m = NewPromotionMove(from, to, promo)
	} else {
		m = NewMove(from, to)
	}

	var pseudo MoveList
	GeneratePseudoLegal(p, &pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		if pseudo.At(i) == m && IsLegalMove(p, m) {
			return m, true
		}
	}
	return MoveNone, false
}
