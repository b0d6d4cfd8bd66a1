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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRankFile(t *testing.T) {
	assert.Equal(t, 0, SqA1.FileOf())
	assert.Equal(t, 0, SqA1.RankOf())
	assert.Equal(t, 7, SqH1.FileOf())
	assert.Equal(t, 0, SqA8.RankOf()-7, "sanity: rank delta")
	assert.Equal(t, 7, SqH8.RankOf())
	assert.Equal(t, 7, SqH8.FileOf())
}

func TestSquareString(t *testing.T) {
	cases := map[Square]string{SqA1: "a1", SqE4: "e4", SqH8: "h8"}
	for sq, want := range cases {
		assert.Equal(t, want, sq.String())
		got, ok := SquareFromString(want)
		require.True(t, ok)
		assert.Equal(t, sq, got)
	}
}

func TestSquareToOffBoard(t *testing.T) {
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqH1.To(East))
	assert.Equal(t, SqNone, SqA8.To(North))
	assert.Equal(t, SqB2, SqA1.To(Northeast))
}

func TestMakePieceRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pk := Pawn; pk <= King; pk++ {
			p := MakePiece(c, pk)
			assert.Equal(t, c, p.ColorOf())
			assert.Equal(t, pk, p.KindOf())
		}
	}
}

func TestPieceFromChar(t *testing.T) {
	p, ok := PieceFromChar('Q')
	require.True(t, ok)
	assert.Equal(t, White, p.ColorOf())
	assert.Equal(t, Queen, p.KindOf())

	p, ok = PieceFromChar('n')
	require.True(t, ok)
	assert.Equal(t, Black, p.ColorOf())
	assert.Equal(t, Knight, p.KindOf())

	_, ok = PieceFromChar('x')
	assert.False(t, ok)
}

func TestBitboardSetClearHas(t *testing.T) {
	var b Bitboard
	b = b.Set(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())
	b = b.Clear(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.Equal(t, 0, b.PopCount())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqBb(SqA1) | SqBb(SqE4) | SqBb(SqH8)
	var seen []Square
	for b != 0 {
		var sq Square
		sq, b = b.PopLsb()
		seen = append(seen, sq)
	}
	assert.Equal(t, []Square{SqA1, SqE4, SqH8}, seen)
}

func TestMoveEncoding(t *testing.T) {
	m := NewMove(SqE2, SqE4)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.False(t, m.IsPromotion())
	assert.Equal(t, "e2e4", m.String())

	pm := NewPromotionMove(SqE7, SqE8, Queen)
	assert.True(t, pm.IsPromotion())
	assert.Equal(t, Queen, pm.PromotionKind())
	assert.Equal(t, "e7e8q", pm.String())
}

func TestMoveNoneSentinel(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "0000", MoveNone.String())
}

func TestCastlingRights(t *testing.T) {
	cr := AllCastling
	assert.Equal(t, "KQkq", cr.String())
	cr = cr.Without(WhiteKingside)
	assert.False(t, cr.Has(WhiteKingside))
	assert.True(t, cr.Has(WhiteQueenside))
}

func TestScoreTaper(t *testing.T) {
	s := Score{Mg: 100, Eg: 0}
	assert.Equal(t, Value(100), s.Taper(24))
	assert.Equal(t, Value(0), s.Taper(0))
	assert.Equal(t, Value(50), s.Taper(12))
}
