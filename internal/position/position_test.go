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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := FromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, p.ToFEN())
	}
}

func TestStartPositionBasics(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, AllCastling, p.CastlingRights())
	assert.Equal(t, SqNone, p.EpSquare())
	assert.Equal(t, 32, p.PieceCount())
	assert.False(t, p.InCheck())
}

func TestMakeUnmakeRestoresHash(t *testing.T) {
	p := NewPosition()
	before := p.Hash()
	beforeFen := p.ToFEN()

	e2e4 := NewMove(SqE2, SqE4)
	p.Make(e2e4)
	assert.NotEqual(t, before, p.Hash())
	assert.Equal(t, Black, p.SideToMove())

	p.Unmake()
	assert.Equal(t, before, p.Hash())
	assert.Equal(t, beforeFen, p.ToFEN())
}

func TestEnPassantCaptureAndHash(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	require.Equal(t, SqD6, p.EpSquare())

	capture := NewMove(SqE5, SqD6)
	beforeCount := p.PieceCount()
	p.Make(capture)
	assert.Equal(t, beforeCount-1, p.PieceCount())
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, MakePiece(White, Pawn), p.PieceAt(SqD6))

	hashAfterCapture := p.Hash()
	p.Unmake()
	assert.Equal(t, SqD6, p.EpSquare())
	assert.NotEqual(t, hashAfterCapture, p.Hash())
}

func TestDoublePushSetsEpOnlyWhenCapturable(t *testing.T) {
	p := NewPosition()
	p.Make(NewMove(SqE2, SqE4))
	assert.Equal(t, SqNone, p.EpSquare(), "no black pawn beside e4 yet, so EP must not be hash-visible")
}

func TestCastlingMakeUnmake(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	castle := NewMove(SqE1, SqG1)
	p.Make(castle)
	assert.Equal(t, MakePiece(White, King), p.PieceAt(SqG1))
	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqE1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))
	assert.False(t, p.CastlingRights().Has(WhiteKingside))
	assert.False(t, p.CastlingRights().Has(WhiteQueenside))

	p.Unmake()
	assert.Equal(t, MakePiece(White, King), p.PieceAt(SqE1))
	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(SqH1))
	assert.True(t, p.CastlingRights().Has(WhiteKingside))
}

func TestPromotionMakeUnmake(t *testing.T) {
	p, err := FromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)

	promo := NewPromotionMove(SqA7, SqA8, Queen)
	p.Make(promo)
	assert.Equal(t, MakePiece(White, Queen), p.PieceAt(SqA8))

	p.Unmake()
	assert.Equal(t, MakePiece(White, Pawn), p.PieceAt(SqA7))
	assert.Equal(t, PieceNone, p.PieceAt(SqA8))
}

func TestRookCaptureRevokesCastlingRights(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K1NR w KQkq - 0 1")
	require.NoError(t, err)
	p.Make(NewMove(SqA1, SqA8))
	assert.False(t, p.CastlingRights().Has(BlackQueenside))
	assert.True(t, p.CastlingRights().Has(BlackKingside))
}

func TestIsSquareAttacked(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/4R3/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsSquareAttacked(SqE8, White))
	assert.True(t, p.InCheck())
}

func TestInsufficientMaterial(t *testing.T) {
	p, err := FromFEN("8/8/4k3/8/8/3NK3/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())

	p2, err := FromFEN("8/8/4k3/8/8/3RK3/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p2.HasInsufficientMaterial())
}

func TestRepetitionDetection(t *testing.T) {
	p := NewPosition()
	shuffle := []Move{
		NewMove(SqG1, SqF3), NewMove(SqG8, SqF6),
		NewMove(SqF3, SqG1), NewMove(SqF6, SqG8),
	}
	for i := 0; i < 2; i++ {
		for _, m := range shuffle {
			p.Make(m)
		}
	}
	assert.True(t, p.IsRepetition())
}
