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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestStartPositionMoveCount(t *testing.T) {
	p := position.NewPosition()
	var list MoveList
	GenerateLegal(p, &list)
	assert.Equal(t, 20, list.Len())
}

func TestPinnedPieceMustStayOnPinLine(t *testing.T) {
	p, err := position.FromFEN("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	var list MoveList
	GenerateLegal(p, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == SqE2 {
			assert.Equal(t, SqE2.FileOf(), m.To().FileOf(), "rook is pinned to the e-file and may not step off it")
		}
	}
}

func TestCastlingBlockedByOccupant(t *testing.T) {
	p, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R2NK1NR w KQkq - 0 1")
	require.NoError(t, err)
	var list MoveList
	GeneratePseudoLegal(p, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, m.From() == SqE1 && (m.To() == SqG1 || m.To() == SqC1))
	}
}

func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	p, err := position.FromFEN("r3k2r/8/8/8/8/4b3/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	var list MoveList
	GenerateLegal(p, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, m.From() == SqE1 && m.To() == SqG1, "bishop on e3 covers g1 via f2, so O-O must be illegal")
	}
}

func TestEnPassantGenerated(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	var list MoveList
	GenerateLegal(p, &list)
	found := false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == SqE5 && m.To() == SqD6 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHasLegalMoveDetectsStalemate(t *testing.T) {
	p, err := position.FromFEN("k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, HasLegalMove(p))
	assert.False(t, p.InCheck())
}

func TestHasLegalMoveDetectsCheckmate(t *testing.T) {
	p, err := position.FromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)
	var list MoveList
	GenerateLegal(p, &list)
	var mate Move
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == SqA1 && m.To() == SqA8 {
			mate = m
		}
	}
	require.True(t, mate.IsValid())
	p.Make(mate)
	assert.True(t, p.InCheck())
	assert.False(t, HasLegalMove(p))
	p.Unmake()
}
