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
	. "github.com/corvidchess/corvid/internal/types"
)

// zobristSeed is fixed so every process derives identical keys (spec.md §4.2).
const zobristSeed uint64 = 0x1234_5678_9ABC_DEF0

// zobristKeys holds the 793 process-wide random keys: piece-square (6*2*64),
// side-to-move (1), castling rights (16), en-passant file (8).
var zobristKeys struct {
	piece    [ColorLength][PieceKindLength][SqLength]Key
	side     Key
	castling [CastlingRightsLength]Key
	epFile   [8]Key
}

func init() {
	rng := &zobristRng{s: zobristSeed}
	for c := 0; c < ColorLength; c++ {
		for pk := 0; pk < PieceKindLength; pk++ {
			for sq := 0; sq < SqLength; sq++ {
				zobristKeys.piece[c][pk][sq] = Key(rng.next())
			}
		}
	}
	zobristKeys.side = Key(rng.next())
	for i := range zobristKeys.castling {
		zobristKeys.castling[i] = Key(rng.next())
	}
	for i := range zobristKeys.epFile {
		zobristKeys.epFile[i] = Key(rng.next())
	}
}

// zobristRng is a small deterministic xorshift64* generator, independent of
// (and seeded differently from) the one used for magic-bitboard search.
type zobristRng struct{ s uint64 }

func (r *zobristRng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func pieceKey(p Piece, sq Square) Key {
	return zobristKeys.piece[p.ColorOf()][p.KindOf()][sq]
}

func castlingKey(cr CastlingRights) Key {
	return zobristKeys.castling[cr]
}

func epFileKey(file int) Key {
	return zobristKeys.epFile[file]
}
