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

// Package attacks precomputes every square-to-square attack table the
// move generator and "is square attacked" queries need: leaper tables for
// pawns/knights/kings, and fancy-magic tables for the sliding pieces
// (rooks/bishops, queens derive from the union of both). Everything here
// is computed once at package init and treated as read-only afterwards.
package attacks

import (
	. "github.com/corvidchess/corvid/internal/types"
)

var (
	KnightAttacks [SqLength]Bitboard
	KingAttacks   [SqLength]Bitboard
	PawnAttacks   [ColorLength][SqLength]Bitboard

	rookMagics   [SqLength]magic
	bishopMagics [SqLength]magic

	rookTable   []Bitboard
	bishopTable []Bitboard
)

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	initLeapers()
	rookTable = initMagics(&rookMagics, &rookDirections, magicSeeds[:])
	bishopTable = initMagics(&bishopMagics, &bishopDirections, magicSeeds[:])
}

func initLeapers() {
	for sq := SqA1; sq < SqLength; sq++ {
		f, r := sq.FileOf(), sq.RankOf()
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				KnightAttacks[sq] = KnightAttacks[sq].Set(MakeSquare(nf, nr))
			}
		}
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				KingAttacks[sq] = KingAttacks[sq].Set(MakeSquare(nf, nr))
			}
		}
		if f > 0 && r < 7 {
			PawnAttacks[White][sq] = PawnAttacks[White][sq].Set(MakeSquare(f-1, r+1))
		}
		if f < 7 && r < 7 {
			PawnAttacks[White][sq] = PawnAttacks[White][sq].Set(MakeSquare(f+1, r+1))
		}
		if f > 0 && r > 0 {
			PawnAttacks[Black][sq] = PawnAttacks[Black][sq].Set(MakeSquare(f-1, r-1))
		}
		if f < 7 && r > 0 {
			PawnAttacks[Black][sq] = PawnAttacks[Black][sq].Set(MakeSquare(f+1, r-1))
		}
	}
}

// RookAttacks returns the rook's attack set from sq given the board
// occupancy, via the fancy-magic lookup.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// BishopAttacks returns the bishop's attack set from sq given the board
// occupancy, via the fancy-magic lookup.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}
