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
	"math/bits"
	"strings"
)

// Bitboard is a set of squares encoded as a 64-bit word (LERF mapping).
type Bitboard uint64

const (
	BbZero   Bitboard = 0
	BbAll    Bitboard = 0xFFFF_FFFF_FFFF_FFFF
	FileABb  Bitboard = 0x0101_0101_0101_0101
	FileHBb           = FileABb << 7
	Rank1Bb  Bitboard = 0xFF
	Rank8Bb           = Rank1Bb << 56
	Rank3Bb           = Rank1Bb << 16
	Rank6Bb           = Rank1Bb << 40
)

// SqBb returns the singleton bitboard for a square.
func SqBb(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Has reports whether square sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&SqBb(sq) != 0
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SqBb(sq)
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SqBb(sq)
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit.
// Undefined (returns SqNone) if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant square and the bitboard with that
// bit cleared, enabling the classic `for b != 0 { sq, b = b.PopLsb() }` loop.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	return sq, b&(b-1)
}

// FileBb returns the bitboard of all squares on the given file (0=A..7=H).
func FileBb(file int) Bitboard {
	return FileABb << uint(file)
}

// RankBb returns the bitboard of all squares on the given rank (0=rank1..7=rank8).
func RankBb(rank int) Bitboard {
	return Rank1Bb << uint(8*rank)
}

// String renders the bitboard as an 8x8 ASCII grid, rank 8 first, matching
// how a human reads a board, for debug logging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file <= 7; file++ {
			if b.Has(MakeSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
