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

import "fmt"

// Square is a board square in LERF layout: A1=0, H1=7, A8=56, H8=63.
type Square int8

const (
	SqA1 Square = iota
	SqB1, SqC1, SqD1, SqE1, SqF1, SqG1, SqH1
	SqA2, SqB2, SqC2, SqD2, SqE2, SqF2, SqG2, SqH2
	SqA3, SqB3, SqC3, SqD3, SqE3, SqF3, SqG3, SqH3
	SqA4, SqB4, SqC4, SqD4, SqE4, SqF4, SqG4, SqH4
	SqA5, SqB5, SqC5, SqD5, SqE5, SqF5, SqG5, SqH5
	SqA6, SqB6, SqC6, SqD6, SqE6, SqF6, SqG6, SqH6
	SqA7, SqB7, SqC7, SqD7, SqE7, SqF7, SqG7, SqH7
	SqA8, SqB8, SqC8, SqD8, SqE8, SqF8, SqG8, SqH8
	SqNone
	SqLength = 64
)

// Direction is a ray step expressed as a square-index delta.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = 9
	Southwest Direction = -9
	Northwest Direction = 7
	Southeast Direction = -7
)

// FileOf returns the file (0=A..7=H) of the square.
func (sq Square) FileOf() int {
	return int(sq) & 7
}

// RankOf returns the rank (0=rank1..7=rank8) of the square.
func (sq Square) RankOf() int {
	return int(sq) >> 3
}

// IsValid reports whether sq is in [0,64).
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqLength
}

// To returns the square one step in direction d, or SqNone if that would
// wrap off the board (checked via file/rank distance, not a mask).
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	dst := Square(int(sq) + int(d))
	if !dst.IsValid() {
		return SqNone
	}
	fileDelta := dst.FileOf() - sq.FileOf()
	if fileDelta < 0 {
		fileDelta = -fileDelta
	}
	rankDelta := dst.RankOf() - sq.RankOf()
	if rankDelta < 0 {
		rankDelta = -rankDelta
	}
	if fileDelta > 1 || rankDelta > 1 {
		return SqNone
	}
	return dst
}

// MakeSquare builds a square from 0-based file and rank.
func MakeSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// String renders the square in algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.FileOf(), '1'+sq.RankOf())
}

// SquareFromString parses algebraic notation ("e4") into a Square.
func SquareFromString(s string) (Square, bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone, false
	}
	return MakeSquare(file, rank), true
}
