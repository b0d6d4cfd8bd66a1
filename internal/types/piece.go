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

// PieceKind enumerates the six chess piece types, color independent.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceKindNone
	PieceKindLength = 6
)

func (pk PieceKind) String() string {
	return "PNBRQK"[pk : pk+1]
}

// pieceChars indexes by (kind + color*6): white upper case, black lower case.
const pieceChars = "PNBRQKpnbrqk"

// Piece is a (Color, PieceKind) pair packed into a single byte so it can be
// used directly as a board[square] array element.
// Encoding: kind*2 + color, which keeps PieceNone == 12 distinguishable from
// any valid (kind, color) pair without a separate validity bit.
type Piece uint8

const (
	PieceNone Piece = PieceKindLength * 2
)

// MakePiece packs a color and piece kind into a Piece value.
func MakePiece(c Color, pk PieceKind) Piece {
	return Piece(pk)*2 + Piece(c)
}

// ColorOf returns the owning color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

// KindOf returns the piece kind. Undefined for PieceNone.
func (p Piece) KindOf() PieceKind {
	return PieceKind(p / 2)
}

// IsValid reports whether p denotes an actual piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p < PieceNone
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	idx := int(p.KindOf()) + int(p.ColorOf())*int(PieceKindLength)
	return pieceChars[idx : idx+1]
}

// PieceFromChar maps a FEN piece letter ("P","n","Q", ...) to a Piece.
// Returns PieceNone, false if c is not a recognized piece letter.
func PieceFromChar(c byte) (Piece, bool) {
	for i := 0; i < len(pieceChars); i++ {
		if pieceChars[i] == c {
			kind := PieceKind(i % int(PieceKindLength))
			color := White
			if i >= int(PieceKindLength) {
				color = Black
			}
			return MakePiece(color, kind), true
		}
	}
	return PieceNone, false
}
