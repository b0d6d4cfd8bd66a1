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

// Move is a 16-bit packed move value, copied freely with no indirection:
//
//	bits 0-5:   source square   (0-63)
//	bits 6-11:  destination square (0-63)
//	bits 12-13: promotion piece kind (0=Knight,1=Bishop,2=Rook,3=Queen)
//	bit 14:     is-promotion flag
//	bit 15:     reserved, always 0
//
// Special moves (castling, en passant, the pawn double push) are not
// flagged in the encoding; make/unmake recognizes them from the moving
// piece and the squares involved, as spec.md's data model requires. The
// zero value is the sentinel "no move".
type Move uint16

const (
	// MoveNone is the sentinel meaning "no move".
	MoveNone Move = 0

	moveSrcMask   = 0x003F
	moveDstShift  = 6
	moveDstMask   = 0x0FC0
	movePromoBit  = 1 << 14
	movePromoKindShift = 12
	movePromoKindMask  = 0x3000
)

// promoKinds maps the 2-bit promotion field to a PieceKind.
var promoKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}

// promoBits is the inverse of promoKinds: it maps each promotion PieceKind
// to its 2-bit field value (PieceKind - Knight).
var promoBits = map[PieceKind]uint16{Knight: 0, Bishop: 1, Rook: 2, Queen: 3}

// NewMove builds a non-promoting move.
func NewMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<moveDstShift)
}

// NewPromotionMove builds a promoting move to the given piece kind.
func NewPromotionMove(from, to Square, promo PieceKind) Move {
	return Move(uint16(from) | uint16(to)<<moveDstShift | promoBits[promo]<<movePromoKindShift | movePromoBit)
}

// From returns the source square.
func (m Move) From() Square {
	return Square(uint16(m) & moveSrcMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((uint16(m) & moveDstMask) >> moveDstShift)
}

// IsPromotion reports whether the move carries a promotion.
func (m Move) IsPromotion() bool {
	return uint16(m)&movePromoBit != 0
}

// PromotionKind returns the promotion piece kind. Only meaningful when
// IsPromotion() is true.
func (m Move) PromotionKind() PieceKind {
	return promoKinds[(uint16(m)&movePromoKindMask)>>movePromoKindShift]
}

// IsValid reports whether m is anything other than the "no move" sentinel.
func (m Move) IsValid() bool {
	return m != MoveNone
}

// String renders the move in long algebraic form, e.g. "e2e4", "e7e8q".
// Castling is rendered as the king's two-square move, e.g. "e1g1".
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string([]byte{"nbrq"[(uint16(m)&movePromoKindMask)>>movePromoKindShift]})
	}
	return s
}
