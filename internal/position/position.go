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

// Package position implements the mutable chess position: bitboards, side
// to move, castling rights, en-passant state, move clocks and an
// incrementally maintained Zobrist hash, plus make/unmake of moves.
package position

import (
	"github.com/davecgh/go-spew/spew"

	. "github.com/corvidchess/corvid/internal/attacks"
	. "github.com/corvidchess/corvid/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoRecord holds exactly what Unmake needs to reverse one Make call.
type undoRecord struct {
	move             Move
	capturedPiece    Piece
	isCastling       bool
	isEnPassant      bool
	priorCastling    CastlingRights
	priorEpSquare    Square
	priorEpSquareFEN Square
	priorHalfmove    int
	priorHash        Key
}

// Position is the mutable board state described by spec.md §3.
type Position struct {
	board   [SqLength]Piece
	pieceBb [ColorLength][PieceKindLength]Bitboard
	colorBb [ColorLength]Bitboard

	sideToMove     Color
	castlingRights CastlingRights

	// epSquare is set only when the en-passant capture is actually
	// available (an enemy pawn sits beside the double-pushed pawn); this
	// is the value folded into the Zobrist hash (spec.md §9,
	// "capturable-only" policy).
	epSquare Square
	// epSquareFEN is set after every double pawn push regardless of
	// capturability, the standard FEN convention GUIs expect (spec.md §9).
	epSquareFEN Square

	halfmoveClock  int
	fullmoveNumber int
	hash           Key

	ply int

	history    []undoRecord
	hashHistory []Key
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := FromFEN(StartFen)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return p
}

// occupied returns the union of all pieces on the board.
func (p *Position) occupied() Bitboard {
	return p.colorBb[White] | p.colorBb[Black]
}

// OccupiedAll is the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard { return p.occupied() }

// OccupiedBy returns the bitboard of all pieces owned by color c.
func (p *Position) OccupiedBy(c Color) Bitboard { return p.colorBb[c] }

// PiecesBb returns the bitboard of pieces of kind pk owned by color c.
func (p *Position) PiecesBb(c Color, pk PieceKind) Bitboard { return p.pieceBb[c][pk] }

// PieceAt returns the piece on sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EpSquare returns the en-passant target square usable for hashing/capture
// (SqNone if none is currently capturable).
func (p *Position) EpSquare() Square { return p.epSquare }

// HalfmoveClock returns plies since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the FEN fullmove counter.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Hash returns the current Zobrist key.
func (p *Position) Hash() Key { return p.hash }

// Ply returns the ply-from-root counter set by the search, not by Make.
func (p *Position) Ply() int { return p.ply }

// SetPly lets the search record how deep into the tree this Position
// object currently is; it has no effect on hashing or move generation.
func (p *Position) SetPly(ply int) { p.ply = ply }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieceBb[c][King].Lsb()
}

// PieceCount returns the total number of pieces (both colors) on the board.
func (p *Position) PieceCount() int {
	return p.occupied().PopCount()
}

// MaterialIsOnlyPawnsAndKing reports whether color c has no piece other
// than pawns and its king, the guard null-move pruning needs to avoid
// zugzwang blindness (spec.md §4.7 step 5, §9).
func (p *Position) MaterialIsOnlyPawnsAndKing(c Color) bool {
	return p.pieceBb[c][Knight]|p.pieceBb[c][Bishop]|p.pieceBb[c][Rook]|p.pieceBb[c][Queen] == 0
}

func (p *Position) putPiece(piece Piece, sq Square) {
	p.board[sq] = piece
	p.pieceBb[piece.ColorOf()][piece.KindOf()] = p.pieceBb[piece.ColorOf()][piece.KindOf()].Set(sq)
	p.colorBb[piece.ColorOf()] = p.colorBb[piece.ColorOf()].Set(sq)
	p.hash ^= pieceKey(piece, sq)
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	p.board[sq] = PieceNone
	p.pieceBb[piece.ColorOf()][piece.KindOf()] = p.pieceBb[piece.ColorOf()][piece.KindOf()].Clear(sq)
	p.colorBb[piece.ColorOf()] = p.colorBb[piece.ColorOf()].Clear(sq)
	p.hash ^= pieceKey(piece, sq)
	return piece
}

func (p *Position) movePiece(from, to Square) {
	piece := p.removePiece(from)
	p.putPiece(piece, to)
}

// castlingRookSquares maps a king's castling destination square to the
// (rook-from, rook-to) pair that hops along with it.
var castlingRookSquares = map[Square][2]Square{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// castlingRightLost maps a square to the castling right that is permanently
// lost the moment a king or rook leaves (or a rook is captured on) it.
var castlingRightLost = map[Square]CastlingRights{
	SqE1: WhiteKingside | WhiteQueenside,
	SqH1: WhiteKingside,
	SqA1: WhiteQueenside,
	SqE8: BlackKingside | BlackQueenside,
	SqH8: BlackKingside,
	SqA8: BlackQueenside,
}

// isCastlingMove recognizes castling from context: a king moving two files.
func (p *Position) isCastlingMove(from, to Square, piece Piece) bool {
	if piece.KindOf() != King {
		return false
	}
	d := to.FileOf() - from.FileOf()
	return d == 2 || d == -2
}

// isEnPassantMove recognizes an en-passant capture from context: a pawn
// moving diagonally onto the (FEN) en-passant square while that square is
// empty.
func (p *Position) isEnPassantMove(from, to Square, piece Piece) bool {
	if piece.KindOf() != Pawn {
		return false
	}
	if to.FileOf() == from.FileOf() {
		return false
	}
	return to == p.epSquareFEN && p.board[to] == PieceNone
}

// isDoublePush recognizes a pawn's two-square opening move from context.
func (p *Position) isDoublePush(from, to Square, piece Piece) bool {
	if piece.KindOf() != Pawn {
		return false
	}
	d := to.RankOf() - from.RankOf()
	return d == 2 || d == -2
}

// Make applies move m to the position, returns nothing — the inverse
// information needed by Unmake is pushed onto the internal undo stack.
// Callers must call Unmake in strict LIFO order to restore state.
func (p *Position) Make(m Move) {
	from, to := m.From(), m.To()
	movingPiece := p.board[from]
	capturedPiece := p.board[to]

	undo := undoRecord{
		move:             m,
		capturedPiece:    PieceNone,
		priorCastling:    p.castlingRights,
		priorEpSquare:    p.epSquare,
		priorEpSquareFEN: p.epSquareFEN,
		priorHalfmove:    p.halfmoveClock,
		priorHash:        p.hash,
	}

	// clear EP state from the hash up front; it is re-derived below only
	// for a fresh double push.
	if p.epSquare != SqNone {
		p.hash ^= epFileKey(p.epSquare.FileOf())
	}
	p.hash ^= castlingKey(p.castlingRights)

	isCastling := p.isCastlingMove(from, to, movingPiece)
	isEnPassant := p.isEnPassantMove(from, to, movingPiece)
	isDoublePush := !isCastling && !isEnPassant && p.isDoublePush(from, to, movingPiece)
	undo.isCastling = isCastling
	undo.isEnPassant = isEnPassant

	switch {
	case isCastling:
		p.movePiece(from, to)
		rookSquares := castlingRookSquares[to]
		p.movePiece(rookSquares[0], rookSquares[1])
	case isEnPassant:
		p.movePiece(from, to)
		capturedSq := MakeSquare(to.FileOf(), from.RankOf())
		undo.capturedPiece = p.removePiece(capturedSq)
	default:
		if capturedPiece != PieceNone {
			undo.capturedPiece = p.removePiece(to)
		}
		p.removePiece(from)
		if m.IsPromotion() {
			p.putPiece(MakePiece(p.sideToMove, m.PromotionKind()), to)
		} else {
			p.putPiece(movingPiece, to)
		}
	}

	// castling rights: lost when a king/rook leaves, or a rook is captured
	// on, its starting square.
	p.castlingRights = p.castlingRights.Without(castlingRightLost[from])
	p.castlingRights = p.castlingRights.Without(castlingRightLost[to])

	// en-passant state.
	p.epSquare = SqNone
	p.epSquareFEN = SqNone
	if isDoublePush {
		epSq := MakeSquare(from.FileOf(), (from.RankOf()+to.RankOf())/2)
		p.epSquareFEN = epSq
		if p.epCapturable(epSq, p.sideToMove.Flip()) {
			p.epSquare = epSq
			p.hash ^= epFileKey(epSq.FileOf())
		}
	}

	p.hash ^= castlingKey(p.castlingRights)

	// clocks.
	if movingPiece.KindOf() == Pawn || capturedPiece != PieceNone || isEnPassant {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if p.sideToMove == Black {
		p.fullmoveNumber++
	}

	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobristKeys.side

	p.history = append(p.history, undo)
	p.hashHistory = append(p.hashHistory, p.hash)
}

// epCapturable reports whether an enemy pawn of color "by" sits beside the
// double-pushed pawn such that it could legally capture en passant next
// move (spec.md §4.3: "recording EP only when capturable avoids spurious
// hash divergence between transpositions").
func (p *Position) epCapturable(epSq Square, by Color) bool {
	attackers := PawnAttacks[by.Flip()][epSq] // squares a "by"-pawn could capture onto epSq from
	return attackers&p.pieceBb[by][Pawn] != 0
}

// Unmake reverses the most recent Make call.
func (p *Position) Unmake() {
	n := len(p.history) - 1
	undo := p.history[n]
	p.history = p.history[:n]
	p.hashHistory = p.hashHistory[:len(p.hashHistory)-1]

	m := undo.move
	from, to := m.From(), m.To()

	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == Black {
		p.fullmoveNumber--
	}

	movedPiece := p.board[to]

	switch {
	case undo.isCastling:
		p.removePiece(to)
		p.putPiece(MakePiece(p.sideToMove, King), from)
		rookSquares := castlingRookSquares[to]
		p.removePiece(rookSquares[1])
		p.putPiece(MakePiece(p.sideToMove, Rook), rookSquares[0])
	case undo.isEnPassant:
		p.removePiece(to)
		p.putPiece(MakePiece(p.sideToMove, Pawn), from)
		capturedSq := MakeSquare(to.FileOf(), from.RankOf())
		p.putPiece(undo.capturedPiece, capturedSq)
	default:
		p.removePiece(to)
		if m.IsPromotion() {
			p.putPiece(MakePiece(p.sideToMove, Pawn), from)
		} else {
			p.putPiece(movedPiece, from)
		}
		if undo.capturedPiece != PieceNone {
			p.putPiece(undo.capturedPiece, to)
		}
	}

	p.castlingRights = undo.priorCastling
	p.epSquare = undo.priorEpSquare
	p.epSquareFEN = undo.priorEpSquareFEN
	p.halfmoveClock = undo.priorHalfmove
	p.hash = undo.priorHash
}

// MakeNull flips the side to move without moving a piece, for null-move
// pruning (spec.md §4.7 step 5). EP is cleared per the NMP search step.
func (p *Position) MakeNull() undoRecord {
	undo := undoRecord{
		priorCastling:    p.castlingRights,
		priorEpSquare:    p.epSquare,
		priorEpSquareFEN: p.epSquareFEN,
		priorHalfmove:    p.halfmoveClock,
		priorHash:        p.hash,
	}
	if p.epSquare != SqNone {
		p.hash ^= epFileKey(p.epSquare.FileOf())
	}
	p.epSquare = SqNone
	p.epSquareFEN = SqNone
	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobristKeys.side
	return undo
}

// UnmakeNull reverses MakeNull.
func (p *Position) UnmakeNull(undo undoRecord) {
	p.sideToMove = p.sideToMove.Flip()
	p.castlingRights = undo.priorCastling
	p.epSquare = undo.priorEpSquare
	p.epSquareFEN = undo.priorEpSquareFEN
	p.halfmoveClock = undo.priorHalfmove
	p.hash = undo.priorHash
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by,
// using the attacks-from-defender method: for each enemy piece kind, OR
// together that kind's attack set from sq and intersect with the enemy's
// actual bitboard of that kind (spec.md §4.3).
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	occ := p.occupied()
	if KnightAttacks[sq]&p.pieceBb[by][Knight] != 0 {
		return true
	}
	if KingAttacks[sq]&p.pieceBb[by][King] != 0 {
		return true
	}
	if PawnAttacks[by.Flip()][sq]&p.pieceBb[by][Pawn] != 0 {
		return true
	}
	bishopsQueens := p.pieceBb[by][Bishop] | p.pieceBb[by][Queen]
	if BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pieceBb[by][Rook] | p.pieceBb[by][Queen]
	if RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.KingSquare(p.sideToMove), p.sideToMove.Flip())
}

// IsRepetition reports whether the current hash has occurred earlier in
// the game since the last irreversible move (capture or pawn push), which
// is the "twofold inside search" policy spec.md §4.7 mandates to avoid
// threefold-only blindness near the search root.
func (p *Position) IsRepetition() bool {
	n := len(p.hashHistory)
	if n < 2 {
		return false
	}
	limit := n - 1 - p.halfmoveClock
	if limit < 0 {
		limit = 0
	}
	for i := n - 3; i >= limit; i -= 2 {
		if p.hashHistory[i] == p.hash {
			return true
		}
	}
	return false
}

// HasInsufficientMaterial reports true when neither side has a pawn, rook
// or queen and each side has at most one knight or bishop: K vs K,
// K+minor vs K, and K+minor vs K+minor.
func (p *Position) HasInsufficientMaterial() bool {
	for _, c := range [2]Color{White, Black} {
		if p.pieceBb[c][Pawn]|p.pieceBb[c][Rook]|p.pieceBb[c][Queen] != 0 {
			return false
		}
		minors := p.pieceBb[c][Knight].PopCount() + p.pieceBb[c][Bishop].PopCount()
		if minors > 1 {
			return false
		}
	}
	return true
}

// DebugString dumps the full internal struct via go-spew, for diagnostics.
func (p *Position) DebugString() string {
	return spew.Sdump(p)
}
