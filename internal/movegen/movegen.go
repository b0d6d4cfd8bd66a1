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

// Package movegen generates pseudo-legal and legal moves for a position,
// and counts perft nodes for move generator validation.
package movegen

import (
	. "github.com/corvidchess/corvid/internal/attacks"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// MaxMoves bounds the number of pseudo-legal moves any chess position can
// produce; 218 is the known worst case, rounded up for headroom.
const MaxMoves = 256

// MoveList is a fixed-capacity, non-allocating container of scored moves.
// Moves are pushed in generation order and sorted by descending score for
// move ordering; the Move itself carries no score (spec.md's 16-bit
// encoding has no room for one), so scores live in a parallel array.
type MoveList struct {
	moves  [MaxMoves]Move
	scores [MaxMoves]int32
	n      int
}

// Clear empties the list without releasing its backing array.
func (l *MoveList) Clear() { l.n = 0 }

// Len returns the number of moves currently held.
func (l *MoveList) Len() int { return l.n }

// At returns the i'th move.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// ScoreAt returns the i'th move's ordering score.
func (l *MoveList) ScoreAt(i int) int32 { return l.scores[i] }

// Add appends a move with its ordering score. Silently drops the move if
// the list is already at MaxMoves capacity, which cannot happen for any
// legal chess position.
func (l *MoveList) Add(m Move, score int32) {
	if l.n >= MaxMoves {
		return
	}
	l.moves[l.n] = m
	l.scores[l.n] = score
	l.n++
}

// Sort orders the list by descending score using insertion sort, which is
// faster than a general-purpose sort for the short lists (rarely over 40
// moves) move generation produces.
func (l *MoveList) Sort() {
	for i := 1; i < l.n; i++ {
		m, s := l.moves[i], l.scores[i]
		j := i - 1
		for j >= 0 && l.scores[j] < s {
			l.moves[j+1] = l.moves[j]
			l.scores[j+1] = l.scores[j]
			j--
		}
		l.moves[j+1] = m
		l.scores[j+1] = s
	}
}

// Move-ordering score bands, highest first: every capture, scored by
// MVV-LVA, sits above every quiet move. Without static exchange
// evaluation, losing captures are not told apart from good ones.
const (
	scoreCapture = 1_000_000
	scoreQuiet   = 0
)

func pawnPushDirection(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

func pawnPromotionRankBb(c Color) Bitboard {
	if c == White {
		return Rank8Bb
	}
	return Rank1Bb
}

// pieceValue is used only for MVV-LVA move-ordering scores, not evaluation.
var pieceValue = [PieceKindLength]int32{100, 320, 330, 500, 900, 20000}

// GeneratePseudoLegal fills list with every pseudo-legal move for the side
// to move: moves that obey piece movement rules but may leave the mover's
// own king in check.
func GeneratePseudoLegal(p *position.Position, list *MoveList) {
	list.Clear()
	generatePawnMoves(p, list)
	generateKnightMoves(p, list)
	generateSliderMoves(p, list, Bishop)
	generateSliderMoves(p, list, Rook)
	generateSliderMoves(p, list, Queen)
	generateKingMoves(p, list)
	generateCastling(p, list)
}

// GenerateLegal fills list with every legal move: each pseudo-legal move is
// played, checked for leaving the mover's own king attacked, and unmade
// (spec.md §4.4's make/attacked-check/unmake legality filter).
func GenerateLegal(p *position.Position, list *MoveList) {
	var pseudo MoveList
	GeneratePseudoLegal(p, &pseudo)
	list.Clear()
	mover := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.Make(m)
		legal := !p.IsSquareAttacked(p.KingSquare(mover), mover.Flip())
		p.Unmake()
		if legal {
			list.Add(m, pseudo.ScoreAt(i))
		}
	}
	list.Sort()
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without generating (or scoring) the full list.
func HasLegalMove(p *position.Position) bool {
	var pseudo MoveList
	GeneratePseudoLegal(p, &pseudo)
	mover := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.Make(m)
		legal := !p.IsSquareAttacked(p.KingSquare(mover), mover.Flip())
		p.Unmake()
		if legal {
			return true
		}
	}
	return false
}

// IsLegalMove reports whether m leaves the mover's own king unattacked, by
// actually making and unmaking it. m must be pseudo-legal; it is not checked
// against the piece movement rules. Used by the UCI "position ... moves"
// command, after matching the move against the pseudo-legal list, to
// validate externally supplied moves.
func IsLegalMove(p *position.Position, m Move) bool {
	mover := p.SideToMove()
	p.Make(m)
	legal := !p.IsSquareAttacked(p.KingSquare(mover), mover.Flip())
	p.Unmake()
	return legal
}

func generatePawnMoves(p *position.Position, list *MoveList) {
	us := p.SideToMove()
	them := us.Flip()
	dir := pawnPushDirection(us)
	pawns := p.PiecesBb(us, Pawn)
	enemy := p.OccupiedBy(them)
	occ := p.OccupiedAll()
	promoRank := pawnPromotionRankBb(us)

	for _, capDir := range [2]Direction{West, East} {
		fullDir := dir + capDir
		targets := shift(pawns, fullDir) & enemy
		promoTargets := targets & promoRank
		for promoTargets != 0 {
			var to Square
			to, promoTargets = promoTargets.PopLsb()
			from := to.To(-fullDir)
			addPromotions(list, from, to, p.PieceAt(to))
		}
		plainTargets := targets &^ promoRank
		for plainTargets != 0 {
			var to Square
			to, plainTargets = plainTargets.PopLsb()
			from := to.To(-fullDir)
			list.Add(NewMove(from, to), scoreCapture+captureGain(p, to)-pieceValue[Pawn])
		}
	}

	ep := p.EpSquare()
	if ep != SqNone {
		for _, capDir := range [2]Direction{West, East} {
			fullDir := dir + capDir
			from := ep.To(-fullDir)
			if from != SqNone && p.PieceAt(from) == MakePiece(us, Pawn) {
				list.Add(NewMove(from, ep), scoreCapture+100)
			}
		}
	}

	single := shift(pawns, dir) &^ occ
	promoSingle := single & promoRank
	for promoSingle != 0 {
		var to Square
		to, promoSingle = promoSingle.PopLsb()
		from := to.To(-dir)
		addPromotions(list, from, to, PieceNone)
	}
	plainSingle := single &^ promoRank
	for plainSingle != 0 {
		var to Square
		to, plainSingle = plainSingle.PopLsb()
		from := to.To(-dir)
		list.Add(NewMove(from, to), scoreQuiet)
	}

	double := doublePushTargets(single, us, occ)
	for double != 0 {
		var to Square
		to, double = double.PopLsb()
		from := to.To(-dir).To(-dir)
		list.Add(NewMove(from, to), scoreQuiet)
	}
}

// doublePushTargets takes the squares reachable by a single pawn push
// (already filtered to empty squares) and advances one more step, but only
// for pawns that landed on the third/sixth rank — i.e. started on their
// own second/seventh rank, the only pawns allowed a double push.
func doublePushTargets(single Bitboard, us Color, occ Bitboard) Bitboard {
	dir := pawnPushDirection(us)
	thirdRank := Rank3Bb
	if us == Black {
		thirdRank = Rank6Bb
	}
	return shift(single&thirdRank, dir) &^ occ
}

// shift moves every bit of b one step in direction d, discarding bits that
// would wrap around a file edge.
func shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Northwest:
		return (b &^ FileABb) << 7
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	default:
		return 0
	}
}

func addPromotions(list *MoveList, from, to Square, captured Piece) {
	gain := int32(0)
	if captured != PieceNone {
		gain = pieceValue[captured.KindOf()]
	}
	list.Add(NewPromotionMove(from, to, Queen), scoreCapture+gain+pieceValue[Queen])
	list.Add(NewPromotionMove(from, to, Knight), scoreCapture+gain+pieceValue[Knight])
	list.Add(NewPromotionMove(from, to, Rook), scoreCapture+gain+pieceValue[Rook]-2000)
	list.Add(NewPromotionMove(from, to, Bishop), scoreCapture+gain+pieceValue[Bishop]-2000)
}

func captureGain(p *position.Position, to Square) int32 {
	captured := p.PieceAt(to)
	if captured == PieceNone {
		return 0
	}
	return pieceValue[captured.KindOf()]
}

func generateKnightMoves(p *position.Position, list *MoveList) {
	us := p.SideToMove()
	own := p.OccupiedBy(us)
	enemy := p.OccupiedBy(us.Flip())
	knights := p.PiecesBb(us, Knight)
	for knights != 0 {
		var from Square
		from, knights = knights.PopLsb()
		targets := KnightAttacks[from] &^ own
		captures := targets & enemy
		quiets := targets &^ enemy
		for captures != 0 {
			var to Square
			to, captures = captures.PopLsb()
			list.Add(NewMove(from, to), scoreCapture+captureGain(p, to)-pieceValue[Knight])
		}
		for quiets != 0 {
			var to Square
			to, quiets = quiets.PopLsb()
			list.Add(NewMove(from, to), scoreQuiet)
		}
	}
}

func generateSliderMoves(p *position.Position, list *MoveList, kind PieceKind) {
	us := p.SideToMove()
	own := p.OccupiedBy(us)
	enemy := p.OccupiedBy(us.Flip())
	occ := p.OccupiedAll()
	pieces := p.PiecesBb(us, kind)
	for pieces != 0 {
		var from Square
		from, pieces = pieces.PopLsb()
		var attacks Bitboard
		switch kind {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		default:
			attacks = QueenAttacks(from, occ)
		}
		targets := attacks &^ own
		captures := targets & enemy
		quiets := targets &^ enemy
		for captures != 0 {
			var to Square
			to, captures = captures.PopLsb()
			list.Add(NewMove(from, to), scoreCapture+captureGain(p, to)-pieceValue[kind])
		}
		for quiets != 0 {
			var to Square
			to, quiets = quiets.PopLsb()
			list.Add(NewMove(from, to), scoreQuiet)
		}
	}
}

func generateKingMoves(p *position.Position, list *MoveList) {
	us := p.SideToMove()
	own := p.OccupiedBy(us)
	enemy := p.OccupiedBy(us.Flip())
	from := p.KingSquare(us)
	targets := KingAttacks[from] &^ own
	captures := targets & enemy
	quiets := targets &^ enemy
	for captures != 0 {
		var to Square
		to, captures = captures.PopLsb()
		list.Add(NewMove(from, to), scoreCapture+captureGain(p, to)-pieceValue[King])
	}
	for quiets != 0 {
		var to Square
		to, quiets = quiets.PopLsb()
		list.Add(NewMove(from, to), scoreQuiet)
	}
}

// castlingSquares names, per right, the king's from/to squares and the
// squares that must be unoccupied and the squares that must be unattacked
// for the move to be pseudo-legally offered (the king's own square is
// covered separately by generateCastling's InCheck test).
var castlingSquares = map[CastlingRights]struct {
	kingFrom, kingTo, rookFrom Square
	mustBeEmpty                Bitboard
	mustNotBeAttacked          [2]Square
}{
	WhiteKingside:  {SqE1, SqG1, SqH1, SqBb(SqF1) | SqBb(SqG1), [2]Square{SqF1, SqG1}},
	WhiteQueenside: {SqE1, SqC1, SqA1, SqBb(SqB1) | SqBb(SqC1) | SqBb(SqD1), [2]Square{SqD1, SqC1}},
	BlackKingside:  {SqE8, SqG8, SqH8, SqBb(SqF8) | SqBb(SqG8), [2]Square{SqF8, SqG8}},
	BlackQueenside: {SqE8, SqC8, SqA8, SqBb(SqB8) | SqBb(SqC8) | SqBb(SqD8), [2]Square{SqD8, SqC8}},
}

func generateCastling(p *position.Position, list *MoveList) {
	us := p.SideToMove()
	rights := p.CastlingRights()
	if rights == NoCastling {
		return
	}
	if p.InCheck() {
		return
	}
	occ := p.OccupiedAll()

	kingside, queenside := WhiteKingside, WhiteQueenside
	if us == Black {
		kingside, queenside = BlackKingside, BlackQueenside
	}
	for _, right := range [2]CastlingRights{kingside, queenside} {
		if !rights.Has(right) {
			continue
		}
		info := castlingSquares[right]
		if occ&info.mustBeEmpty != 0 {
			continue
		}
		if p.PieceAt(info.rookFrom) != MakePiece(us, Rook) {
			continue
		}
		passesThroughCheck := false
		for _, sq := range info.mustNotBeAttacked {
			if p.IsSquareAttacked(sq, us.Flip()) {
				passesThroughCheck = true
				break
			}
		}
		if passesThroughCheck {
			continue
		}
		list.Add(NewMove(info.kingFrom, info.kingTo), scoreQuiet-5000)
	}
}
