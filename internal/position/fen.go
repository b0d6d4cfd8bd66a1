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
	"fmt"
	"strconv"
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

// FromFEN parses a Forsyth-Edwards string into a fresh Position.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: need at least 4 fields, got %d: %q", len(fields), fen)
	}

	p := &Position{}
	for i := range p.board {
		p.board[i] = PieceNone
	}
	p.history = make([]undoRecord, 0, 256)
	p.hashHistory = make([]Key, 0, 256)

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: board must have 8 ranks, got %d: %q", len(ranks), fields[0])
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := PieceFromChar(byte(ch))
			if !ok {
				return nil, fmt.Errorf("fen: invalid piece char %q in %q", ch, fields[0])
			}
			if file > 7 {
				return nil, fmt.Errorf("fen: rank %q overflows the board", rankStr)
			}
			p.putPiece(piece, MakeSquare(file, rank))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("fen: rank %q does not sum to 8 files", rankStr)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
		p.hash ^= zobristKeys.side
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	p.castlingRights = NoCastling
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights |= WhiteKingside
			case 'Q':
				p.castlingRights |= WhiteQueenside
			case 'k':
				p.castlingRights |= BlackKingside
			case 'q':
				p.castlingRights |= BlackQueenside
			default:
				return nil, fmt.Errorf("fen: invalid castling char %q", ch)
			}
		}
	}
	p.hash ^= castlingKey(p.castlingRights)

	p.epSquare = SqNone
	p.epSquareFEN = SqNone
	if fields[3] != "-" {
		sq, ok := SquareFromString(fields[3])
		if !ok {
			return nil, fmt.Errorf("fen: invalid en-passant square %q", fields[3])
		}
		p.epSquareFEN = sq
		if p.epCapturable(sq, p.sideToMove) {
			p.epSquare = sq
			p.hash ^= epFileKey(sq.FileOf())
		}
	}

	p.halfmoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
		}
		p.halfmoveClock = n
	}

	p.fullmoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
		}
		p.fullmoveNumber = n
	}

	p.hashHistory = append(p.hashHistory, p.hash)

	return p, nil
}

// ToFEN renders the position as a Forsyth-Edwards string.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.board[MakeSquare(file, rank)]
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	if p.epSquareFEN == SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.epSquareFEN.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

// String renders the FEN, used for logging.
func (p *Position) String() string {
	return p.ToFEN()
}
