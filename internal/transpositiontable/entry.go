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

package transpositiontable

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// EntrySize is the in-memory size in bytes of one Entry, used by Table's
// capacity calculation.
const EntrySize = 16

const (
	depthMask  = uint32(0x0000_00FF)
	boundShift = 8
	boundMask  = uint32(0x0000_0300)
	ageShift   = 10
	ageMask    = uint32(0x0003_FC00)
)

// Entry is one transposition table slot: a Zobrist key, the best move
// found at that position, its search score, the depth it was searched
// to, the kind of bound the score represents, and the search generation
// it was last written in. An empty slot has key == 0 and Bound() ==
// BoundNone.
type Entry struct {
	key   Key
	move  Move
	score int16
	meta  uint32 // depth:8 | bound:2 | age:8
}

func packMeta(depth int, bound Bound, age uint8) uint32 {
	return uint32(uint8(depth)) | uint32(bound)<<boundShift | uint32(age)<<ageShift
}

// Key returns the entry's Zobrist key. Zero means the slot is empty.
func (e *Entry) Key() Key { return e.key }

// Move returns the best move stored for this position, or MoveNone.
func (e *Entry) Move() Move { return e.move }

// Score returns the entry's score. An Entry returned by Table.Probe
// already has its mate distance adjusted for the probing ply.
func (e *Entry) Score() Value { return Value(e.score) }

// Depth returns the search depth the entry was stored at.
func (e *Entry) Depth() int { return int(e.meta & depthMask) }

// Bound reports whether Score is exact or a one-sided cutoff bound.
func (e *Entry) Bound() Bound { return Bound((e.meta & boundMask) >> boundShift) }

// Age returns the search generation the entry was last written in.
func (e *Entry) Age() uint8 { return uint8((e.meta & ageMask) >> ageShift) }

func (e *Entry) isEmpty() bool {
	return e.key == 0 && e.Bound() == BoundNone
}
