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

package attacks

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// magic holds the fancy-magic bitboard data for a single square of a
// single slider piece kind.
// Approach and the seeded-PRNG magic search are taken from the public
// domain Stockfish "fancy magic bitboards" technique; see
// https://www.chessprogramming.org/Magic_Bitboards.
type magic struct {
	mask    Bitboard
	magic   Bitboard
	attacks []Bitboard
	shift   uint
}

func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.magic
	return uint(occ >> m.shift)
}

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// magicSeeds are the deterministic per-rank PRNG seeds for the magic
// search, the values Stockfish ships (chosen empirically to find a valid
// magic in the fewest tries); using fixed seeds for both rook and bishop
// tables guarantees every process derives identical magics.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// initMagics computes the magic numbers and attack tables for every square
// for one slider piece (rook or bishop), returning the backing table that
// every per-square magic.attacks slice is a window into.
func initMagics(magics *[SqLength]magic, directions *[4]Direction, seeds []uint64) []Bitboard {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	// Fixed per-square slot of 4096 comfortably covers the largest possible
	// relevant-occupancy subset count (a rook mask has at most 12 relevant
	// bits, 2^12 = 4096); slices are carved out below and never reallocated,
	// so every magic.attacks window stays valid for the table's lifetime.
	const perSquare = 4096
	table := make([]Bitboard, SqLength*perSquare)

	for sq := SqA1; sq < SqLength; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ RankBb(sq.RankOf())) | ((FileABb | FileHBb) &^ FileBb(sq.FileOf()))

		m := &magics[sq]
		m.mask = slidingAttacks(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		offset := int(sq) * perSquare

		size := 0
		var b Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttacks(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		m.attacks = table[offset : offset+size]

		rng := newXorshift(seeds[sq.RankOf()])
		cnt := 0
		for i := 0; i < size; {
			for {
				m.magic = Bitboard(rng.sparse())
				if ((m.mask * m.magic) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
	return table
}

// slidingAttacks computes the attack set along the given ray directions
// from sq, stopping at (and including) the first occupied square. Only
// used during table initialization, not on any search hot path.
func slidingAttacks(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attack = attack.Set(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// xorshift is the xorshift64star PRNG (Vigna, public domain), used only to
// deterministically search for magic numbers at init time.
type xorshift struct{ s uint64 }

func newXorshift(seed uint64) *xorshift {
	return &xorshift{s: seed}
}

func (r *xorshift) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse ANDs three draws together to bias toward sparse bit patterns,
// which empirically yields valid magics faster.
func (r *xorshift) sparse() uint64 {
	return r.next() & r.next() & r.next()
}
