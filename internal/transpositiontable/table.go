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

// Package transpositiontable implements a fixed-size hash table of search
// results keyed by Zobrist hash, used to prune repeated subtrees across
// iterative-deepening iterations and transposing move orders.
// Table is not safe for concurrent use; Resize and Clear must not be
// called while a search holding a reference to the table is running.
package transpositiontable

import (
	"math"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// MaxSizeInMB bounds how large a single Table may be resized to.
const MaxSizeInMB = 65_536

const mb = 1024 * 1024

// Stats counts Table activity for UCI "info string" reporting and tests.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// Table is a single-slot-per-index transposition table.
type Table struct {
	log         *logging.Logger
	data        []Entry
	sizeInBytes uint64
	indexMask   uint64
	age         uint8
	Stats       Stats
}

// NewTable creates a Table sized to the largest power-of-two entry count
// that fits within sizeInMB megabytes.
func NewTable(sizeInMB int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeInMB)
	return t
}

// Resize changes the table's capacity, discarding all entries.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB > MaxSizeInMB {
		t.log.Warning(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMB, MaxSizeInMB))
		sizeInMB = MaxSizeInMB
	}
	if sizeInMB < 0 {
		sizeInMB = 0
	}

	budget := uint64(sizeInMB) * mb
	var entries uint64
	if budget >= EntrySize {
		entries = uint64(1) << uint(math.Floor(math.Log2(float64(budget/EntrySize))))
	}

	t.sizeInBytes = entries * EntrySize
	t.indexMask = entries - 1 // entries is a power of two, or 0
	t.data = make([]Entry, entries)
	t.age = 0
	t.Stats = Stats{}

	t.log.Info(out.Sprintf("transposition table resized to %d MB, %d entries (%d bytes each)",
		t.sizeInBytes/mb, entries, EntrySize))
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.indexMask
}

// NewSearch bumps the table's age. Called once per "go" command so Put can
// tell this iteration's entries apart from a previous search's leftovers.
func (t *Table) NewSearch() {
	t.age++
}

// Clear empties every slot without changing capacity.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.Stats = Stats{}
}

// Probe looks up key, applying mate-distance normalization for ply. It
// returns (entry, true) on a hit or a zero Entry and false on a miss or
// when the table has zero capacity.
func (t *Table) Probe(key Key, ply int) (Entry, bool) {
	t.Stats.Probes++
	if len(t.data) == 0 {
		t.Stats.Misses++
		return Entry{}, false
	}
	e := t.data[t.index(key)]
	if e.key != key {
		t.Stats.Misses++
		return Entry{}, false
	}
	t.Stats.Hits++
	e.score = int16(adjustScoreForProbe(Value(e.score), ply))
	return e, true
}

// Put stores a search result, applying mate-distance normalization for
// ply before persisting. Replacement policy: an empty slot or a matching
// key is always written. A colliding key is overwritten when the new
// depth is greater, when the existing entry is from a stale search
// generation, or when depths tie and the existing entry isn't an exact
// bound being displaced by a non-exact one.
func (t *Table) Put(key Key, move Move, score Value, depth int, bound Bound, ply int) {
	if len(t.data) == 0 {
		return
	}
	t.Stats.Puts++

	stored := adjustScoreForStore(score, ply)
	slot := &t.data[t.index(key)]

	switch {
	case slot.isEmpty():
		// fresh slot
	case slot.key == key:
		t.Stats.Updates++
	default:
		t.Stats.Collisions++
		tieBreak := depth == slot.Depth() && !(slot.Bound() == BoundExact && bound != BoundExact)
		replace := depth > slot.Depth() || tieBreak || slot.Age() != t.age
		if !replace {
			return
		}
		t.Stats.Overwrites++
	}

	slot.key = key
	slot.move = move
	slot.score = int16(stored)
	slot.meta = packMeta(depth, bound, t.age)
}

// adjustScoreForStore converts a node-relative score (mate distance
// measured from the current search node) into a root-relative score
// suitable for storage, since the slot may be probed again from a
// different ply by a transposing move order.
func adjustScoreForStore(score Value, ply int) Value {
	switch {
	case score >= MateThreshold:
		return score - Value(ply)
	case score <= -MateThreshold:
		return score + Value(ply)
	default:
		return score
	}
}

// adjustScoreForProbe reverses adjustScoreForStore relative to the
// probing node's ply.
func adjustScoreForProbe(score Value, ply int) Value {
	switch {
	case score >= MateThreshold:
		return score + Value(ply)
	case score <= -MateThreshold:
		return score - Value(ply)
	default:
		return score
	}
}

// Hashfull returns table occupancy in permille, as reported by UCI's
// "info hashfull".
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	filled := 0
	// UCI only requires an estimate; a fixed sample keeps this cheap on
	// very large tables.
	sample := len(t.data)
	if sample > 1000 {
		sample = 1000
	}
	for i := 0; i < sample; i++ {
		if !t.data[i].isEmpty() {
			filled++
		}
	}
	return filled * 1000 / sample
}

// Len returns the number of slots in the table.
func (t *Table) Len() int { return len(t.data) }
