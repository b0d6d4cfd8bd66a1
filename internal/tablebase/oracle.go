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

// Package tablebase bridges the search's internal position representation
// to an external endgame-tablebase oracle, keyed by FEN since that's the
// portable exchange format every WDL probing backend understands.
package tablebase

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// WDL is the win/draw/loss classification a tablebase probe returns, from
// the point of view of the side to move.
type WDL int8

const (
	Unavailable WDL = iota
	Loss
	BlessedLoss
	Draw
	CursedWin
	Win
)

func (w WDL) String() string {
	switch w {
	case Loss:
		return "loss"
	case BlessedLoss:
		return "blessed-loss"
	case Draw:
		return "draw"
	case CursedWin:
		return "cursed-win"
	case Win:
		return "win"
	default:
		return "unavailable"
	}
}

// Score maps a WDL classification to the search score spec.md §4.7 step 4
// assigns it: decisive results are scored as a near-mate, draws as zero,
// and the 50-move-rule-limited "cursed"/"blessed" results as a small
// nonzero nudge: a cursed win scores just above a genuine draw and a
// blessed loss just below it.
func (w WDL) Score() Value {
	switch w {
	case Win:
		return 20000
	case Loss:
		return -20000
	case CursedWin:
		return 100
	case BlessedLoss:
		return -100
	default:
		return 0
	}
}

// Result is one tablebase probe outcome.
type Result struct {
	WDL WDL
}

// Oracle answers WDL probes for a FEN-encoded position. Implementations
// must be safe for concurrent use by multiple goroutines.
type Oracle interface {
	ProbeWDL(fen string) (Result, error)
}

// NullOracle always reports Unavailable, used when no tablebase path has
// been configured so callers never need a nil check.
type NullOracle struct{}

// NewNullOracle creates a NullOracle.
func NewNullOracle() *NullOracle {
	return &NullOracle{}
}

// ProbeWDL always returns Unavailable, nil.
func (NullOracle) ProbeWDL(string) (Result, error) {
	return Result{WDL: Unavailable}, nil
}
