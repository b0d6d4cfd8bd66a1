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

import "strconv"

// Value is a centipawn (or mate-distance) search/eval score.
type Value int32

// Score pairs a midgame and endgame value for tapered evaluation.
type Score struct {
	Mg Value
	Eg Value
}

// Add returns the element-wise sum of two scores.
func (s Score) Add(o Score) Score {
	return Score{s.Mg + o.Mg, s.Eg + o.Eg}
}

// Sub returns the element-wise difference of two scores.
func (s Score) Sub(o Score) Score {
	return Score{s.Mg - o.Mg, s.Eg - o.Eg}
}

// Negate flips the sign of both components.
func (s Score) Negate() Score {
	return Score{-s.Mg, -s.Eg}
}

// Taper blends mg/eg by phase (0..24, 24 = full material).
func (s Score) Taper(phase int) Value {
	if phase > 24 {
		phase = 24
	}
	if phase < 0 {
		phase = 0
	}
	return (s.Mg*Value(phase) + s.Eg*Value(24-phase)) / 24
}

// IsMate reports whether v represents a forced mate rather than a
// material/positional evaluation.
func (v Value) IsMate() bool {
	return v >= MateThreshold || v <= -MateThreshold
}

// String renders v the way UCI's "info score" wants it: "mate N" (N full
// moves to mate, negative if being mated) for a forced mate, "cp N"
// otherwise.
func (v Value) String() string {
	if !v.IsMate() {
		return "cp " + strconv.Itoa(int(v))
	}
	plies := Mate - v
	sign := ""
	if v < 0 {
		plies = Mate + v
		sign = "-"
	}
	moves := (int(plies) + 1) / 2
	return "mate " + sign + strconv.Itoa(moves)
}

// Key is a 64-bit Zobrist hash.
type Key uint64
