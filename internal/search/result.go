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

package search

import (
	"time"

	. "github.com/corvidchess/corvid/internal/types"
)

// Info is emitted once per completed iteration so a UCI front-end can
// report "info depth ... score ... nodes ... time ... nps ... pv ...".
// Score.String() renders the UCI "cp N" / "mate N" form directly.
type Info struct {
	Depth    int
	SelDepth int
	Score    Value
	Nodes    uint64
	Nps      uint64
	Time     time.Duration
	PV       []Move
}

// Result is the outcome of a completed (or stopped) search.
type Result struct {
	BestMove   Move
	PonderMove Move
	Score      Value
	Depth      int
	Nodes      uint64
	Time       time.Duration
}
