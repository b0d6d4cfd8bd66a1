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

package config

// searchConfiguration holds the tunable search constants from spec.md §4.7.
type searchConfiguration struct {
	HashSizeMb int

	NullMoveReduction  int
	NullMoveMinDepth   int
	LmrMinMoveIndex    int
	LmrMinDepth        int
	LmrReduction       int
	TbMaxPieces        int
	NodesPerClockCheck uint64
}

func setupSearch() {
	if Settings.Search.HashSizeMb == 0 {
		Settings.Search.HashSizeMb = 64
	}
	if Settings.Search.NullMoveReduction == 0 {
		Settings.Search.NullMoveReduction = 3
	}
	if Settings.Search.NullMoveMinDepth == 0 {
		Settings.Search.NullMoveMinDepth = 3
	}
	if Settings.Search.LmrMinMoveIndex == 0 {
		Settings.Search.LmrMinMoveIndex = 3
	}
	if Settings.Search.LmrMinDepth == 0 {
		Settings.Search.LmrMinDepth = 3
	}
	if Settings.Search.LmrReduction == 0 {
		Settings.Search.LmrReduction = 2
	}
	if Settings.Search.TbMaxPieces == 0 {
		Settings.Search.TbMaxPieces = 5
	}
	if Settings.Search.NodesPerClockCheck == 0 {
		Settings.Search.NodesPerClockCheck = 2048
	}
}
