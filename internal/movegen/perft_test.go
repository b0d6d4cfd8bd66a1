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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/position"
)

func TestPerftStartPosition(t *testing.T) {
	p := position.NewPosition()
	want := []uint64{1, 20, 400, 8902, 197281}
	pf := NewPerft()
	for depth, expected := range want {
		if depth == 0 {
			continue
		}
		got := pf.Run(p, depth)
		assert.Equal(t, expected, got, "perft(%d) from startpos", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	want := map[int]uint64{1: 48, 2: 2039, 3: 97862}
	pf := NewPerft()
	for depth, expected := range want {
		got := pf.Run(p, depth)
		assert.Equal(t, expected, got, "perft(%d) from kiwipete", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	p, err := position.FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	want := map[int]uint64{1: 14, 2: 191, 3: 2812}
	pf := NewPerft()
	for depth, expected := range want {
		got := pf.Run(p, depth)
		assert.Equal(t, expected, got, "perft(%d) from position 3", depth)
	}
}

func TestPerftCountsCapturesAndEnPassant(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	pf := NewPerft()
	pf.Run(p, 1)
	assert.Equal(t, uint64(1), pf.EnpassantCounter)
	assert.Equal(t, uint64(1), pf.CaptureCounter)
}
