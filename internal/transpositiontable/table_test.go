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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestResizeIsPowerOfTwoEntries(t *testing.T) {
	tt := NewTable(1)
	require.Greater(t, tt.Len(), 0)
	assert.Equal(t, 0, tt.Len()&(tt.Len()-1), "entry count must be a power of two")
}

func TestPutAndProbeRoundTrip(t *testing.T) {
	tt := NewTable(1)
	key := Key(0xDEADBEEFCAFEBABE)
	move := NewMove(SqE2, SqE4)
	tt.Put(key, move, 123, 6, BoundExact, 0)

	e, ok := tt.Probe(key, 0)
	require.True(t, ok)
	assert.Equal(t, move, e.Move())
	assert.Equal(t, Value(123), e.Score())
	assert.Equal(t, 6, e.Depth())
	assert.Equal(t, BoundExact, e.Bound())
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := NewTable(1)
	_, ok := tt.Probe(Key(12345), 0)
	assert.False(t, ok)
}

func TestZeroSizeTableNeverStores(t *testing.T) {
	tt := NewTable(0)
	assert.Equal(t, 0, tt.Len())
	tt.Put(Key(1), MoveNone, 0, 1, BoundExact, 0)
	_, ok := tt.Probe(Key(1), 0)
	assert.False(t, ok)
}

func TestShallowerDepthDoesNotReplaceDeeperOnCollision(t *testing.T) {
	tt := NewTable(1)
	// force a collision by using the same index mask bits; with a 1MB
	// table only the low bits of the key matter, so two keys differing
	// only in high bits collide.
	key1 := Key(1)
	key2 := Key(1) | (Key(1) << 40)

	tt.Put(key1, MoveNone, 10, 8, BoundExact, 0)
	tt.Put(key2, MoveNone, 20, 2, BoundExact, 0)

	e, ok := tt.Probe(key1, 0)
	require.True(t, ok, "deeper entry for key1 should still be present")
	assert.Equal(t, Value(10), e.Score())
}

func TestNewSearchAllowsShallowerOverwrite(t *testing.T) {
	tt := NewTable(1)
	key1 := Key(1)
	key2 := Key(1) | (Key(1) << 40)

	tt.Put(key1, MoveNone, 10, 8, BoundExact, 0)
	tt.NewSearch()
	tt.Put(key2, MoveNone, 20, 2, BoundExact, 0)

	e, ok := tt.Probe(key2, 0)
	require.True(t, ok, "a new search generation may evict an old deeper entry")
	assert.Equal(t, Value(20), e.Score())
}

func TestClearEmptiesAllSlots(t *testing.T) {
	tt := NewTable(1)
	tt.Put(Key(7), MoveNone, 1, 1, BoundExact, 0)
	tt.Clear()
	_, ok := tt.Probe(Key(7), 0)
	assert.False(t, ok)
}

func TestMateScoreNormalizedAcrossDifferentProbePly(t *testing.T) {
	tt := NewTable(1)
	key := Key(99)
	// A mate-in-3-from-this-node score, stored while 5 plies deep.
	storeP1y := 5
	score := Mate - 3
	tt.Put(key, MoveNone, score, 10, BoundExact, storeP1y)

	// Probed again from the same ply: round-trips exactly.
	e, ok := tt.Probe(key, storeP1y)
	require.True(t, ok)
	assert.Equal(t, score, e.Score())

	// Probed from a shallower ply (2): the normalized root-relative score
	// is shifted back out to be relative to the new, shallower node.
	e2, ok := tt.Probe(key, 2)
	require.True(t, ok)
	assert.NotEqual(t, e.Score(), e2.Score())
}
