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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestStoreKillerFillsSlotZeroFirst(t *testing.T) {
	h := NewHeuristics()
	m := NewMove(SqE2, SqE4)
	h.StoreKiller(3, m)
	a, b := h.Killers(3)
	assert.Equal(t, m, a)
	assert.Equal(t, MoveNone, b)
}

func TestStoreKillerShiftsOldIntoSlotOne(t *testing.T) {
	h := NewHeuristics()
	first := NewMove(SqE2, SqE4)
	second := NewMove(SqD2, SqD4)
	h.StoreKiller(3, first)
	h.StoreKiller(3, second)
	a, b := h.Killers(3)
	assert.Equal(t, second, a)
	assert.Equal(t, first, b)
}

func TestStoreKillerRepeatDoesNotDuplicateSlotZero(t *testing.T) {
	h := NewHeuristics()
	m := NewMove(SqE2, SqE4)
	h.StoreKiller(3, m)
	h.StoreKiller(3, m)
	a, b := h.Killers(3)
	assert.Equal(t, m, a)
	assert.Equal(t, MoveNone, b)
}

func TestIsKillerMatchesEitherSlot(t *testing.T) {
	h := NewHeuristics()
	first := NewMove(SqE2, SqE4)
	second := NewMove(SqD2, SqD4)
	h.StoreKiller(3, first)
	h.StoreKiller(3, second)
	assert.True(t, h.IsKiller(3, first))
	assert.True(t, h.IsKiller(3, second))
	assert.False(t, h.IsKiller(3, NewMove(SqG1, SqF3)))
}

func TestKillersAreScopedPerPly(t *testing.T) {
	h := NewHeuristics()
	m := NewMove(SqE2, SqE4)
	h.StoreKiller(3, m)
	assert.False(t, h.IsKiller(4, m))
}

func TestHistoryBonusGrowsWithDepthSquared(t *testing.T) {
	h := NewHeuristics()
	h.AddHistory(Knight, SqF3, 4)
	assert.Equal(t, int32(16), h.HistoryScore(Knight, SqF3))
	h.AddHistory(Knight, SqF3, 4)
	assert.Equal(t, int32(32), h.HistoryScore(Knight, SqF3))
}

func TestHistorySaturatesAtCap(t *testing.T) {
	h := NewHeuristics()
	for i := 0; i < 100; i++ {
		h.AddHistory(Queen, SqD4, 50)
	}
	assert.Equal(t, int32(HistoryCap), h.HistoryScore(Queen, SqD4))
}

func TestClearResetsBothTables(t *testing.T) {
	h := NewHeuristics()
	h.StoreKiller(1, NewMove(SqE2, SqE4))
	h.AddHistory(Pawn, SqE4, 5)
	h.Clear()
	a, b := h.Killers(1)
	assert.Equal(t, MoveNone, a)
	assert.Equal(t, MoveNone, b)
	assert.Equal(t, int32(0), h.HistoryScore(Pawn, SqE4))
}
