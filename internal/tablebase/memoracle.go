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

package tablebase

import "sync"

// MemOracle is a fixed, in-memory FEN-to-WDL map, used to drive
// deterministic tablebase-probe scenarios in tests without shipping real
// Syzygy files.
type MemOracle struct {
	mu      sync.RWMutex
	results map[string]Result
	probes  int
}

// NewMemOracle creates a MemOracle from a FEN-keyed result table.
func NewMemOracle(results map[string]Result) *MemOracle {
	m := &MemOracle{results: make(map[string]Result, len(results))}
	for k, v := range results {
		m.results[k] = v
	}
	return m
}

// ProbeWDL returns the configured result for fen, or Unavailable if fen
// wasn't registered.
func (m *MemOracle) ProbeWDL(fen string) (Result, error) {
	m.mu.Lock()
	m.probes++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[fen]; ok {
		return r, nil
	}
	return Result{WDL: Unavailable}, nil
}

// Probes returns how many times ProbeWDL has been called, for asserting
// that the bridge's singleflight dedup actually collapsed concurrent
// callers into one oracle call.
func (m *MemOracle) Probes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.probes
}
