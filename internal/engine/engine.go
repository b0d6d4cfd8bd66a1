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

// Package engine is a thin, protocol-shaped adapter over internal/search:
// it tokenizes and dispatches the UCI command surface spec.md §6 names,
// without reading stdin itself. Reading the protocol stream is left to a
// front-end (cmd/corvid's bufio.Scanner loop); HandleCommand and Go are
// the only entry points this repo exposes, per spec.md §1's "the core
// only exposes the entry points it needs".
package engine

import (
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
)

// name and author are reported in response to the "uci" command.
const (
	name   = "corvid"
	author = "the corvid authors"
)

// Engine owns the single position and search instance a UCI session
// drives. It is not safe for concurrent HandleCommand calls; Go is meant
// to be called from its own goroutine while Stop is called from another.
type Engine struct {
	pos    *position.Position
	search *search.Search

	syzygyPath string
}

// New creates an Engine with a 64MB transposition table and the starting
// position loaded.
func New() *Engine {
	return &Engine{
		pos:    position.NewPosition(),
		search: search.NewSearch(64),
	}
}

// HandleCommand tokenizes and dispatches a single line of the UCI
// protocol, returning the synchronous reply lines it produces. "go" is
// handled asynchronously by the caller via Go instead, since a search can
// run arbitrarily long; HandleCommand returns no lines for it.
func (e *Engine) HandleCommand(line string) []string {
	log := logging.GetLog()
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "uci":
		return []string{
			"id name " + name,
			"id author " + author,
			"option name Hash type spin default 64 min 1 max 4096",
			"option name SyzygyPath type string default <empty>",
			"uciok",
		}
	case "isready":
		return []string{"readyok"}
	case "ucinewgame":
		e.search.NewGame()
		return nil
	case "setoption":
		e.setOption(fields)
		return nil
	case "position":
		if err := e.setPosition(fields); err != nil {
			log.Warningf("position command malformed: %v", err)
		}
		return nil
	case "stop":
		e.search.Stop()
		return nil
	case "quit":
		return nil
	default:
		log.Warningf("unknown command: %s", line)
		return nil
	}
}

// Go runs a search on the current position under limits, streaming an
// Info line to infoCh after every completed iteration (infoCh may be
// nil), and returns once the search has produced its final result. It is
// the asynchronous counterpart of a UCI "go" command.
func (e *Engine) Go(limits search.Limits, infoCh chan<- search.Info) search.Result {
	if infoCh != nil {
		e.search.SetInfoFunc(func(info search.Info) {
			infoCh <- info
		})
		defer e.search.SetInfoFunc(nil)
	}
	return e.search.Run(e.pos, limits)
}

// Stop requests that a running Go call return as soon as possible.
func (e *Engine) Stop() {
	e.search.Stop()
}

// setOption handles "setoption name <name> value <value>" for the two
// options advertised by the "uci" response.
func (e *Engine) setOption(fields []string) {
	log := logging.GetLog()
	if len(fields) < 4 || fields[1] != "name" {
		log.Warning("setoption command malformed")
		return
	}
	optName := fields[2]
	var value string
	if len(fields) >= 5 && fields[3] == "value" {
		value = strings.Join(fields[4:], " ")
	}

	switch optName {
	case "Hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			log.Warningf("setoption Hash: not a number: %s", value)
			return
		}
		e.search.ResizeHash(mb)
	case "SyzygyPath":
		// Recorded for UCI compatibility; this engine has no tablebase
		// file reader (spec.md Non-goal "no tablebase file I/O"), so the
		// search keeps probing its configured tablebase.Oracle (a null
		// oracle unless a test or embedder called SetTablebase directly)
		// regardless of this path.
		e.syzygyPath = value
	default:
		log.Warningf("setoption: unknown option %s", optName)
	}
}

// setPosition applies a "position [startpos|fen <fen>] [moves ...]"
// command, replacing the current position.
func (e *Engine) setPosition(fields []string) error {
	if len(fields) < 2 {
		return errMalformed("position")
	}

	i := 1
	var p *position.Position
	var err error
	switch fields[i] {
	case "startpos":
		p = position.NewPosition()
		i++
	case "fen":
		i++
		start := i
		for i < len(fields) && fields[i] != "moves" {
			i++
		}
		p, err = position.FromFEN(strings.Join(fields[start:i], " "))
		if err != nil {
			return err
		}
	default:
		return errMalformed("position")
	}

	if i < len(fields) && fields[i] == "moves" {
		i++
		for ; i < len(fields); i++ {
			m, ok := movegen.MoveFromUci(p, fields[i])
			if !ok {
				return errMalformed("position moves " + fields[i])
			}
			p.Make(m)
		}
	}

	e.pos = p
	return nil
}

type errMalformed string

func (e errMalformed) Error() string { return "malformed " + string(e) }
