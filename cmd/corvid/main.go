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

// Command corvid is the UCI front-end: it owns the stdin/stdout protocol
// loop and defers everything else to internal/engine. It is intentionally
// thin, the only piece that actually reads os.Stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/engine"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	perft := flag.Int("perft", 0, "runs perft on the given position to this depth and exits\nuse -fen to provide a position other than the start position")
	fen := flag.String("fen", position.StartFen, "fen for -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "writes a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	logging.GetLog()

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	runUci()
}

// runUci drives the UCI protocol loop: each input line is handed to
// engine.HandleCommand, whose reply lines are printed verbatim, except for
// "go" which is special-cased to run asynchronously and stream "info"
// lines while it searches.
func runUci() {
	e := engine.New()
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "go" {
			handleGo(e, fields[1:])
			continue
		}
		if fields[0] == "quit" {
			return
		}

		for _, reply := range e.HandleCommand(line) {
			fmt.Println(reply)
		}
	}
}

// handleGo parses a "go" command's arguments into search.Limits, runs the
// search synchronously (UCI's "go" is itself asynchronous relative to a
// later "stop", not relative to the rest of this loop: nothing else is
// read from stdin until bestmove is printed, matching the single-threaded
// front-end a UCI GUI expects), and prints "info"/"bestmove" lines.
func handleGo(e *engine.Engine, args []string) {
	limits := parseGoLimits(args)
	infoCh := make(chan search.Info, 8)
	done := make(chan search.Result, 1)

	go func() {
		done <- e.Go(limits, infoCh)
		close(infoCh)
	}()

	for info := range infoCh {
		fmt.Println(formatInfo(info))
	}
	res := <-done

	best := res.BestMove.String()
	if res.PonderMove.IsValid() {
		fmt.Printf("bestmove %s ponder %s\n", best, res.PonderMove.String())
	} else {
		fmt.Printf("bestmove %s\n", best)
	}
}

func formatInfo(info search.Info) string {
	var pv strings.Builder
	for i, m := range info.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(m.String())
	}
	return fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		info.Depth, info.Score.String(), info.Nodes, info.Nps, info.Time.Milliseconds(), pv.String())
}

func parseGoLimits(args []string) search.Limits {
	var l search.Limits
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			l.Depth = atoiOr(args, i, 0)
		case "nodes":
			i++
			l.Nodes = uint64(atoiOr(args, i, 0))
		case "movetime":
			i++
			l.MoveTime = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "wtime":
			i++
			l.WhiteTime = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "btime":
			i++
			l.BlackTime = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "winc":
			i++
			l.WhiteInc = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "binc":
			i++
			l.BlackInc = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "movestogo":
			i++
			l.MovesToGo = atoiOr(args, i, 0)
		case "infinite":
			l.Infinite = true
		}
	}
	return l
}

func atoiOr(args []string, i, fallback int) int {
	if i < 0 || i >= len(args) {
		return fallback
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return fallback
	}
	return n
}

func runPerft(fen string, depth int) {
	p, err := position.FromFEN(fen)
	if err != nil {
		fmt.Println(err)
		return
	}
	pf := movegen.NewPerft()
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := pf.Run(p, d)
		elapsed := time.Since(start)
		out.Printf("depth %d: nodes %d, captures %d, ep %d, castles %d, promotions %d, checks %d (%s)\n",
			d, nodes, pf.CaptureCounter, pf.EnpassantCounter, pf.CastleCounter, pf.PromotionCounter, pf.CheckCounter, elapsed)
	}
}

func printVersionInfo() {
	out.Println("corvid")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
