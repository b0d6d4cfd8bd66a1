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

// Package config holds process-wide configuration, read from an optional
// TOML file and overridable by UCI setoption commands at runtime.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the TOML configuration file, settable from the
// command line before Setup() is called.
var ConfFile = "./config.toml"

var (
	// LogLevel is the standard logger's level (go-logging.Level values).
	LogLevel = 4 // INFO
	// SearchLogLevel is the search-hot-path logger's level.
	SearchLogLevel = 2 // WARNING
	// TestLogLevel is the level used by loggers obtained from _test.go files.
	TestLogLevel = 5 // DEBUG

	// Settings is the global configuration, populated by Setup().
	Settings conf

	initialized = false
)

// LogLevels maps the command-line/UCI spelling of a log level to the
// numerical go-logging level LogLevel and SearchLogLevel expect.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads ConfFile (if present) and fills in defaults for anything it
// doesn't set. Safe to call more than once; only the first call does work.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("corvid: config file not found, using defaults:", err)
	}
	setupSearch()
	setupEval()
	initialized = true
}
