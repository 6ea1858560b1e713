/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration, read from an
// optional TOML file with documented defaults when the file is absent.
package config

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the optional config file, relative to the
// working directory.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings = conf{
	Log: logConfiguration{
		Level: "info",
	},
	Perft: perftConfiguration{
		Workers:    1,
		DefaultFen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	},
}

var initialized = false

type conf struct {
	Log   logConfiguration
	Perft perftConfiguration
}

type logConfiguration struct {
	Level string
}

type perftConfiguration struct {
	// Workers bounds the goroutine fan-out of PerftParallel. 1 disables
	// parallelism.
	Workers int
	// DefaultFen seeds cmd/sublime when no -fen flag is given.
	DefaultFen string
}

// Setup reads ConfFile if present and overlays it on the defaults above.
// A missing or malformed file is not fatal: it is logged and the
// defaults stand.
func Setup() {
	if initialized {
		return
	}
	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			log.Println("config file found but could not be parsed, using defaults:", err)
		}
	} else {
		log.Println("config file not found, using defaults:", ConfFile)
	}
	if Settings.Perft.Workers < 1 {
		Settings.Perft.Workers = 1
	}
	initialized = true
}
