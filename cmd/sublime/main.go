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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/pkg/profile"

	"github.com/BlakeSHerrera/sublime/internal/config"
	mylogging "github.com/BlakeSHerrera/sublime/internal/logging"
	"github.com/BlakeSHerrera/sublime/internal/movegen"
	"github.com/BlakeSHerrera/sublime/internal/position"
	"github.com/BlakeSHerrera/sublime/internal/validate"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level (critical|error|warning|notice|info|debug), overrides config file")
	fen := flag.String("fen", "", "FEN to run perft on, defaults to the config file's perft.defaultfen")
	depth := flag.Int("perft", 5, "perft depth to run")
	workers := flag.Int("workers", 0, "goroutine fan-out for perft, overrides config file, <=1 runs serially")
	cpuProfile := flag.Bool("profile.cpu", false, "write a CPU profile of the perft run to ./")
	checkOnly := flag.Bool("validate", false, "only validate the position and exit, skipping perft")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	level := config.Settings.Log.Level
	if *logLvl != "" {
		level = *logLvl
	}
	if lvl, err := logging.LogLevel(level); err == nil {
		mylogging.SetLevel(lvl)
	}
	mylogging.GetLog()

	if *workers > 0 {
		config.Settings.Perft.Workers = *workers
	}

	fenStr := *fen
	if fenStr == "" {
		fenStr = config.Settings.Perft.DefaultFen
	}
	pos, err := position.NewPositionFen(fenStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid FEN:", err)
		os.Exit(1)
	}

	if err := validate.Position(pos); err != nil {
		fmt.Fprintln(os.Stderr, "position failed validation:", err)
		os.Exit(1)
	}
	if *checkOnly {
		fmt.Println("position is valid")
		return
	}

	if config.Settings.Perft.Workers > 1 {
		nodes, err := movegen.PerftParallel(pos, *depth, config.Settings.Perft.Workers)
		if err != nil {
			fmt.Fprintln(os.Stderr, "perft failed:", err)
			os.Exit(1)
		}
		fmt.Println(nodes)
		return
	}
	movegen.Report(pos, *depth)
}
