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

// Package logging wires a single shared go-logging backend used by every
// package in this module.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	once sync.Once
	root *logging.Logger
)

// GetLog returns the module-wide logger, configuring the backend on first
// use. Repeated calls (typically one per package, populating a
// package-level "var log *logging.Logger") all share the same backend
// and level.
func GetLog() *logging.Logger {
	once.Do(func() {
		root = logging.MustGetLogger("sublime")
		backend := logging.NewLogBackend(os.Stdout, "", 0)
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.INFO, "")
		logging.SetBackend(leveled)
	})
	return root
}

// SetLevel adjusts the module-wide log level, e.g. from config.Settings.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
