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

package movegen

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BlakeSHerrera/sublime/internal/position"
	. "github.com/BlakeSHerrera/sublime/internal/types"
)

// out is the locale-formatted printer perft reports use, for
// thousands-separated node counts.
var out = message.NewPrinter(language.English)

// Perft counts the leaf positions reachable in exactly depth plies from
// pos, the standard correctness oracle for a move generator.
func Perft(pos *position.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var buf [MaxLegalMoves]Move
	n := GenerateLegalMoves(pos, buf[:])
	if depth == 1 {
		return uint64(n)
	}
	var nodes uint64
	for i := 0; i < n; i++ {
		m := buf[i]
		undo := pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UnmakeMove(m, undo)
	}
	return nodes
}

// PerftParallel splits the root move list across goroutines bounded by
// workers. Each worker gets an independent Position clone and mutates
// it in place. workers <= 1 runs serially on the caller's goroutine.
func PerftParallel(pos *position.Position, depth int, workers int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	var rootBuf [MaxLegalMoves]Move
	n := GenerateLegalMoves(pos, rootBuf[:])
	if workers <= 1 || n <= 1 {
		return Perft(pos, depth), nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, workers)
	counts := make([]uint64, n)
	for i := 0; i < n; i++ {
		i, m := i, rootBuf[i]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()
			worker := pos.Clone()
			undo := worker.MakeMove(m)
			counts[i] = Perft(worker, depth-1)
			worker.UnmakeMove(m, undo)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	var total uint64
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Report runs Perft and prints a summary to the locale printer:
// elapsed time, nodes per second, and the node count.
func Report(pos *position.Position, depth int) uint64 {
	out.Printf("Performing PERFT test to depth %d\n", depth)
	out.Printf("FEN: %s\n", pos.Fen())
	start := time.Now()
	nodes := Perft(pos, depth)
	elapsed := time.Since(start)
	nps := uint64(0)
	if elapsed.Nanoseconds() > 0 {
		nps = nodes * uint64(time.Second.Nanoseconds()) / uint64(elapsed.Nanoseconds())
	}
	out.Printf("Nodes: %d  Time: %s  NPS: %d\n", nodes, elapsed, nps)
	return nodes
}
