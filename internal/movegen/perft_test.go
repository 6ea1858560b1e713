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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BlakeSHerrera/sublime/internal/position"
)

// perftCase is one row of the standard correctness-oracle table: node
// counts for depths 1-3 from a given FEN.
type perftCase struct {
	name  string
	fen   string
	nodes [3]uint64
}

var perftCases = []perftCase{
	{"startpos", position.StartFen, [3]uint64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", [3]uint64{48, 2039, 97862}},
	{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", [3]uint64{14, 191, 2812}},
	{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", [3]uint64{6, 264, 9467}},
	{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", [3]uint64{44, 1486, 62379}},
}

func TestPerft(t *testing.T) {
	for _, c := range perftCases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			pos, err := position.NewPositionFen(c.fen)
			require.NoError(t, err)
			for depth, want := range c.nodes {
				got := Perft(pos, depth+1)
				require.Equalf(t, want, got, "%s depth %d", c.name, depth+1)
			}
		})
	}
}

func TestPerftParallelMatchesSerial(t *testing.T) {
	pos, err := position.NewPositionFen(perftCases[1].fen)
	require.NoError(t, err)
	serial := Perft(pos, 3)
	parallel, err := PerftParallel(pos, 3, 4)
	require.NoError(t, err)
	require.Equal(t, serial, parallel)
}
