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

package position

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/BlakeSHerrera/sublime/internal/types"
)

func TestStartPositionFen(t *testing.T) {
	p := NewPosition()
	require.Equal(t, StartFen, p.Fen())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		require.Equal(t, fen, p.Fen())
	}
}

func TestZobristMatchesRecompute(t *testing.T) {
	p := NewPosition()
	require.Equal(t, p.RecomputeZobrist(), p.Zobrist())
}

func TestInvalidFenRejected(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w qKQk - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
	}
	for _, fen := range cases {
		_, err := NewPositionFen(fen)
		require.Error(t, err, fen)
	}
}

// applyUci makes one move given as a "from-to" UCI-ish square pair,
// returning the move played and its Undo.
func applyUci(t *testing.T, p *Position, from, to Square, fromPc, destPc Piece, captureSq Square, capturePc Piece) (Move, Undo) {
	t.Helper()
	m := NewMove(from, to, fromPc, destPc, captureSq, capturePc)
	return m, p.MakeMove(m)
}

func TestMakeUnmakeRestoresStateExactly(t *testing.T) {
	p := NewPosition()
	before := *p

	m, undo := applyUci(t, p, SqE2, SqE4, WhitePawn, WhitePawn, SqNone, PieceCaptureNone)
	require.NotEqual(t, before.zobrist, p.zobrist)

	p.UnmakeMove(m, undo)
	require.Equal(t, before, *p)
}

func TestCastlingMakeUnmake(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := *p

	m := NewCastling(QuadrantWK, WhiteKing)
	undo := p.MakeMove(m)
	require.Equal(t, WhiteKing, p.PieceOn(SqG1))
	require.Equal(t, WhiteRook, p.PieceOn(SqF1))
	require.Equal(t, PieceNone, p.PieceOn(SqE1))
	require.Equal(t, PieceNone, p.PieceOn(SqH1))
	require.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	require.False(t, p.CastlingRights().Has(CastlingWhiteOOO))

	p.UnmakeMove(m, undo)
	require.Equal(t, before, *p)
}

func TestEnPassantMakeUnmake(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	before := *p

	m := NewEnPassantCapture(SqE5, SqD6, WhitePawn, SqD5, BlackPawn)
	undo := p.MakeMove(m)
	require.Equal(t, WhitePawn, p.PieceOn(SqD6))
	require.Equal(t, PieceNone, p.PieceOn(SqD5))
	require.Equal(t, PieceNone, p.PieceOn(SqE5))
	require.Equal(t, SqNone, p.EpSquare())

	p.UnmakeMove(m, undo)
	require.Equal(t, before, *p)
}

func TestPromotionMakeUnmake(t *testing.T) {
	p, err := NewPositionFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	require.NoError(t, err)
	before := *p

	m := NewPromotion(SqA7, SqA8, WhitePawn, WhiteQueen, SqNone, PieceCaptureNone)
	undo := p.MakeMove(m)
	require.Equal(t, WhiteQueen, p.PieceOn(SqA8))
	require.Equal(t, PieceNone, p.PieceOn(SqA7))

	p.UnmakeMove(m, undo)
	require.Equal(t, before, *p)
}

func TestHalfmoveClockRulesFollowPawnOnlyReset(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/4r3/8/8/4R3/4K3 w - - 5 10")
	require.NoError(t, err)

	m := NewMove(SqE2, SqE5, WhiteRook, WhiteRook, SqE5, BlackRook)
	p.MakeMove(m)
	require.Equal(t, 6, p.HalfmoveClock(), "a non-pawn capture still increments the halfmove clock")
}

func TestDoublePawnPushSetsEnPassantSquareWhenCapturable(t *testing.T) {
	// Black pawn on d4 can capture on e3, so the double push e2e4
	// creates an en-passant target.
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	m := NewDoublePawnPush(SqE2, SqE4, WhitePawn, FileE)
	p.MakeMove(m)
	require.Equal(t, SqE3, p.EpSquare())
	require.Equal(t, p.RecomputeZobrist(), p.Zobrist())
}

func TestDoublePawnPushWithoutCapturerLeavesEnPassantUnset(t *testing.T) {
	p := NewPosition()
	m := NewDoublePawnPush(SqE2, SqE4, WhitePawn, FileE)
	p.MakeMove(m)
	require.Equal(t, SqNone, p.EpSquare())
	require.Equal(t, p.RecomputeZobrist(), p.Zobrist())
}

func TestTranspositionsShareZobristKey(t *testing.T) {
	// 1.e4 d6 2.d4 and 1.d4 d6 2.e4 reach the same position; neither
	// double push is capturable, so the keys must coincide.
	p1 := NewPosition()
	p1.MakeMove(NewDoublePawnPush(SqE2, SqE4, WhitePawn, FileE))
	p1.MakeMove(NewMove(SqD7, SqD6, BlackPawn, BlackPawn, SqNone, PieceCaptureNone))
	p1.MakeMove(NewDoublePawnPush(SqD2, SqD4, WhitePawn, FileD))

	p2 := NewPosition()
	p2.MakeMove(NewDoublePawnPush(SqD2, SqD4, WhitePawn, FileD))
	p2.MakeMove(NewMove(SqD7, SqD6, BlackPawn, BlackPawn, SqNone, PieceCaptureNone))
	p2.MakeMove(NewDoublePawnPush(SqE2, SqE4, WhitePawn, FileE))

	require.Equal(t, p1.Zobrist(), p2.Zobrist())
}
