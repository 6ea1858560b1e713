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

package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BlakeSHerrera/sublime/internal/movegen"
	"github.com/BlakeSHerrera/sublime/internal/position"
	"github.com/BlakeSHerrera/sublime/internal/types"
)

func TestStartposIsValid(t *testing.T) {
	require.NoError(t, Position(position.NewPosition()))
}

func TestKiwipeteIsValid(t *testing.T) {
	pos, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.NoError(t, Position(pos))
}

func TestValidatorAcceptsPositionsFromLegalPlay(t *testing.T) {
	pos := position.NewPosition()
	var walk func(depth int)
	walk = func(depth int) {
		require.NoError(t, Position(pos), pos.Fen())
		if depth == 0 {
			return
		}
		var buf [types.MaxLegalMoves]types.Move
		n := movegen.GenerateLegalMoves(pos, buf[:])
		for i := 0; i < n; i++ {
			undo := pos.MakeMove(buf[i])
			walk(depth - 1)
			pos.UnmakeMove(buf[i], undo)
		}
	}
	walk(2)
}

func TestMissingKingIsInvalid(t *testing.T) {
	pos, err := position.NewPositionFen("8/8/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	require.Error(t, Position(pos), "black has no king")
}

func TestOpponentInCheckIsInvalid(t *testing.T) {
	// White to move, but black's own king sits in check from a white
	// rook, a position that can't follow legal play.
	pos, err := position.NewPositionFen("4k3/8/8/8/8/8/4R3/7K w - - 0 1")
	require.NoError(t, err)
	err = Position(pos)
	require.Error(t, err)
}

func TestCastlingRightWithoutRookIsInvalid(t *testing.T) {
	pos, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4K3 w Q - 0 1")
	require.NoError(t, err)
	require.Error(t, Position(pos), "queenside right asserted but rook is gone")
}

func TestEnPassantWithoutDefendingPawnIsInvalid(t *testing.T) {
	pos, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	require.Error(t, Position(pos), "en passant target set but no pawn to capture")
}

func TestEnPassantWithoutAttackingPawnIsInvalid(t *testing.T) {
	// Black pawn on d5 backs the target, but no white pawn stands on c5
	// or e5 to take it.
	pos, err := position.NewPositionFen("4k3/8/8/3p4/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	require.Error(t, Position(pos), "en passant target set but no pawn can capture there")
}

func TestPawnOnBackRankIsInvalid(t *testing.T) {
	pos, err := position.NewPositionFen("P3k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	require.Error(t, Position(pos), "pawn on the eighth rank")
}

func TestTooManyQueensForPromotionBudgetIsInvalid(t *testing.T) {
	// Two extra queens but seven pawns remain: only one promotion was
	// possible.
	pos, err := position.NewPositionFen("4k3/8/8/8/8/QQQ5/PPPPPPP1/4K3 w - - 0 1")
	require.NoError(t, err)
	require.Error(t, Position(pos), "three queens exceed the promotion budget")
}
